package usecases_port

import (
	"context"

	"github.com/shrey258/flag-me-backend/internal/core/domain"
)

// SearchProductsUseCase aggregates listings across platforms for one query.
type SearchProductsUseCase interface {
	Execute(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}
