package usecases_port

import (
	"context"

	"github.com/shrey258/flag-me-backend/internal/core/domain"
)

// SuggestQueriesUseCase turns gift preferences into search query strings.
type SuggestQueriesUseCase interface {
	Execute(ctx context.Context, prefs domain.GiftPreferences) ([]string, error)
}
