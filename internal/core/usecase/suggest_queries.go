package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/shrey258/flag-me-backend/internal/core/port"
)

// priceTerms maps a budget bracket to the qualifier prefixed to generated
// queries.
var priceTerms = map[string]string{
	"low":    "budget",
	"medium": "best value",
	"high":   "premium",
}

const maxSuggestions = 3

// SuggestQueriesUseCase turns gift preferences into ready-to-search query
// strings. Pure rule-based mapping, no external calls.
type SuggestQueriesUseCase struct{}

func NewSuggestQueriesUseCase() *SuggestQueriesUseCase {
	return &SuggestQueriesUseCase{}
}

func (uc *SuggestQueriesUseCase) Execute(ctx context.Context, prefs domain.GiftPreferences) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SuggestQueries",
	})

	priceTerm := priceTerms[strings.ToLower(prefs.PriceRange)]

	var suggestions []string
	for _, interest := range prefs.Interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		if priceTerm != "" {
			suggestions = append(suggestions, fmt.Sprintf("%s %s products", priceTerm, interest))
		}
		suggestions = append(suggestions, fmt.Sprintf("best %s products", interest))
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	logger.Debug("Generated query suggestions", port.Fields{
		"interests":   len(prefs.Interests),
		"suggestions": len(suggestions),
	})
	return suggestions, nil
}
