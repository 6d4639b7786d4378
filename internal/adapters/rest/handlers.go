package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shrey258/flag-me-backend/internal/constants"
	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/contracts"
	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/shrey258/flag-me-backend/internal/core/port"
	"github.com/shrey258/flag-me-backend/internal/core/port/usecases_port"
)

// SearchHandlers exposes the aggregation core over HTTP.
type SearchHandlers struct {
	searchProductsUC usecases_port.SearchProductsUseCase
	suggestQueriesUC usecases_port.SuggestQueriesUseCase
}

func NewSearchHandlers(
	searchProductsUC usecases_port.SearchProductsUseCase,
	suggestQueriesUC usecases_port.SuggestQueriesUseCase,
) *SearchHandlers {
	return &SearchHandlers{
		searchProductsUC: searchProductsUC,
		suggestQueriesUC: suggestQueriesUC,
	}
}

// HandleSearchProducts serves POST /api/v1/search-products.
func (h *SearchHandlers) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "HandleSearchProducts",
	})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", err, nil)
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(body) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
		return
	}

	if err := contracts.ValidateRequest(contracts.SearchProductsRequest, body); err != nil {
		logger.Warn("Request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	var reqDTO SearchProductsRequestDTO
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	criteria := domain.SearchCriteria{
		Query:    reqDTO.Query,
		MinPrice: reqDTO.MinPrice,
		MaxPrice: reqDTO.MaxPrice,
	}
	for _, name := range reqDTO.Platforms {
		criteria.Platforms = append(criteria.Platforms, domain.Platform(name))
	}

	searchLogger := logger.WithFields(port.Fields{"query": criteria.Query})
	searchLogger.Info("Received product search request", nil)

	result, err := h.searchProductsUC.Execute(r.Context(), criteria)
	if err != nil {
		if isCriteriaError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		searchLogger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search products")
		return
	}

	responseCap := reqDTO.MaxResults
	if responseCap <= 0 {
		responseCap = constants.DefaultResponseCap
	}

	searchLogger.Info("Product search request served", port.Fields{
		"listings": len(result.Listings),
	})
	RespondWithJSON(w, http.StatusOK, searchResultToDTO(result, responseCap))
}

// HandleRecommendations serves POST /api/v1/recommendations.
func (h *SearchHandlers) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "HandleRecommendations",
	})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", err, nil)
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(body) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
		return
	}

	if err := contracts.ValidateRequest(contracts.RecommendationsRequest, body); err != nil {
		logger.Warn("Request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	var reqDTO RecommendationsRequestDTO
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	suggestions, err := h.suggestQueriesUC.Execute(r.Context(), domain.GiftPreferences{
		Interests:  reqDTO.Interests,
		PriceRange: reqDTO.PriceRange,
	})
	if err != nil {
		logger.Error("Use case execution failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to generate recommendations")
		return
	}

	RespondWithJSON(w, http.StatusOK, RecommendationsResponseDTO{Recommendations: suggestions})
}

func isCriteriaError(err error) bool {
	return errors.Is(err, domain.ErrEmptyQuery) ||
		errors.Is(err, domain.ErrInvalidPriceRange) ||
		errors.Is(err, domain.ErrUnknownPlatform)
}
