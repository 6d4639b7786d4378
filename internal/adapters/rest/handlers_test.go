package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchUC struct {
	result *domain.SearchResult
	err    error
}

func (s *stubSearchUC) Execute(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubSuggestUC struct {
	suggestions []string
	err         error
}

func (s *stubSuggestUC) Execute(ctx context.Context, prefs domain.GiftPreferences) ([]string, error) {
	return s.suggestions, s.err
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleSearchProductsOK(t *testing.T) {
	rating := 4.5
	search := &stubSearchUC{result: &domain.SearchResult{
		Listings: []domain.ProductListing{
			{
				Title:         "Sony WH-1000XM5",
				Price:         27990,
				PriceResolved: true,
				URL:           "https://www.flipkart.com/p/1?affid=giftapp",
				Platform:      domain.PlatformFlipkart,
				Rating:        &rating,
			},
		},
		SourceStatus: map[domain.Platform]domain.SourceStatus{
			domain.PlatformAmazon:   domain.SourceStatusFetchFailed,
			domain.PlatformFlipkart: domain.SourceStatusOK,
		},
	}}
	h := NewSearchHandlers(search, &stubSuggestUC{})

	rec := postJSON(t, h.HandleSearchProducts, `{"query": "sony headphones"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchProductsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Sony WH-1000XM5", resp.Products[0].Title)
	assert.True(t, resp.Products[0].PriceResolved)
	assert.Equal(t, "fetch_failed", resp.PlatformStatus["Amazon"])
	assert.Equal(t, "ok", resp.PlatformStatus["Flipkart"])
}

func TestHandleSearchProductsCapsResponse(t *testing.T) {
	var listings []domain.ProductListing
	for i := 0; i < 5; i++ {
		listings = append(listings, domain.ProductListing{
			Title: "item", Price: float64(100 + i), PriceResolved: true, Platform: domain.PlatformAmazon,
		})
	}
	h := NewSearchHandlers(&stubSearchUC{result: &domain.SearchResult{Listings: listings}}, &stubSuggestUC{})

	rec := postJSON(t, h.HandleSearchProducts, `{"query": "q", "max_results": 2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchProductsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)
}

func TestHandleSearchProductsBadRequests(t *testing.T) {
	h := NewSearchHandlers(&stubSearchUC{result: &domain.SearchResult{}}, &stubSuggestUC{})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", `{"query":`},
		{"missing query", `{"min_price": 10}`},
		{"unknown field", `{"query": "q", "order": "asc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleSearchProducts, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleSearchProductsCriteriaErrorMapsTo400(t *testing.T) {
	h := NewSearchHandlers(&stubSearchUC{err: domain.ErrUnknownPlatform}, &stubSuggestUC{})

	rec := postJSON(t, h.HandleSearchProducts, `{"query": "q", "platforms": ["Ebay"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearchProductsInternalError(t *testing.T) {
	h := NewSearchHandlers(&stubSearchUC{err: errors.New("boom")}, &stubSuggestUC{})

	rec := postJSON(t, h.HandleSearchProducts, `{"query": "q"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleRecommendationsOK(t *testing.T) {
	h := NewSearchHandlers(&stubSearchUC{}, &stubSuggestUC{
		suggestions: []string{"best value cooking products", "best cooking products"},
	})

	rec := postJSON(t, h.HandleRecommendations, `{"interests": ["cooking"], "price_range": "medium"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RecommendationsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Recommendations, 2)
}

func TestHandleRecommendationsBadRequest(t *testing.T) {
	h := NewSearchHandlers(&stubSearchUC{}, &stubSuggestUC{})

	rec := postJSON(t, h.HandleRecommendations, `{"price_range": "medium"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
