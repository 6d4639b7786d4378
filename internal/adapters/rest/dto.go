package rest

import "github.com/shrey258/flag-me-backend/internal/core/domain"

// SearchProductsRequestDTO is the body of POST /api/v1/search-products.
type SearchProductsRequestDTO struct {
	Query      string   `json:"query"`
	MinPrice   *float64 `json:"min_price,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	Platforms  []string `json:"platforms,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

// ProductDTO is one listing in a search response.
type ProductDTO struct {
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	PriceResolved bool     `json:"price_resolved"`
	URL           string   `json:"url"`
	Platform      string   `json:"platform"`
	ImageURL      string   `json:"image_url,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Reviews       *int     `json:"reviews,omitempty"`
}

// SearchProductsResponseDTO carries the merged listings plus what happened
// on each platform, so an empty product list is explainable.
type SearchProductsResponseDTO struct {
	Products       []ProductDTO      `json:"products"`
	PlatformStatus map[string]string `json:"platform_status"`
}

// RecommendationsRequestDTO is the body of POST /api/v1/recommendations.
type RecommendationsRequestDTO struct {
	Interests  []string `json:"interests"`
	PriceRange string   `json:"price_range,omitempty"`
}

// RecommendationsResponseDTO returns generated search query strings.
type RecommendationsResponseDTO struct {
	Recommendations []string `json:"recommendations"`
}

func productToDTO(l domain.ProductListing) ProductDTO {
	return ProductDTO{
		Title:         l.Title,
		Price:         l.Price,
		PriceResolved: l.PriceResolved,
		URL:           l.URL,
		Platform:      string(l.Platform),
		ImageURL:      l.ImageURL,
		Rating:        l.Rating,
		Reviews:       l.Reviews,
	}
}

func searchResultToDTO(result *domain.SearchResult, cap int) SearchProductsResponseDTO {
	listings := result.Listings
	if cap > 0 && len(listings) > cap {
		listings = listings[:cap]
	}

	products := make([]ProductDTO, 0, len(listings))
	for _, l := range listings {
		products = append(products, productToDTO(l))
	}

	statuses := make(map[string]string, len(result.SourceStatus))
	for platform, status := range result.SourceStatus {
		statuses[string(platform)] = string(status)
	}

	return SearchProductsResponseDTO{Products: products, PlatformStatus: statuses}
}
