package domain

// Platform identifies one of the supported e-commerce sources.
type Platform string

const (
	PlatformAmazon   Platform = "Amazon"
	PlatformFlipkart Platform = "Flipkart"
	PlatformMyntra   Platform = "Myntra"
)

// KnownPlatforms lists every platform a source adapter exists for.
var KnownPlatforms = []Platform{PlatformAmazon, PlatformFlipkart, PlatformMyntra}

// IsKnownPlatform reports whether p has a registered source adapter.
func IsKnownPlatform(p Platform) bool {
	for _, known := range KnownPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// ProductListing is one offer found on one platform. Listings live only for
// the duration of a single search request and are never persisted.
type ProductListing struct {
	Title string `json:"title"`
	// Price is the numeric amount in the platform's single deployment
	// currency. It is meaningful only when PriceResolved is true.
	Price float64 `json:"price"`
	// PriceResolved is false when the price text could not be normalized.
	// Such listings are still returned so the caller can decide what to do
	// with them, instead of receiving a fabricated placeholder amount.
	PriceResolved bool     `json:"price_resolved"`
	URL           string   `json:"url"`
	Platform      Platform `json:"platform"`
	ImageURL      string   `json:"image_url,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Reviews       *int     `json:"reviews,omitempty"`
}

// SearchCriteria describes one aggregation request.
type SearchCriteria struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
	// Platforms restricts the search to a subset of sources. Empty means
	// "use the default platform set".
	Platforms []Platform
}

// Validate checks the criteria before any fetch is issued. A validation
// failure is the only condition that fails a whole search request.
func (c SearchCriteria) Validate() error {
	if c.Query == "" {
		return ErrEmptyQuery
	}
	if c.MinPrice != nil && *c.MinPrice < 0 {
		return ErrInvalidPriceRange
	}
	if c.MaxPrice != nil && *c.MaxPrice < 0 {
		return ErrInvalidPriceRange
	}
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return ErrInvalidPriceRange
	}
	for _, p := range c.Platforms {
		if !IsKnownPlatform(p) {
			return ErrUnknownPlatform
		}
	}
	return nil
}

// SourceStatus tells the caller what happened on one platform during a
// search, so "empty because nothing matched" is distinguishable from
// "empty because the fetch failed".
type SourceStatus string

const (
	SourceStatusOK          SourceStatus = "ok"
	SourceStatusFetchFailed SourceStatus = "fetch_failed"
	SourceStatusNoListings  SourceStatus = "no_listings"
	SourceStatusError       SourceStatus = "error"
)

// SearchResult is the aggregated outcome of one search request.
type SearchResult struct {
	Listings []ProductListing
	// SourceStatus has one entry per platform that took part in the search.
	SourceStatus map[Platform]SourceStatus
}
