package constants

import "github.com/shrey258/flag-me-backend/internal/core/domain"

// DefaultPlatforms is the set searched when a request does not name one.
var DefaultPlatforms = []domain.Platform{
	domain.PlatformAmazon,
	domain.PlatformFlipkart,
	domain.PlatformMyntra,
}

const (
	// DefaultMaxResultsPerPlatform bounds how many listings one extractor
	// emits per document.
	DefaultMaxResultsPerPlatform = 10

	// DefaultFetchTimeoutSeconds is the per-request timeout for outbound
	// search page fetches.
	DefaultFetchTimeoutSeconds = 30

	// DefaultResponseCap bounds how many listings one search response
	// carries when the caller does not ask for a limit.
	DefaultResponseCap = 20
)
