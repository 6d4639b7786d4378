package port

import (
	"context"

	"github.com/shrey258/flag-me-backend/internal/core/domain"
)

// ProductSourcePort is implemented once per platform by a fetcher/extractor
// adapter pair. Adding a platform means adding an implementation; the
// aggregation core never changes.
type ProductSourcePort interface {
	Platform() domain.Platform

	// FetchSearchPage issues the outbound search request for the query and
	// returns the raw response body. A non-2xx status or transport error is
	// returned as an error; the caller treats it as zero listings for this
	// platform, never as a fatal condition.
	FetchSearchPage(ctx context.Context, query string) ([]byte, error)

	// ExtractListings converts a raw payload into at most maxResults
	// listings. Items missing a title or link are skipped silently. When the
	// whole selector cascade matches nothing it returns
	// domain.ErrNoListingsExtracted.
	ExtractListings(ctx context.Context, query string, payload []byte, maxResults int) ([]domain.ProductListing, error)
}
