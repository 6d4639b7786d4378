package myntrastore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shrey258/flag-me-backend/internal/constants"
	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/port"

	"github.com/gocolly/colly/v2"
)

// FetchSearchPage requests the Myntra search results page for the query.
func (a *Adapter) FetchSearchPage(ctx context.Context, query string) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MyntraAdapter(FetchSearchPage)",
	})

	collector := a.collector.Clone()

	var body []byte
	var fetchErr error

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", constants.RandomUserAgent())
		for k, v := range constants.BrowserHeaders() {
			r.Headers.Set(k, v)
		}
		logger.Debug("Making request to fetch search page", port.Fields{
			"url": r.URL.String(),
		})
	})

	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	collector.OnError(func(r *colly.Response, err error) {
		logger.Error("Failed to fetch search page", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		fetchErr = fmt.Errorf("myntra adapter: request failed with status %d: %w", r.StatusCode, err)
	})

	searchURL := a.searchURL(query)
	if err := collector.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("myntra adapter: failed to visit %s: %w", searchURL, err)
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("myntra adapter: empty response body for query %q", query)
	}
	return body, nil
}

// searchURL builds Myntra's path-segment search convention:
// "wireless earbuds" becomes /wireless-earbuds.
func (a *Adapter) searchURL(query string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(query)), "-")
	return a.cfg.BaseURL + "/" + url.PathEscape(slug)
}
