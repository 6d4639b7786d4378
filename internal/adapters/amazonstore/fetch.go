package amazonstore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shrey258/flag-me-backend/internal/constants"
	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/port"

	"github.com/gocolly/colly/v2"
)

// FetchSearchPage requests the search results page for the query and returns
// the raw HTML body. Non-2xx statuses and transport errors come back as
// errors carrying the status for logging; the orchestrator degrades them to
// zero listings for this platform.
func (a *Adapter) FetchSearchPage(ctx context.Context, query string) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "AmazonAdapter(FetchSearchPage)",
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
		fetchErr = fmt.Errorf("amazon adapter: request failed with status %d: %w", r.StatusCode, err)
	})

	searchURL := a.searchURL(query)
	if err := collector.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("amazon adapter: failed to visit %s: %w", searchURL, err)
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("amazon adapter: empty response body for query %q", query)
	}
	return body, nil
}

// searchURL builds the query-encoded search endpoint in Amazon's parameter
// convention.
func (a *Adapter) searchURL(query string) string {
	params := url.Values{}
	params.Set("k", query)
	params.Set("ref", "nb_sb_noss")
	return a.cfg.BaseURL + "/s?" + params.Encode()
}
