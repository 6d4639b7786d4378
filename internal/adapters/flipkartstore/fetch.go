package flipkartstore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shrey258/flag-me-backend/internal/constants"
	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/port"

	"github.com/gocolly/colly/v2"
)

// FetchSearchPage requests the Flipkart search results page for the query.
func (a *Adapter) FetchSearchPage(ctx context.Context, query string) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FlipkartAdapter(FetchSearchPage)",
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
		fetchErr = fmt.Errorf("flipkart adapter: request failed with status %d: %w", r.StatusCode, err)
	})

	searchURL := a.searchURL(query)
	if err := collector.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("flipkart adapter: failed to visit %s: %w", searchURL, err)
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("flipkart adapter: empty response body for query %q", query)
	}
	return body, nil
}

func (a *Adapter) searchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	return a.cfg.BaseURL + "/search?" + params.Encode()
}
