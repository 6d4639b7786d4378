// Package amazonstore implements the Amazon product source: search page
// fetching, listing extraction and affiliate rewriting.
package amazonstore

import (
	"fmt"
	"time"

	"github.com/shrey258/flag-me-backend/internal/core/domain"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

const defaultBaseURL = "https://www.amazon.in"

// Config carries everything the adapter needs at construction time. There is
// no process-global state; the affiliate tag comes in here, not from the
// environment.
type Config struct {
	BaseURL      string
	AffiliateTag string
	Timeout      time.Duration
	// SyntheticFallback makes the extractor emit placeholder listings when
	// the whole cascade misses, instead of reporting "no listings". Off by
	// default; real deployments should leave it off.
	SyntheticFallback bool
}

// Adapter talks to the Amazon search results page.
type Adapter struct {
	// parent collector, cloned per request so invocations share no state
	collector *colly.Collector
	cfg       Config
}

// New builds the adapter and its parent collector.
func New(cfg Config) (*Adapter, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := colly.NewCollector(colly.AllowURLRevisit())
	c.SetRequestTimeout(cfg.Timeout)

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*amazon.*",
		Parallelism: 1,
	}); err != nil {
		return nil, fmt.Errorf("amazon adapter: failed to set limit rule: %w", err)
	}

	extensions.Referer(c)

	return &Adapter{collector: c, cfg: cfg}, nil
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformAmazon
}
