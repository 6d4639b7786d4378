// Package flipkartstore implements the Flipkart product source.
package flipkartstore

import (
	"fmt"
	"time"

	"github.com/shrey258/flag-me-backend/internal/core/domain"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

const defaultBaseURL = "https://www.flipkart.com"

// Config is the explicit per-platform configuration; the affiliate id is
// injected at construction, never read from the environment here.
type Config struct {
	BaseURL           string
	AffiliateID       string
	Timeout           time.Duration
	SyntheticFallback bool
}

// Adapter talks to the Flipkart search results page.
type Adapter struct {
	collector *colly.Collector
	cfg       Config
}

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
		DomainGlob:  "*flipkart.*",
		Parallelism: 1,
	}); err != nil {
		return nil, fmt.Errorf("flipkart adapter: failed to set limit rule: %w", err)
	}

	extensions.Referer(c)

	return &Adapter{collector: c, cfg: cfg}, nil
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformFlipkart
}
