// Package myntrastore implements the Myntra product source. Myntra encodes
// the query as a path segment and splits titles into brand and product
// lines, so both fetching and extraction differ from the other stores.
package myntrastore

import (
	"fmt"
	"time"

	"github.com/shrey258/flag-me-backend/internal/core/domain"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

const defaultBaseURL = "https://www.myntra.com"

// Config for the Myntra adapter. UTMCampaign is the operator identifier put
// into utm_campaign; utm_source/utm_medium are fixed by the affiliate
// program.
type Config struct {
	BaseURL           string
	UTMCampaign       string
	Timeout           time.Duration
	SyntheticFallback bool
}

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
		DomainGlob:  "*myntra.*",
		Parallelism: 1,
	}); err != nil {
		return nil, fmt.Errorf("myntra adapter: failed to set limit rule: %w", err)
	}

	extensions.Referer(c)

	return &Adapter{collector: c, cfg: cfg}, nil
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformMyntra
}
