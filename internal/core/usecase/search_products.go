package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/shrey258/flag-me-backend/internal/core/port"
)

// Courtesy delay bounds applied before the first outbound fetch of a search.
const (
	preDelayMin = 500 * time.Millisecond
	preDelayMax = 1500 * time.Millisecond
)

// SearchProductsConfig tunes the orchestrator.
type SearchProductsConfig struct {
	// MaxResultsPerSource caps how many listings each extractor emits.
	MaxResultsPerSource int
	// PreDelayEnabled applies the randomized courtesy delay before
	// fetching. Disabled in tests.
	PreDelayEnabled bool
	// DefaultPlatforms is searched when the criteria name none.
	DefaultPlatforms []domain.Platform
}

// SearchProductsUseCase fans a query out to every selected platform source,
// then merges, deduplicates, filters and sorts the listings.
type SearchProductsUseCase struct {
	sources map[domain.Platform]port.ProductSourcePort
	cfg     SearchProductsConfig
}

func NewSearchProductsUseCase(cfg SearchProductsConfig, sources ...port.ProductSourcePort) *SearchProductsUseCase {
	byPlatform := make(map[domain.Platform]port.ProductSourcePort, len(sources))
	for _, source := range sources {
		byPlatform[source.Platform()] = source
	}
	return &SearchProductsUseCase{sources: byPlatform, cfg: cfg}
}

// sourceResult is what one platform task reports back. Tasks communicate
// only through this value; they share no mutable state.
type sourceResult struct {
	platform domain.Platform
	listings []domain.ProductListing
	status   domain.SourceStatus
}

// Execute runs one aggregation request. Only invalid criteria fail the whole
// request; any per-platform failure degrades to zero listings from that
// platform and is reported in the status map.
func (uc *SearchProductsUseCase) Execute(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SearchProducts",
	})

	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("search products: invalid criteria: %w", err)
	}

	platforms := criteria.Platforms
	if len(platforms) == 0 {
		platforms = uc.cfg.DefaultPlatforms
	}

	logger.Info("Starting product search", port.Fields{
		"query":     criteria.Query,
		"platforms": len(platforms),
	})

	if uc.cfg.PreDelayEnabled {
		if err := courtesyDelay(ctx); err != nil {
			return nil, err
		}
	}

	resultsChan := make(chan sourceResult, len(platforms))
	var wg sync.WaitGroup

	for _, platform := range platforms {
		source, ok := uc.sources[platform]
		if !ok {
			// validated criteria only carry known platforms, but the
			// default set may outrun the registered sources
			resultsChan <- sourceResult{platform: platform, status: domain.SourceStatusError}
			continue
		}

		wg.Add(1)
		go func(src port.ProductSourcePort) {
			defer wg.Done()
			resultsChan <- uc.searchOne(ctx, src, criteria.Query, logger)
		}(source)
	}

	// a platform failing never cancels its siblings; we always wait for all
	wg.Wait()
	close(resultsChan)

	statuses := make(map[domain.Platform]domain.SourceStatus, len(platforms))
	var flat []domain.ProductListing
	for res := range resultsChan {
		statuses[res.platform] = res.status
		flat = append(flat, res.listings...)
	}

	merged := domain.MergeCheapest(flat)
	filtered := domain.FilterByPrice(merged, criteria.MinPrice, criteria.MaxPrice)
	domain.SortByPrice(filtered)

	logger.Info("Product search finished", port.Fields{
		"raw_listings":   len(flat),
		"after_dedup":    len(merged),
		"after_filter":   len(filtered),
		"source_statuses": statuses,
	})

	return &domain.SearchResult{Listings: filtered, SourceStatus: statuses}, nil
}

// searchOne runs fetch+extract for a single platform. A panic anywhere in
// the adapter degrades to an error status instead of taking down the whole
// request.
func (uc *SearchProductsUseCase) searchOne(ctx context.Context, src port.ProductSourcePort, query string, logger port.LoggerPort) (res sourceResult) {
	res.platform = src.Platform()
	srcLogger := logger.WithFields(port.Fields{"platform": res.platform})
	taskCtx := contextkeys.ContextWithLogger(ctx, srcLogger)

	defer func() {
		if r := recover(); r != nil {
			srcLogger.Error("Source task panicked", fmt.Errorf("panic: %v", r), nil)
			res.listings = nil
			res.status = domain.SourceStatusError
		}
	}()

	payload, err := src.FetchSearchPage(taskCtx, query)
	if err != nil {
		srcLogger.Warn("Fetch failed, treating platform as empty", port.Fields{"error": err.Error()})
		res.status = domain.SourceStatusFetchFailed
		return res
	}

	listings, err := src.ExtractListings(taskCtx, query, payload, uc.cfg.MaxResultsPerSource)
	if err != nil {
		if errors.Is(err, domain.ErrNoListingsExtracted) {
			srcLogger.Warn("Document yielded no listings", nil)
			res.status = domain.SourceStatusNoListings
		} else {
			srcLogger.Error("Extraction failed", err, nil)
			res.status = domain.SourceStatusError
		}
		return res
	}

	res.listings = listings
	res.status = domain.SourceStatusOK
	return res
}

// courtesyDelay sleeps a bounded random duration as a rate-limiting courtesy
// to the upstream sites, honoring context cancellation.
func courtesyDelay(ctx context.Context) error {
	delay := preDelayMin + time.Duration(rand.Int63n(int64(preDelayMax-preDelayMin)))
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
