package amazonstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/shrey258/flag-me-backend/internal/core/port"
	"github.com/shrey258/flag-me-backend/pkg/affiliate"
	"github.com/shrey258/flag-me-backend/pkg/htmlcascade"
	"github.com/shrey258/flag-me-backend/pkg/priceparser"

	"github.com/PuerkitoBio/goquery"
)

// containerSelectors are tried most specific first; the first one matching
// at least one element commits for the whole document.
var containerSelectors = []string{
	`.s-result-item[data-component-type="s-search-result"]`,
	`.sg-col-4-of-12`,
	`.sg-col-4-of-16`,
	`.s-result-item`,
}

// ExtractListings walks the search result containers and emits up to
// maxResults listings. Items without a resolvable title or link are markup
// noise and skipped silently.
func (a *Adapter) ExtractListings(ctx context.Context, query string, payload []byte, maxResults int) ([]domain.ProductListing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "AmazonAdapter(ExtractListings)",
	})

	doc, err := htmlcascade.ParseDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("amazon adapter: failed to parse document: %w", err)
	}

	var listings []domain.ProductListing
	skipped := 0

	if containers, ok := htmlcascade.Containers(doc, containerSelectors); ok {
		containers.EachWithBreak(func(_ int, item *goquery.Selection) bool {
			if len(listings) >= maxResults {
				return false
			}
			listing, ok := a.listingFromItem(item)
			if !ok {
				skipped++
				return true
			}
			listings = append(listings, listing)
			return true
		})
	}

	if len(listings) == 0 {
		if a.cfg.SyntheticFallback {
			logger.Warn("Extraction yielded nothing, emitting synthetic fallback listings", port.Fields{
				"query": query,
			})
			return a.syntheticListings(query), nil
		}
		return nil, domain.ErrNoListingsExtracted
	}

	logger.Debug("Finished extracting listings", port.Fields{
		"extracted": len(listings),
		"skipped":   skipped,
	})
	return listings, nil
}

func (a *Adapter) listingFromItem(item *goquery.Selection) (domain.ProductListing, bool) {
	title := htmlcascade.Text(item, "h2 .a-link-normal", ".a-text-normal", "h2 a")
	href := htmlcascade.Attr(item, "href", "h2 .a-link-normal", "h2 a", ".a-link-normal")
	if title == "" || href == "" {
		return domain.ProductListing{}, false
	}

	// offscreen price first, then the visible node, then the aria label
	priceText := htmlcascade.Text(item, ".a-price .a-offscreen", ".a-price", ".a-color-price")
	if priceText == "" {
		priceText = htmlcascade.Attr(item, "aria-label", ".a-price", ".a-color-price")
	}
	price, resolved := priceparser.Parse(priceText)

	productURL := htmlcascade.ResolveURL(a.cfg.BaseURL, href)

	listing := domain.ProductListing{
		Title:         title,
		Price:         price,
		PriceResolved: resolved,
		URL:           affiliate.Rewrite(productURL, "tag", a.cfg.AffiliateTag),
		Platform:      domain.PlatformAmazon,
		ImageURL:      htmlcascade.AnyAttr(item, []string{"src", "data-src"}, "img.s-image", ".s-image"),
	}

	if rating, ok := parseRating(htmlcascade.Text(item, ".a-icon-alt")); ok {
		listing.Rating = &rating
	}
	if reviews, ok := parseReviewCount(htmlcascade.Text(item, "span.a-size-base.s-underline-text", ".a-size-base.s-link-style")); ok {
		listing.Reviews = &reviews
	}

	return listing, true
}

// parseRating reads "4.3 out of 5 stars".
func parseRating(text string) (float64, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}
	rating, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || rating <= 0 || rating > 5 {
		return 0, false
	}
	return rating, true
}

// parseReviewCount reads counts like "12,345".
func parseReviewCount(text string) (int, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	count, err := strconv.Atoi(cleaned)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

// syntheticListings fabricates a small fixed set of degraded-mode listings
// carrying the query text. Only reachable with Config.SyntheticFallback set.
func (a *Adapter) syntheticListings(query string) []domain.ProductListing {
	searchURL := affiliate.Rewrite(a.searchURL(query), "tag", a.cfg.AffiliateTag)
	titles := []string{
		fmt.Sprintf("Top rated %s", query),
		fmt.Sprintf("Best budget %s", query),
	}
	listings := make([]domain.ProductListing, 0, len(titles))
	for _, title := range titles {
		listings = append(listings, domain.ProductListing{
			Title:    title,
			Platform: domain.PlatformAmazon,
			URL:      searchURL,
		})
	}
	return listings
}
