package flipkartstore

import (
	"context"
	"fmt"

	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/shrey258/flag-me-backend/internal/core/port"
	"github.com/shrey258/flag-me-backend/pkg/affiliate"
	"github.com/shrey258/flag-me-backend/pkg/htmlcascade"
	"github.com/shrey258/flag-me-backend/pkg/priceparser"

	"github.com/PuerkitoBio/goquery"
)

// Flipkart renders grid cards (electronics), list rows (fashion) and a
// legacy layout depending on the category, hence three container shapes
// before the generic data-id fallback.
var containerSelectors = []string{
	`div._1AtVbE div._13oc-S`,
	`div._2kHMtA`,
	`div._4ddWXP`,
	`div[data-id]`,
}

var (
	titleSelectors = []string{`div._4rR01T`, `a.s1Q9rs`, `.IRpwTa`, `div.KzDlHZ`}
	priceSelectors = []string{`div._30jeq3`, `div.Nx9bqj`, `div._25b18c div`}
	linkSelectors  = []string{`a._1fQZEK`, `a.s1Q9rs`, `a.IRpwTa`, `a.CGtC98`, `a[href]`}
	imageSelectors = []string{`img._396cs4`, `img._2r_T1I`, `img.DByuf4`, `img`}
)

// ExtractListings converts a search results page into listings,
// scan-until-quota across the committed container selector.
func (a *Adapter) ExtractListings(ctx context.Context, query string, payload []byte, maxResults int) ([]domain.ProductListing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FlipkartAdapter(ExtractListings)",
	})

	doc, err := htmlcascade.ParseDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("flipkart adapter: failed to parse document: %w", err)
	}

	var listings []domain.ProductListing

	if containers, ok := htmlcascade.Containers(doc, containerSelectors); ok {
		containers.EachWithBreak(func(_ int, item *goquery.Selection) bool {
			if len(listings) >= maxResults {
				return false
			}

			title := htmlcascade.Text(item, titleSelectors...)
			href := htmlcascade.Attr(item, "href", linkSelectors...)
			if title == "" || href == "" {
				// ad slots and separator cells match the generic
				// container selector; not an error
				return true
			}

			price, resolved := priceparser.Parse(htmlcascade.Text(item, priceSelectors...))

			listings = append(listings, domain.ProductListing{
				Title:         title,
				Price:         price,
				PriceResolved: resolved,
				URL: affiliate.Rewrite(
					htmlcascade.ResolveURL(a.cfg.BaseURL, href),
					"affid", a.cfg.AffiliateID,
				),
				Platform: domain.PlatformFlipkart,
				ImageURL: htmlcascade.AnyAttr(item, []string{"src", "data-src"}, imageSelectors...),
			})
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

	logger.Debug("Finished extracting listings", port.Fields{"extracted": len(listings)})
	return listings, nil
}

func (a *Adapter) syntheticListings(query string) []domain.ProductListing {
	searchURL := affiliate.Rewrite(a.searchURL(query), "affid", a.cfg.AffiliateID)
	return []domain.ProductListing{
		{
			Title:    fmt.Sprintf("Top rated %s", query),
			Platform: domain.PlatformFlipkart,
			URL:      searchURL,
		},
		{
			Title:    fmt.Sprintf("Best budget %s", query),
			Platform: domain.PlatformFlipkart,
			URL:      searchURL,
		},
	}
}
