package myntrastore

import (
	"context"
	"fmt"
	"strings"

	"github.com/shrey258/flag-me-backend/internal/contextkeys"
	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/shrey258/flag-me-backend/internal/core/port"
	"github.com/shrey258/flag-me-backend/pkg/affiliate"
	"github.com/shrey258/flag-me-backend/pkg/htmlcascade"
	"github.com/shrey258/flag-me-backend/pkg/priceparser"

	"github.com/PuerkitoBio/goquery"
)

var containerSelectors = []string{
	`li.product-base`,
	`ul.results-base li`,
}

// trackingParams is the affiliate triple appended to every product URL;
// utm_campaign is filled from config at rewrite time.
var trackingOrder = []string{"utm_source", "utm_medium", "utm_campaign"}

// ExtractListings converts a Myntra results page into listings. Titles are
// assembled from the separate brand and product lines.
func (a *Adapter) ExtractListings(ctx context.Context, query string, payload []byte, maxResults int) ([]domain.ProductListing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MyntraAdapter(ExtractListings)",
	})

	doc, err := htmlcascade.ParseDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("myntra adapter: failed to parse document: %w", err)
	}

	var listings []domain.ProductListing

	if containers, ok := htmlcascade.Containers(doc, containerSelectors); ok {
		containers.EachWithBreak(func(_ int, item *goquery.Selection) bool {
			if len(listings) >= maxResults {
				return false
			}

			title := a.titleFromItem(item)
			href := htmlcascade.Attr(item, "href", "a[href]")
			if title == "" || href == "" {
				return true
			}

			price, resolved := priceparser.Parse(htmlcascade.Text(item,
				"span.product-discountedPrice",
				"div.product-price span",
				"div.product-price",
			))

			listings = append(listings, domain.ProductListing{
				Title:         title,
				Price:         price,
				PriceResolved: resolved,
				URL:           a.rewriteURL(htmlcascade.ResolveURL(a.cfg.BaseURL, href)),
				Platform:      domain.PlatformMyntra,
				// Myntra lazy-loads card images, real URL sits in data-src
				ImageURL: htmlcascade.AnyAttr(item, []string{"data-src", "src"}, "img.img-responsive", "picture img", "img"),
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

// titleFromItem joins the brand line and the product line; either alone
// still identifies the item.
func (a *Adapter) titleFromItem(item *goquery.Selection) string {
	brand := htmlcascade.Text(item, "h3.product-brand")
	product := htmlcascade.Text(item, "h4.product-product", ".product-productMetaInfo h4")
	switch {
	case brand != "" && product != "":
		return brand + " " + product
	case product != "":
		return product
	default:
		return brand
	}
}

func (a *Adapter) rewriteURL(productURL string) string {
	if a.cfg.UTMCampaign == "" {
		return productURL
	}
	return affiliate.RewriteAll(productURL, map[string]string{
		"utm_source":   "affiliate",
		"utm_medium":   "cps",
		"utm_campaign": a.cfg.UTMCampaign,
	}, trackingOrder)
}

func (a *Adapter) syntheticListings(query string) []domain.ProductListing {
	searchURL := a.rewriteURL(a.searchURL(query))
	return []domain.ProductListing{
		{
			Title:    fmt.Sprintf("Trending %s", strings.TrimSpace(query)),
			Platform: domain.PlatformMyntra,
			URL:      searchURL,
		},
	}
}
