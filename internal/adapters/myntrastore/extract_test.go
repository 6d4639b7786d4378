package myntrastore

import (
	"context"
	"net/url"
	"testing"

	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsFixture = `
<html><body>
  <ul class="results-base">
    <li class="product-base">
      <a href="/boat/airdopes-141/p/123">
        <h3 class="product-brand">boAt</h3>
        <h4 class="product-product">Airdopes 141</h4>
        <div class="product-price"><span class="product-discountedPrice">Rs. 1099</span></div>
        <img class="img-responsive" src="" data-src="https://img.example/airdopes.jpg"/>
      </a>
    </li>
    <li class="product-base">
      <a href="/noise/smartwatch/p/456">
        <h4 class="product-product">ColorFit Pulse</h4>
        <div class="product-price">Rs. 1799</div>
      </a>
    </li>
    <li class="product-base">
      <h3 class="product-brand">Ad banner without link</h3>
    </li>
  </ul>
</body></html>`

func newTestAdapter(t *testing.T, synthetic bool) *Adapter {
	t.Helper()
	a, err := New(Config{UTMCampaign: "giftme", SyntheticFallback: synthetic})
	require.NoError(t, err)
	return a
}

func TestExtractListingsJoinsBrandAndProduct(t *testing.T) {
	a := newTestAdapter(t, false)

	listings, err := a.ExtractListings(context.Background(), "earbuds", []byte(resultsFixture), 10)
	require.NoError(t, err)
	require.Len(t, listings, 2, "the linkless ad banner must be skipped")

	first := listings[0]
	assert.Equal(t, "boAt Airdopes 141", first.Title)
	assert.True(t, first.PriceResolved)
	assert.Equal(t, float64(1099), first.Price)
	assert.Equal(t, domain.PlatformMyntra, first.Platform)
	assert.Equal(t, "https://img.example/airdopes.jpg", first.ImageURL)

	u, err := url.Parse(first.URL)
	require.NoError(t, err)
	assert.Equal(t, "/boat/airdopes-141/p/123", u.Path)
	assert.Equal(t, "affiliate", u.Query().Get("utm_source"))
	assert.Equal(t, "cps", u.Query().Get("utm_medium"))
	assert.Equal(t, "giftme", u.Query().Get("utm_campaign"))

	// brand line missing, product line alone identifies the item
	second := listings[1]
	assert.Equal(t, "ColorFit Pulse", second.Title)
	assert.Equal(t, float64(1799), second.Price)
}

func TestExtractListingsWithoutCampaignLeavesURLAlone(t *testing.T) {
	a, err := New(Config{})
	require.NoError(t, err)

	listings, err := a.ExtractListings(context.Background(), "earbuds", []byte(resultsFixture), 10)
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	u, err := url.Parse(listings[0].URL)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get("utm_campaign"))
}

func TestExtractListingsEmptyDocument(t *testing.T) {
	a := newTestAdapter(t, false)

	_, err := a.ExtractListings(context.Background(), "q", []byte("<html></html>"), 10)
	assert.ErrorIs(t, err, domain.ErrNoListingsExtracted)
}

func TestExtractListingsSyntheticFallback(t *testing.T) {
	a := newTestAdapter(t, true)

	listings, err := a.ExtractListings(context.Background(), "running shoes", []byte("<html></html>"), 10)
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	assert.Contains(t, listings[0].Title, "running shoes")
	assert.Equal(t, domain.PlatformMyntra, listings[0].Platform)
	assert.Contains(t, listings[0].URL, "utm_campaign=giftme")
}
