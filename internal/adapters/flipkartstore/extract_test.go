package flipkartstore

import (
	"context"
	"testing"

	"github.com/shrey258/flag-me-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the grid container matches but the row carries no product link
const gridRowWithoutLinkFixture = `
<html><body>
  <div class="_1AtVbE"><div class="_13oc-S">
    <div class="_4rR01T">Separator row without a link</div>
  </div></div>
</body></html>`

// only the third container selector matches: the small-card layout
const smallCardFixture = `
<html><body>
  <div class="_4ddWXP">
    <a class="s1Q9rs" href="/boat-airdopes-141/p/itm1">boAt Airdopes 141</a>
    <div class="_30jeq3">₹1,099</div>
    <img class="_396cs4" src="https://img.example/airdopes.jpg"/>
  </div>
  <div class="_4ddWXP">
    <div class="_30jeq3">₹999</div>
  </div>
  <div class="_4ddWXP">
    <a class="s1Q9rs" href="https://www.flipkart.com/noise-buds/p/itm2">Noise Buds VS104</a>
    <div class="Nx9bqj">₹1,499</div>
  </div>
</body></html>`

func newTestAdapter(t *testing.T, synthetic bool) *Adapter {
	t.Helper()
	a, err := New(Config{AffiliateID: "giftapp", SyntheticFallback: synthetic})
	require.NoError(t, err)
	return a
}

func TestExtractListingsSmallCardLayout(t *testing.T) {
	a := newTestAdapter(t, false)

	listings, err := a.ExtractListings(context.Background(), "earbuds", []byte(smallCardFixture), 10)
	require.NoError(t, err)
	require.Len(t, listings, 2, "the card without a link must be skipped")

	first := listings[0]
	assert.Equal(t, "boAt Airdopes 141", first.Title)
	assert.True(t, first.PriceResolved)
	assert.Equal(t, float64(1099), first.Price)
	assert.Equal(t, "https://www.flipkart.com/boat-airdopes-141/p/itm1?affid=giftapp", first.URL)
	assert.Equal(t, domain.PlatformFlipkart, first.Platform)
	assert.Equal(t, "https://img.example/airdopes.jpg", first.ImageURL)

	// absolute product URL passes through resolution, price from the
	// redesigned price node
	second := listings[1]
	assert.Equal(t, "Noise Buds VS104", second.Title)
	assert.Equal(t, float64(1499), second.Price)
	assert.Equal(t, "https://www.flipkart.com/noise-buds/p/itm2?affid=giftapp", second.URL)
}

func TestExtractListingsHonorsMaxResults(t *testing.T) {
	a := newTestAdapter(t, false)

	listings, err := a.ExtractListings(context.Background(), "earbuds", []byte(smallCardFixture), 1)
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestExtractListingsNoUsableItems(t *testing.T) {
	a := newTestAdapter(t, false)

	_, err := a.ExtractListings(context.Background(), "q", []byte(gridRowWithoutLinkFixture), 10)
	assert.ErrorIs(t, err, domain.ErrNoListingsExtracted)
}

func TestExtractListingsSyntheticFallback(t *testing.T) {
	a := newTestAdapter(t, true)

	listings, err := a.ExtractListings(context.Background(), "smart watch", []byte("<html></html>"), 10)
	require.NoError(t, err)
	require.NotEmpty(t, listings)

	for _, l := range listings {
		assert.Contains(t, l.Title, "smart watch")
		assert.Equal(t, domain.PlatformFlipkart, l.Platform)
		assert.Contains(t, l.URL, "affid=giftapp")
	}
}
