package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupKeyCanonicalizes(t *testing.T) {
	assert.Equal(t, DedupKey("sony wh 1000xm5 black"), DedupKey("Sony WH-1000XM5 (Black)"))
	assert.Equal(t, "boat airdopes 141", DedupKey("  boAt   Airdopes/141  "))
	assert.NotEqual(t, DedupKey("Sony WH-1000XM5"), DedupKey("Sony WH-1000XM4"))
}

func TestMergeCheapestKeepsCheapestVariant(t *testing.T) {
	listings := []ProductListing{
		{Title: "Sony WH-1000XM5 (Black)", Price: 29990, PriceResolved: true, Platform: PlatformAmazon},
		{Title: "sony wh 1000xm5 black", Price: 27990, PriceResolved: true, Platform: PlatformFlipkart},
	}

	merged := MergeCheapest(listings)

	assert.Len(t, merged, 1)
	assert.Equal(t, float64(27990), merged[0].Price)
	assert.Equal(t, PlatformFlipkart, merged[0].Platform)
}

func TestMergeCheapestUnresolvedNeverDisplacesResolved(t *testing.T) {
	listings := []ProductListing{
		{Title: "Kindle Paperwhite", Price: 13999, PriceResolved: true, Platform: PlatformAmazon},
		{Title: "kindle paperwhite", Platform: PlatformFlipkart},
	}

	merged := MergeCheapest(listings)

	assert.Len(t, merged, 1)
	assert.True(t, merged[0].PriceResolved)
	assert.Equal(t, float64(13999), merged[0].Price)

	// resolved displaces unresolved regardless of arrival order
	merged = MergeCheapest([]ProductListing{listings[1], listings[0]})
	assert.Len(t, merged, 1)
	assert.True(t, merged[0].PriceResolved)
}

func TestMergeCheapestIsIdempotent(t *testing.T) {
	listings := []ProductListing{
		{Title: "Item A", Price: 100, PriceResolved: true},
		{Title: "item a", Price: 90, PriceResolved: true},
		{Title: "Item B", Price: 50, PriceResolved: true},
	}

	once := MergeCheapest(listings)
	twice := MergeCheapest(once)

	assert.Equal(t, once, twice)
}

func TestFilterByPriceNilBoundsPassThrough(t *testing.T) {
	listings := []ProductListing{
		{Title: "A", Price: 100, PriceResolved: true},
		{Title: "B"},
	}

	assert.Equal(t, listings, FilterByPrice(listings, nil, nil))
}

func TestFilterByPriceInclusiveBounds(t *testing.T) {
	listings := []ProductListing{
		{Title: "below", Price: 99, PriceResolved: true},
		{Title: "at min", Price: 100, PriceResolved: true},
		{Title: "inside", Price: 300, PriceResolved: true},
		{Title: "at max", Price: 500, PriceResolved: true},
		{Title: "above", Price: 501, PriceResolved: true},
		{Title: "unresolved"},
	}
	min, max := 100.0, 500.0

	filtered := FilterByPrice(listings, &min, &max)

	titles := make([]string, 0, len(filtered))
	for _, l := range filtered {
		titles = append(titles, l.Title)
	}
	assert.Equal(t, []string{"at min", "inside", "at max"}, titles)
}

func TestFilterByPriceSingleBound(t *testing.T) {
	listings := []ProductListing{
		{Title: "cheap", Price: 50, PriceResolved: true},
		{Title: "pricey", Price: 5000, PriceResolved: true},
		{Title: "unresolved"},
	}

	min := 100.0
	filtered := FilterByPrice(listings, &min, nil)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "pricey", filtered[0].Title)

	max := 100.0
	filtered = FilterByPrice(listings, nil, &max)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "cheap", filtered[0].Title)
}

func TestSortByPriceAscendingUnresolvedLast(t *testing.T) {
	listings := []ProductListing{
		{Title: "no price one"},
		{Title: "mid", Price: 300, PriceResolved: true},
		{Title: "no price two"},
		{Title: "cheap", Price: 100, PriceResolved: true},
		{Title: "dear", Price: 900, PriceResolved: true},
	}

	SortByPrice(listings)

	titles := make([]string, 0, len(listings))
	for _, l := range listings {
		titles = append(titles, l.Title)
	}
	// unresolved listings keep their relative order at the tail
	assert.Equal(t, []string{"cheap", "mid", "dear", "no price one", "no price two"}, titles)
}
