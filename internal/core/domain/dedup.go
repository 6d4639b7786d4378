package domain

import (
	"sort"
	"strings"
)

// dedupPunctuation is the set of characters replaced by spaces when building
// a dedup key. Platforms decorate the same product title with brackets and
// slashes differently, so these carry no identity.
const dedupPunctuation = "/()[]{},"

// DedupKey canonicalizes a display title into the key used to decide whether
// two listings describe the same physical product: lowercase, punctuation
// replaced by spaces, whitespace collapsed, trimmed. The original title is
// never modified.
func DedupKey(title string) string {
	key := strings.ToLower(title)
	key = strings.Map(func(r rune) rune {
		if strings.ContainsRune(dedupPunctuation, r) {
			return ' '
		}
		return r
	}, key)
	return strings.Join(strings.Fields(key), " ")
}

// MergeCheapest collapses listings sharing a DedupKey, keeping the cheapest
// variant. A listing with an unresolved price never displaces one whose
// price is known. The operation is idempotent.
func MergeCheapest(listings []ProductListing) []ProductListing {
	byKey := make(map[string]int, len(listings))
	merged := make([]ProductListing, 0, len(listings))

	for _, l := range listings {
		key := DedupKey(l.Title)
		idx, seen := byKey[key]
		if !seen {
			byKey[key] = len(merged)
			merged = append(merged, l)
			continue
		}
		if cheaperThan(l, merged[idx]) {
			merged[idx] = l
		}
	}
	return merged
}

func cheaperThan(a, b ProductListing) bool {
	if !a.PriceResolved {
		return false
	}
	if !b.PriceResolved {
		return true
	}
	return a.Price < b.Price
}

// FilterByPrice applies the inclusive [min, max] range. Nil bounds mean
// unbounded; with no bounds the input is returned as-is. When any bound is
// set, listings with an unresolved price are dropped: an unknown amount
// cannot be shown to satisfy the range.
func FilterByPrice(listings []ProductListing, min, max *float64) []ProductListing {
	if min == nil && max == nil {
		return listings
	}
	filtered := make([]ProductListing, 0, len(listings))
	for _, l := range listings {
		if !l.PriceResolved {
			continue
		}
		if min != nil && l.Price < *min {
			continue
		}
		if max != nil && l.Price > *max {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

// SortByPrice orders listings ascending by price. Listings with an
// unresolved price sort after every resolved one; the sort is stable so the
// relative order of equal-priced listings is preserved.
func SortByPrice(listings []ProductListing) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		if a.PriceResolved != b.PriceResolved {
			return a.PriceResolved
		}
		if !a.PriceResolved {
			return false
		}
		return a.Price < b.Price
	})
}
