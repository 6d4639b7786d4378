package priceparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCleanAmounts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"rupee symbol with grouping", "₹29,990", 29990},
		{"rs prefix with decimals", "Rs. 1,299.00", 1299},
		{"plain integer", "499", 499},
		{"indian grouping", "1,29,990", 129990},
		{"mrp label", "M.R.P.: ₹2,499", 2499},
		{"surrounding whitespace", "  ₹ 750  ", 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFallsBackToDigitGroup(t *testing.T) {
	// direct parse fails on a range; the first digit group wins
	got, ok := Parse("₹999 - ₹1,299")
	assert.True(t, ok)
	assert.Equal(t, float64(999), got)

	got, ok = Parse("Deal price 1,499 only today")
	assert.True(t, ok)
	assert.Equal(t, float64(1499), got)
}

func TestParseReportsNotFound(t *testing.T) {
	for _, raw := range []string{"", "   ", "Currently unavailable", "Free", "₹"} {
		_, ok := Parse(raw)
		assert.False(t, ok, "expected no amount for %q", raw)
	}
}

func TestParseRejectsNonPositive(t *testing.T) {
	_, ok := Parse("0")
	assert.False(t, ok)

	_, ok = Parse("₹0.00")
	assert.False(t, ok)
}
