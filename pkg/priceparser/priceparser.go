// Package priceparser normalizes raw price text scraped from product pages
// into a numeric amount. Input is whatever the markup happened to contain:
// "₹29,990", "Rs. 1,299.00", "1,299", "M.R.P.: ₹2,499" and so on.
package priceparser

import (
	"regexp"
	"strconv"
	"strings"
)

// digitGroupRe matches the first digit group in arbitrary text: one or more
// digits, optional comma-grouped digits, optional decimal part.
var digitGroupRe = regexp.MustCompile(`\d+(?:,\d+)*(?:\.\d+)?`)

// currencyMarkers are stripped before the direct parse attempt.
var currencyMarkers = []string{"₹", "$", "€", "£", "Rs.", "Rs", "INR", "MRP", "M.R.P.", ":"}

// Parse extracts a numeric amount from raw price text. The second return
// value is false when no positive amount could be recovered; Parse never
// panics and never fabricates a value.
func Parse(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}

	for _, marker := range currencyMarkers {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	// Direct parse of the cleaned text with thousands separators removed.
	if amount, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, ",", ""), 64); err == nil {
		return positive(amount)
	}

	// The cleaned text still carries noise (a range, a label, a unit).
	// Fall back to the first digit group found anywhere in the original.
	match := digitGroupRe.FindString(raw)
	if match == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return positive(amount)
}

func positive(amount float64) (float64, bool) {
	if amount <= 0 {
		return 0, false
	}
	return amount, true
}
