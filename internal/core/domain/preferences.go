package domain

// GiftPreferences feed the rule-based query suggester. They are a light
// profile of the gift recipient, not an account entity.
type GiftPreferences struct {
	Interests  []string
	PriceRange string // "low", "medium" or "high"
}
