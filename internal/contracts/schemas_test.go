package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSearchProductsRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"minimal valid", `{"query": "headphones"}`, false},
		{"full valid", `{"query": "headphones", "min_price": 500, "max_price": 5000, "platforms": ["Amazon", "Myntra"], "max_results": 15}`, false},
		{"missing query", `{"min_price": 500}`, true},
		{"empty query", `{"query": ""}`, true},
		{"negative min_price", `{"query": "q", "min_price": -1}`, true},
		{"query wrong type", `{"query": 42}`, true},
		{"unknown field", `{"query": "q", "sort": "asc"}`, true},
		{"not json", `{"query": `, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(SearchProductsRequest, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRecommendationsRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"interests": ["cooking"], "price_range": "medium"}`, false},
		{"interests only", `{"interests": ["cooking", "gaming"]}`, false},
		{"missing interests", `{"price_range": "low"}`, true},
		{"empty interests", `{"interests": []}`, true},
		{"bad price_range", `{"interests": ["cooking"], "price_range": "extreme"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(RecommendationsRequest, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	err := ValidateRequest("not-registered", []byte(`{}`))
	assert.Error(t, err)
}
