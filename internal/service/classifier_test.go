package service_test

import (
	"testing"

	"family-finance-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStaticCategorySuggester(t *testing.T) {
	suggester := service.NewStaticCategorySuggester()

	tests := []struct {
		description string
		expected    string
	}{
		{"Whole Foods Market downtown", "Groceries"},
		{"RENT payment March", "Housing"},
		{"Acme Corp payroll", "Salary"},
		{"Shell fuel stop", "Transport"},
		{"CVS Pharmacy", "Health"},
		{"mystery purchase", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggester.Suggest(tt.description))
		})
	}
}
