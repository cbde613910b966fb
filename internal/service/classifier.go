package service

import (
	"strings"
)

// StaticCategorySuggester is the in-process stand-in for the hosted receipt
// classifier. It only runs when a transaction arrives without a category.
type StaticCategorySuggester struct {
	keywords map[string]string
}

// NewStaticCategorySuggester creates a suggester with a fixed keyword table
func NewStaticCategorySuggester() *StaticCategorySuggester {
	return &StaticCategorySuggester{
		keywords: map[string]string{
			"grocery":    "Groceries",
			"market":     "Groceries",
			"restaurant": "Dining",
			"cafe":       "Dining",
			"rent":       "Housing",
			"mortgage":   "Housing",
			"salary":     "Salary",
			"payroll":    "Salary",
			"fuel":       "Transport",
			"gas":        "Transport",
			"pharmacy":   "Health",
			"doctor":     "Health",
		},
	}
}

// Suggest returns a category for the description, falling back to "Other"
func (s *StaticCategorySuggester) Suggest(description string) string {
	lowered := strings.ToLower(description)
	for keyword, category := range s.keywords {
		if strings.Contains(lowered, keyword) {
			return category
		}
	}
	return "Other"
}
