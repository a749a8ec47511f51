package constants

import (
	"strings"
)

type Category string

const (
	Groceries  Category = "Groceries"
	FoodDining Category = "Food & Dining"
	Fuel       Category = "Fuel"
	Healthcare Category = "Healthcare"
	Supplies   Category = "Supplies"
	Other      Category = "Other"
)

var allCategories = []Category{
	Groceries,
	FoodDining,
	Fuel,
	Healthcare,
	Supplies,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form label onto the fixed category set.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"grocery":     Groceries,
		"supermarket": Groceries,
		"food":        FoodDining,
		"dining":      FoodDining,
		"restaurant":  FoodDining,
		"gas":         Fuel,
		"petrol":      Fuel,
		"pharmacy":    Healthcare,
		"medical":     Healthcare,
		"hardware":    Supplies,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
