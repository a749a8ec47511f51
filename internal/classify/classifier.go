// Package classify infers a spending category from a merchant name.
package classify

import (
	"strings"

	"github.com/snapledger/snapledger/constants"
)

// rule maps any of its keywords to one category. Rules are order-sensitive:
// the first rule with a keyword hit wins, so a "SHOP & CAFE" merchant lands
// in Groceries, not Food & Dining.
type rule struct {
	keywords []string
	category constants.Category
}

var rules = []rule{
	{keywords: []string{"SHOP", "MARKET", "STORE"}, category: constants.Groceries},
	{keywords: []string{"RESTAURANT", "CAFE", "FOOD"}, category: constants.FoodDining},
	{keywords: []string{"GAS", "PETROL", "FUEL", "STATION"}, category: constants.Fuel},
	{keywords: []string{"PHARMACY", "MEDICAL", "CLINIC"}, category: constants.Healthcare},
	{keywords: []string{"HARDWARE", "BUILDING"}, category: constants.Supplies},
}

// Classify returns the category for a merchant name, or "" when no rule
// matches. Absence is normal, not an error.
func Classify(merchant string) string {
	upper := strings.ToUpper(merchant)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(upper, kw) {
				return string(r.category)
			}
		}
	}
	return ""
}
