package parser

import (
	"strings"

	"moneytalk/internal/models"
)

type categoryRule struct {
	name     string
	keywords []string
}

// Table order is the tie-break: the first category whose keyword appears in
// the text wins, so more specific labels sit above broader ones.
var categoryTable = []categoryRule{
	{"food", []string{"food", "grocer", "restaurant", "lunch", "dinner", "breakfast", "coffee", "snack", "pizza", "takeaway"}},
	{"transport", []string{"uber", "taxi", "bus", "train", "metro", "fuel", "petrol", "gas station", "parking", "flight"}},
	{"housing", []string{"rent", "mortgage", "landlord"}},
	{"utilities", []string{"electric", "water bill", "internet", "phone bill", "heating", "utility"}},
	{"entertainment", []string{"movie", "cinema", "netflix", "spotify", "concert", "game", "gaming"}},
	{"shopping", []string{"clothes", "shoes", "amazon", "shopping", "electronics"}},
	{"health", []string{"doctor", "pharmacy", "medicine", "dentist", "gym", "hospital"}},
	{"salary", []string{"salary", "paycheck", "paycheque", "wage", "bonus"}},
}

// ExtractCategory scans the lowercased text against the ordered keyword
// table and returns the first matching category, or the default label when
// nothing matches.
func ExtractCategory(text string) string {
	lower := strings.ToLower(text)

	for _, rule := range categoryTable {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.name
			}
		}
	}

	return models.DefaultCategory
}

// KnownCategories returns the category labels in table order
func KnownCategories() []string {
	names := make([]string, 0, len(categoryTable))
	for _, rule := range categoryTable {
		names = append(names, rule.name)
	}
	return names
}
