package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Matches a decimal numeral with up to two fractional digits, optionally
// with comma thousands separators: 20, 42.50, 1,250.99.
var amountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?`)

// ExtractAmount returns the first decimal numeral in the text. First match
// wins even when another number (an id, a quantity) precedes the actual
// price; callers that need an id use ExtractID instead.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	match := amountPattern.FindString(text)
	if match == "" {
		return decimal.Zero, false
	}

	match = strings.ReplaceAll(match, ",", "")
	amount, err := decimal.NewFromString(match)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}

	return amount, true
}
