// Package parser turns free-text commands into intents and extracted fields.
// Classification is deterministic keyword matching applied in a fixed
// priority order; the rules are not mutually exclusive, so the order is part
// of the contract ("I paid my salary" is an expense because the expense rule
// runs first).
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent is the classified purpose of a free-text command
type Intent string

const (
	IntentAddExpense Intent = "add_expense"
	IntentAddIncome  Intent = "add_income"
	IntentSummary    Intent = "summary"
	IntentList       Intent = "list"
	IntentDelete     Intent = "delete"
	IntentGetByID    Intent = "get_by_id"
	IntentUnknown    Intent = "unknown"
)

var (
	expenseKeywords = []string{"spent", "bought", "pay", "paid", "purchase"}
	incomeKeywords  = []string{"earned", "salary", "received", "income", "got paid"}
	summaryKeywords = []string{"summary", "balance"}
	listKeywords    = []string{"list", "transactions", "show"}
	deleteKeywords  = []string{"delete", "remove"}

	// A bare short numeral addresses a transaction by id.
	bareIDPattern = regexp.MustCompile(`^\d{1,6}$`)
	idPattern     = regexp.MustCompile(`\b\d{1,6}\b`)
)

// Classify maps text to an intent. For IntentGetByID the matched id is
// returned as the second value; it is zero for every other intent.
func Classify(text string) (Intent, uint) {
	lower := strings.ToLower(strings.TrimSpace(text))

	switch {
	case containsAny(lower, expenseKeywords):
		return IntentAddExpense, 0
	case containsAny(lower, incomeKeywords):
		return IntentAddIncome, 0
	case containsAny(lower, summaryKeywords):
		return IntentSummary, 0
	case containsAny(lower, listKeywords):
		return IntentList, 0
	case containsAny(lower, deleteKeywords):
		return IntentDelete, 0
	case bareIDPattern.MatchString(lower):
		id, _ := strconv.ParseUint(lower, 10, 64)
		return IntentGetByID, uint(id)
	default:
		return IntentUnknown, 0
	}
}

// ExtractID finds the first bare numeral of at most six digits anywhere in
// the text. Used by the delete path, which addresses records by id rather
// than by amount.
func ExtractID(text string) (uint, bool) {
	match := idPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(match, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
