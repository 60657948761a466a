package models

import "github.com/shopspring/decimal"

// CategoryTotal is one row of a category breakdown
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TrendSeries holds per-calendar-month income and expense sums for a number
// of trailing months, plus the expense breakdown of the last completed month.
// Labels are formatted YYYY-MM and align index-wise with Income and Expense.
type TrendSeries struct {
	Labels            []string                   `json:"labels"`
	Income            []decimal.Decimal          `json:"income"`
	Expense           []decimal.Decimal          `json:"expense"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
}
