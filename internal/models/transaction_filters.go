package models

import "time"

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	Category  string
	IsExpense *bool
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}
