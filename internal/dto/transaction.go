package dto

import "time"

// CreateTransactionRequest creates a transaction directly, bypassing the
// free-text parser
type CreateTransactionRequest struct {
	Amount      string     `json:"amount" validate:"required,money_string"`
	Category    string     `json:"category"`
	Description string     `json:"description" validate:"required"`
	Timestamp   *time.Time `json:"timestamp"`
	IsExpense   bool       `json:"is_expense"`
}

// EditTransactionRequest edits an existing transaction. Nil fields are left
// unchanged.
type EditTransactionRequest struct {
	Amount      *string `json:"amount" validate:"omitempty,money_string"`
	Description *string `json:"description"`
	IsExpense   *bool   `json:"is_expense"`
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	Category  string     `query:"category"`
	IsExpense *bool      `query:"is_expense"`
	StartDate *time.Time `query:"start_date"`
	EndDate   *time.Time `query:"end_date"`
	Limit     int        `query:"limit"`
}
