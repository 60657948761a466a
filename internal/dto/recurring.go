package dto

import "time"

// CreateRecurringRuleRequest creates a recurring transaction rule
type CreateRecurringRuleRequest struct {
	Description string     `json:"description" validate:"required"`
	Amount      string     `json:"amount" validate:"required,money_string"`
	Category    string     `json:"category"`
	IsExpense   bool       `json:"is_expense"`
	Interval    string     `json:"interval" validate:"required,recurring_interval"`
	NextRun     *time.Time `json:"next_run"`
}

// RecurringOccurrence identifies one transaction booked by a recurring pass
type RecurringOccurrence struct {
	TransactionID uint   `json:"transaction_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
}

// RunRecurringResponse reports the result of a recurring pass
type RunRecurringResponse struct {
	Booked  int                   `json:"booked"`
	Created []RecurringOccurrence `json:"created"`
}
