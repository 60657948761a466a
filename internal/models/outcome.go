package models

import "github.com/shopspring/decimal"

// OutcomeKind identifies the shape of a command outcome
type OutcomeKind string

const (
	OutcomeAdded        OutcomeKind = "added"
	OutcomeNeedAmount   OutcomeKind = "need_amount"
	OutcomeSummary      OutcomeKind = "summary"
	OutcomeList         OutcomeKind = "list"
	OutcomeFound        OutcomeKind = "found"
	OutcomeDeleted      OutcomeKind = "deleted"
	OutcomeUnrecognized OutcomeKind = "unrecognized"
)

// Summary holds all-time ledger totals
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// PartialCommand carries the fields extracted from a command whose amount
// could not be determined, so a caller can re-prompt instead of guessing.
type PartialCommand struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Outcome is the structured result of interpreting one free-text command.
// need_amount is a success-shaped outcome, not an error: the intent was
// recognized but the amount is missing.
type Outcome struct {
	Kind          OutcomeKind    `json:"kind"`
	Intent        string         `json:"intent"`
	Transaction   *Transaction   `json:"transaction,omitempty"`
	Partial       *PartialCommand `json:"partial,omitempty"`
	Summary       *Summary       `json:"summary,omitempty"`
	Transactions  []Transaction  `json:"transactions,omitempty"`
	DeletedID     uint           `json:"deleted_id,omitempty"`
	BudgetWarning string         `json:"budget_warning,omitempty"`
}
