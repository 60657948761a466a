package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCategory is used when no category keyword matches the command text
const DefaultCategory = "general"

var (
	ErrInvalidAmount      = errors.New("transaction amount must be positive")
	ErrMissingDescription = errors.New("transaction description is required")
)

// Transaction is a single ledger entry. Amount is always positive; IsExpense
// determines whether it counts against income or expense.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category        string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Timestamp       time.Time       `gorm:"not null;index" json:"timestamp"`
	IsExpense       bool            `gorm:"not null" json:"is_expense"`
	RecurringRuleID *uint           `gorm:"index" json:"recurring_rule_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if t.Description == "" {
		return ErrMissingDescription
	}
	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
