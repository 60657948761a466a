package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBudgetAmount = errors.New("budget monthly amount must be positive")
	ErrMissingCategory     = errors.New("budget category is required")
)

// Budget caps monthly spending for a single category. Category is unique:
// writing a second budget for the same category updates the existing row.
type Budget struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Category      string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"category"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_amount"`
	Currency      string          `gorm:"type:varchar(10)" json:"currency,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Category == "" {
		return ErrMissingCategory
	}
	if b.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
