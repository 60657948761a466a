package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	IntervalMonthly = "monthly"
	IntervalWeekly  = "weekly"
)

var (
	ErrInvalidInterval        = errors.New("invalid recurring interval")
	ErrInvalidRecurringAmount = errors.New("recurring amount must be positive")
)

// RecurringRule is a template that materializes one Transaction each time
// NextRun comes due. Transactions it produced keep a back-reference to the
// rule but are never deleted with it.
type RecurringRule struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	IsExpense   bool            `gorm:"not null" json:"is_expense"`
	Interval    string          `gorm:"type:varchar(10);not null" json:"interval"`
	NextRun     time.Time       `gorm:"not null;index" json:"next_run"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate hook for RecurringRule
func (r *RecurringRule) BeforeCreate(tx *gorm.DB) error {
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if r.NextRun.IsZero() {
		r.NextRun = time.Now()
	}
	return r.Validate()
}

// Validate validates the recurring rule fields
func (r *RecurringRule) Validate() error {
	if !IsValidInterval(r.Interval) {
		return ErrInvalidInterval
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRecurringAmount
	}
	if r.Description == "" {
		return ErrMissingDescription
	}
	return nil
}

// IsDue reports whether the rule should materialize a transaction as of now
func (r *RecurringRule) IsDue(now time.Time) bool {
	return !r.NextRun.After(now)
}

// Materialize builds the transaction this rule produces for its current
// NextRun. The transaction is dated at the pre-advance NextRun.
func (r *RecurringRule) Materialize() *Transaction {
	id := r.ID
	return &Transaction{
		Amount:          r.Amount,
		Category:        r.Category,
		Description:     r.Description,
		Timestamp:       r.NextRun,
		IsExpense:       r.IsExpense,
		RecurringRuleID: &id,
	}
}

// Advance moves NextRun forward by one interval. Monthly advancement adds a
// calendar month preserving the day-of-month, clamped to the last valid day
// of the target month (Jan 31 -> Feb 28, or Feb 29 in leap years).
func (r *RecurringRule) Advance() {
	switch r.Interval {
	case IntervalWeekly:
		r.NextRun = r.NextRun.AddDate(0, 0, 7)
	case IntervalMonthly:
		r.NextRun = addMonthClamped(r.NextRun)
	}
}

// IsValidInterval checks if the interval is a supported value
func IsValidInterval(interval string) bool {
	switch interval {
	case IntervalMonthly, IntervalWeekly:
		return true
	default:
		return false
	}
}

// AllIntervals returns all supported interval values
func AllIntervals() []string {
	return []string{IntervalMonthly, IntervalWeekly}
}

func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()

	// Day 0 of month+2 is the last day of month+1; time.Date normalizes
	// month overflow across year boundaries.
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, month+1, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// TableName returns the table name for RecurringRule
func (r *RecurringRule) TableName() string {
	return "recurring_rules"
}
