package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidGoalAmount = errors.New("goal target amount must be positive")
	ErrMissingGoalTitle  = errors.New("goal title is required")
)

// Goal is a savings target. The core does not compute progress against it;
// the record only carries what the user declared.
type Goal struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	StartDate    time.Time       `gorm:"not null" json:"start_date"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.StartDate.IsZero() {
		g.StartDate = time.Now()
	}
	return g.Validate()
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.Title == "" {
		return ErrMissingGoalTitle
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidGoalAmount
	}
	return nil
}

// TableName returns the table name for Goal
func (g *Goal) TableName() string {
	return "goals"
}
