package dto

import "time"

// CreateGoalRequest creates a savings goal
type CreateGoalRequest struct {
	Title        string     `json:"title" validate:"required"`
	TargetAmount string     `json:"target_amount" validate:"required,money_string"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}
