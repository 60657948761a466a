package dto

// UpsertBudgetRequest creates or replaces the monthly budget for a category
type UpsertBudgetRequest struct {
	Category      string `json:"category" validate:"required"`
	MonthlyAmount string `json:"monthly_amount" validate:"required,money_string"`
	Currency      string `json:"currency" validate:"omitempty,len=3"`
}
