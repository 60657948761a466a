package handlers

import (
	stderrors "errors"
	"net/http"

	"moneytalk/internal/dto"
	"moneytalk/internal/errors"
	"moneytalk/internal/models"
	"moneytalk/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetRepo repositories.BudgetRepositoryInterface) *BudgetHandler {
	return &BudgetHandler{budgetRepo: budgetRepo}
}

// UpsertBudget creates or replaces the monthly budget for a category
// @Summary Upsert budget
// @Description Set the monthly budget for a category. Replaces an existing budget for the same category.
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.UpsertBudgetRequest true "Budget"
// @Success 200 {object} models.Budget "Existing budget updated"
// @Success 201 {object} models.Budget "Budget created"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Invalid amount"
// @Router /budgets [post]
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.MonthlyAmount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.BudgetInvalidAmount)
	}

	budget := &models.Budget{
		Category:      req.Category,
		MonthlyAmount: amount,
		Currency:      req.Currency,
	}

	created, err := h.budgetRepo.Upsert(budget)
	if err != nil {
		if stderrors.Is(err, models.ErrInvalidBudgetAmount) {
			return SendError(c, errors.BudgetInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, budget)
}

// ListBudgets retrieves all budgets
// @Summary List budgets
// @Tags Budgets
// @Produce json
// @Success 200 {object} SuccessResponse "Budgets"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgetRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: budgets,
		Meta: map[string]int{"count": len(budgets)},
	})
}

// DeleteBudget removes a budget by id
// @Summary Delete budget
// @Tags Budgets
// @Param id path int true "Budget ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetRepo.Delete(id); err != nil {
		if stderrors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
