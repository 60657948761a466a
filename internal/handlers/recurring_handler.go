package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"moneytalk/internal/dto"
	"moneytalk/internal/errors"
	"moneytalk/internal/models"
	"moneytalk/internal/repositories"
	"moneytalk/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RecurringHandler handles recurring rule HTTP requests
type RecurringHandler struct {
	recurringRepo repositories.RecurringRuleRepositoryInterface
	recurrence    services.RecurrenceServiceInterface
}

// NewRecurringHandler creates a new recurring rule handler
func NewRecurringHandler(
	recurringRepo repositories.RecurringRuleRepositoryInterface,
	recurrence services.RecurrenceServiceInterface,
) *RecurringHandler {
	return &RecurringHandler{
		recurringRepo: recurringRepo,
		recurrence:    recurrence,
	}
}

// CreateRule creates a recurring transaction rule
// @Summary Create recurring rule
// @Tags Recurring
// @Accept json
// @Produce json
// @Param request body dto.CreateRecurringRuleRequest true "Rule"
// @Success 201 {object} models.RecurringRule
// @Failure 400 {object} errors.ErrorResponse "RECURRING_002 - Invalid interval"
// @Router /recurring [post]
func (h *RecurringHandler) CreateRule(c echo.Context) error {
	var req dto.CreateRecurringRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	rule := &models.RecurringRule{
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
		IsExpense:   req.IsExpense,
		Interval:    req.Interval,
	}
	if req.NextRun != nil {
		rule.NextRun = *req.NextRun
	}

	if err := h.recurringRepo.Create(rule); err != nil {
		if stderrors.Is(err, models.ErrInvalidInterval) {
			return SendError(c, errors.RecurringInvalidInterval)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, rule)
}

// ListRules retrieves all recurring rules
// @Summary List recurring rules
// @Tags Recurring
// @Produce json
// @Success 200 {object} SuccessResponse "Rules"
// @Router /recurring [get]
func (h *RecurringHandler) ListRules(c echo.Context) error {
	rules, err := h.recurringRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rules,
		Meta: map[string]int{"count": len(rules)},
	})
}

// DeleteRule removes a recurring rule. Transactions it already produced stay
// in the ledger.
// @Summary Delete recurring rule
// @Tags Recurring
// @Param id path int true "Rule ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "RECURRING_001 - Rule not found"
// @Router /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRule(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rule ID"))
	}

	if err := h.recurringRepo.Delete(id); err != nil {
		if stderrors.Is(err, repositories.ErrRecurringRuleNotFound) {
			return SendError(c, errors.RecurringNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RunDue triggers one recurring pass
// @Summary Run due recurring rules
// @Description Book one transaction per due rule and advance each rule's next run
// @Tags Recurring
// @Produce json
// @Success 200 {object} dto.RunRecurringResponse
// @Router /recurring/run [post]
func (h *RecurringHandler) RunDue(c echo.Context) error {
	created, err := h.recurrence.RunDue(time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	occurrences := make([]dto.RecurringOccurrence, 0, len(created))
	for _, txn := range created {
		occurrences = append(occurrences, dto.RecurringOccurrence{
			TransactionID: txn.ID,
			Description:   txn.Description,
			Amount:        txn.Amount.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, dto.RunRecurringResponse{
		Booked:  len(created),
		Created: occurrences,
	})
}
