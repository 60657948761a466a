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

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalRepo repositories.GoalRepositoryInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalRepo repositories.GoalRepositoryInterface) *GoalHandler {
	return &GoalHandler{goalRepo: goalRepo}
}

// CreateGoal creates a savings goal
// @Summary Create goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal"
// @Success 201 {object} models.Goal
// @Failure 400 {object} errors.ErrorResponse "GOAL_002 - Invalid amount"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.GoalInvalidAmount)
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date must be after start_date"))
	}

	goal := &models.Goal{
		Title:        req.Title,
		TargetAmount: amount,
		EndDate:      req.EndDate,
	}
	if req.StartDate != nil {
		goal.StartDate = *req.StartDate
	}

	if err := h.goalRepo.Create(goal); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, goal)
}

// ListGoals retrieves all goals
// @Summary List goals
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse "Goals"
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	goals, err := h.goalRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: goals,
		Meta: map[string]int{"count": len(goals)},
	})
}

// DeleteGoal removes a goal by id
// @Summary Delete goal
// @Tags Goals
// @Param id path int true "Goal ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	if err := h.goalRepo.Delete(id); err != nil {
		if stderrors.Is(err, repositories.ErrGoalNotFound) {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
