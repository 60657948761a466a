package handlers

import (
	stderrors "errors"
	"net/http"

	"moneytalk/internal/dto"
	"moneytalk/internal/errors"
	"moneytalk/internal/repositories"
	"moneytalk/internal/services"

	"github.com/labstack/echo/v4"
)

// CommandHandler handles free-text ledger commands
type CommandHandler struct {
	commandService services.CommandServiceInterface
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(commandService services.CommandServiceInterface) *CommandHandler {
	return &CommandHandler{commandService: commandService}
}

// Interpret executes one free-text command
// @Summary Interpret a free-text command
// @Description Classify the text into an intent, extract its fields and execute the operation
// @Tags Commands
// @Accept json
// @Produce json
// @Param request body dto.CommandRequest true "Command text"
// @Success 200 {object} models.Outcome "Structured command outcome"
// @Failure 400 {object} errors.ErrorResponse "COMMAND_001 - Empty command or COMMAND_002 - No target id"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /command [post]
func (h *CommandHandler) Interpret(c echo.Context) error {
	var req dto.CommandRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	outcome, err := h.commandService.Interpret(req.Text)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrEmptyCommand):
			return SendError(c, errors.CommandEmptyText)
		case stderrors.Is(err, services.ErrNoTargetID):
			return SendError(c, errors.CommandNoTargetID)
		case stderrors.Is(err, repositories.ErrTransactionNotFound):
			return SendError(c, errors.TransactionNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, outcome)
}
