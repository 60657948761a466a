package handlers

import (
	stderrors "errors"
	"net/http"

	"moneytalk/internal/dto"
	"moneytalk/internal/errors"
	"moneytalk/internal/services"

	"github.com/labstack/echo/v4"
)

// AdvisorHandler handles free-form finance question requests
type AdvisorHandler struct {
	advisor services.AdvisorServiceInterface
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(advisor services.AdvisorServiceInterface) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisor}
}

// Ask forwards a question to the advisor model and returns its answer verbatim
// @Summary Ask the advisor
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} errors.ErrorResponse "ADVISOR_002 - Empty question"
// @Failure 502 {object} errors.ErrorResponse "ADVISOR_001 - Upstream failure"
// @Router /ask [post]
func (h *AdvisorHandler) Ask(c echo.Context) error {
	var req dto.AskRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	answer, err := h.advisor.Ask(c.Request().Context(), req.Question)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrEmptyQuestion):
			return SendError(c, errors.AdvisorEmptyQuestion)
		case stderrors.Is(err, services.ErrAdvisorFailure):
			return SendError(c, errors.AdvisorUpstreamError)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.AskResponse{Answer: answer})
}
