package handlers

import (
	"net/http"

	"moneytalk/internal/config"
	"moneytalk/internal/dto"
	"moneytalk/internal/errors"
	"moneytalk/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder services.SeedServiceInterface
	cfg    *config.Config
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.SeedServiceInterface, cfg *config.Config) *DevHandler {
	return &DevHandler{
		seeder: seeder,
		cfg:    cfg,
	}
}

// SeedLedger populates the ledger with fake transactions
// @Summary Seed sample data
// @Description Insert fake transactions spread over the trailing six months. Development only.
// @Tags Development
// @Accept json
// @Produce json
// @Param request body dto.SeedRequest false "Seed options"
// @Success 200 {object} dto.SeedResponse
// @Failure 403 {object} errors.ErrorResponse "Not a development environment"
// @Router /dev/seed [post]
func (h *DevHandler) SeedLedger(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return echo.NewHTTPError(http.StatusForbidden, "seeding is only available in development")
	}

	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	inserted, err := h.seeder.Seed(req.Count)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{Inserted: inserted})
}
