package handlers

import (
	"net/http"
	"strconv"
	"time"

	"moneytalk/internal/config"
	"moneytalk/internal/services"

	"github.com/labstack/echo/v4"
)

const maxTrendMonths = 36

// TrendsHandler handles trend and summary HTTP requests
type TrendsHandler struct {
	aggregation services.AggregationServiceInterface
	defaults    config.LedgerConfig
}

// NewTrendsHandler creates a new trends handler
func NewTrendsHandler(aggregation services.AggregationServiceInterface, defaults config.LedgerConfig) *TrendsHandler {
	return &TrendsHandler{
		aggregation: aggregation,
		defaults:    defaults,
	}
}

// GetSummary retrieves all-time ledger totals
// @Summary Ledger summary
// @Tags Trends
// @Produce json
// @Success 200 {object} models.Summary
// @Router /summary [get]
func (h *TrendsHandler) GetSummary(c echo.Context) error {
	summary, err := h.aggregation.Summary()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetTrends retrieves monthly income/expense series and the last completed
// month's category breakdown
// @Summary Monthly trends
// @Tags Trends
// @Produce json
// @Param months query int false "Number of trailing months" default(6)
// @Success 200 {object} models.TrendSeries
// @Router /trends [get]
func (h *TrendsHandler) GetTrends(c echo.Context) error {
	months := h.defaults.TrendMonths
	if raw := c.QueryParam("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 && parsed <= maxTrendMonths {
			months = parsed
		}
	}

	series, err := h.aggregation.Trends(time.Now(), months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, series)
}
