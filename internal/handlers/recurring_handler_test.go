package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"moneytalk/internal/database"
	"moneytalk/internal/dto"
	"moneytalk/internal/models"
	"moneytalk/internal/repositories"
	"moneytalk/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type RecurringHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	repo    repositories.RecurringRuleRepositoryInterface
	handler *RecurringHandler
}

func TestRecurringHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecurringHandlerTestSuite))
}

func (s *RecurringHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewRecurringRuleRepository(s.db.DB)
	recurrence := services.NewRecurrenceService(s.repo, services.NewPrometheusMetrics(prometheus.NewRegistry()))
	s.handler = NewRecurringHandler(s.repo, recurrence)
}

func (s *RecurringHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *RecurringHandlerTestSuite) TestCreateRule() {
	body := `{"description":"rent","amount":"1200.00","category":"housing","is_expense":true,"interval":"monthly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/recurring", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateRule(c))
	s.Equal(http.StatusCreated, rec.Code)

	var rule models.RecurringRule
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &rule))
	s.NotZero(rule.ID)
	s.Equal(models.IntervalMonthly, rule.Interval)
	s.False(rule.NextRun.IsZero())
}

func (s *RecurringHandlerTestSuite) TestCreateRule_InvalidInterval() {
	body := `{"description":"rent","amount":"1200.00","interval":"daily"}`
	req := httptest.NewRequest(http.MethodPost, "/api/recurring", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateRule(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RecurringHandlerTestSuite) TestRunDue() {
	database.CreateTestRecurringRule(s.T(), s.db, "rent", "1200.00", models.IntervalMonthly, time.Now().AddDate(0, 0, -1))

	req := httptest.NewRequest(http.MethodPost, "/api/recurring/run", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.RunDue(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RunRecurringResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Booked)
	s.Require().Len(resp.Created, 1)
	s.NotZero(resp.Created[0].TransactionID)
	s.Equal("rent", resp.Created[0].Description)
	s.Equal("1200.00", resp.Created[0].Amount)
}

func (s *RecurringHandlerTestSuite) TestDeleteRule_KeepsProducedTransactions() {
	rule := database.CreateTestRecurringRule(s.T(), s.db, "rent", "1200.00", models.IntervalMonthly, time.Now().AddDate(0, 0, -1))

	txnRepo := repositories.NewTransactionRepository(s.db.DB)
	recurrence := services.NewRecurrenceService(s.repo, services.NewPrometheusMetrics(prometheus.NewRegistry()))
	created, err := recurrence.RunDue(time.Now())
	s.Require().NoError(err)
	s.Require().Len(created, 1)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/recurring/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.NoError(s.handler.DeleteRule(c))
	s.Equal(http.StatusNoContent, rec.Code)

	// The booked transaction survives the rule's deletion
	recent, err := txnRepo.GetRecent(10)
	s.NoError(err)
	s.Require().Len(recent, 1)
	s.Require().NotNil(recent[0].RecurringRuleID)
	s.Equal(rule.ID, *recent[0].RecurringRuleID)
}
