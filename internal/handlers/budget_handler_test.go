package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moneytalk/internal/database"
	"moneytalk/internal/models"
	"moneytalk/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *BudgetHandler
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.db = database.SetupTestDB(s.T())
	s.handler = NewBudgetHandler(repositories.NewBudgetRepository(s.db.DB))
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetHandlerTestSuite) postBudget(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.UpsertBudget(c))
	return rec
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_CreateThenUpdate() {
	rec := s.postBudget(`{"category":"food","monthly_amount":"400.00"}`)
	s.Equal(http.StatusCreated, rec.Code)

	var created models.Budget
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.NotZero(created.ID)

	// Same category again: updated in place, 200 instead of 201
	rec = s.postBudget(`{"category":"food","monthly_amount":"550.00"}`)
	s.Equal(http.StatusOK, rec.Code)

	var updated models.Budget
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal(created.ID, updated.ID)
	s.Equal("550.00", updated.MonthlyAmount.StringFixed(2))
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_InvalidAmount() {
	rec := s.postBudget(`{"category":"food","monthly_amount":"0"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errResp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	s.Equal("VALIDATION_001", errResp.Error.Code)
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_MissingCategory() {
	rec := s.postBudget(`{"monthly_amount":"100.00"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestListBudgets() {
	database.CreateTestBudget(s.T(), s.db, "food", "400.00")
	database.CreateTestBudget(s.T(), s.db, "transport", "120.00")

	req := httptest.NewRequest(http.MethodGet, "/api/budgets", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Budget `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 2)
}

func (s *BudgetHandlerTestSuite) TestDeleteBudget_NotFound() {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/budgets/:id")
	c.SetParamNames("id")
	c.SetParamValues("77")

	s.NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
