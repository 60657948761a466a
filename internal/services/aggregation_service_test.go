package services

import (
	"testing"
	"time"

	"moneytalk/internal/database"
	"moneytalk/internal/models"
	"moneytalk/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AggregationServiceSuite defines the test suite for AggregationService
type AggregationServiceSuite struct {
	suite.Suite
	db         *database.DB
	txnRepo    repositories.TransactionRepositoryInterface
	budgetRepo repositories.BudgetRepositoryInterface
	service    AggregationServiceInterface
}

// SetupTest runs before each test in the suite
func (s *AggregationServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.txnRepo = repositories.NewTransactionRepository(s.db.DB)
	s.budgetRepo = repositories.NewBudgetRepository(s.db.DB)
	s.service = NewAggregationService(s.txnRepo, s.budgetRepo, NewPrometheusMetrics(prometheus.NewRegistry()))
}

// TearDownTest runs after each test in the suite
func (s *AggregationServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAggregationServiceSuite runs the test suite
func TestAggregationServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceSuite))
}

func (s *AggregationServiceSuite) TestSummary() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, "3000.00", "salary", false, now)
	database.CreateTestTransaction(s.T(), s.db, "1200.00", "housing", true, now)
	database.CreateTestTransaction(s.T(), s.db, "300.50", "food", true, now)

	summary, err := s.service.Summary()
	s.NoError(err)
	s.True(summary.Income.Equal(decimal.RequireFromString("3000.00")))
	s.True(summary.Expense.Equal(decimal.RequireFromString("1500.50")))
	s.True(summary.Balance.Equal(decimal.RequireFromString("1499.50")))
}

func (s *AggregationServiceSuite) TestSummary_EmptyLedger() {
	summary, err := s.service.Summary()
	s.NoError(err)
	s.True(summary.Income.IsZero())
	s.True(summary.Expense.IsZero())
	s.True(summary.Balance.IsZero())
}

func (s *AggregationServiceSuite) TestTrends_LabelsCrossYearBoundary() {
	now := time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)

	series, err := s.service.Trends(now, 3)
	s.NoError(err)
	s.Equal([]string{"2025-12", "2026-01", "2026-02"}, series.Labels)
	s.Len(series.Income, 3)
	s.Len(series.Expense, 3)
}

func (s *AggregationServiceSuite) TestTrends_MonthBuckets() {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	// One expense per month, plus income in the middle month
	database.CreateTestTransaction(s.T(), s.db, "100.00", "food", true,
		time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "200.00", "food", true,
		time.Date(2026, time.February, 28, 23, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "3000.00", "salary", false,
		time.Date(2026, time.February, 25, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "50.00", "transport", true,
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	series, err := s.service.Trends(now, 3)
	s.NoError(err)
	s.Equal([]string{"2026-01", "2026-02", "2026-03"}, series.Labels)

	s.True(series.Expense[0].Equal(decimal.RequireFromString("100.00")))
	s.True(series.Expense[1].Equal(decimal.RequireFromString("200.00")))
	s.True(series.Expense[2].Equal(decimal.RequireFromString("50.00")))

	s.True(series.Income[0].IsZero())
	s.True(series.Income[1].Equal(decimal.RequireFromString("3000.00")))
	s.True(series.Income[2].IsZero())
}

func (s *AggregationServiceSuite) TestTrends_BreakdownCoversLastCompletedMonth() {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	// February (last completed month) expenses
	database.CreateTestTransaction(s.T(), s.db, "200.00", "food", true,
		time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, "80.00", "transport", true,
		time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))
	// March expense must not appear in the breakdown
	database.CreateTestTransaction(s.T(), s.db, "999.00", "shopping", true,
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))

	series, err := s.service.Trends(now, 2)
	s.NoError(err)
	s.Len(series.CategoryBreakdown, 2)
	s.True(series.CategoryBreakdown["food"].Equal(decimal.RequireFromString("200.00")))
	s.True(series.CategoryBreakdown["transport"].Equal(decimal.RequireFromString("80.00")))
	s.NotContains(series.CategoryBreakdown, "shopping")
}

func (s *AggregationServiceSuite) TestBudgetWarning_Thresholds() {
	_, err := s.budgetRepo.Upsert(&models.Budget{
		Category:      "food",
		MonthlyAmount: decimal.RequireFromString("100.00"),
	})
	s.Require().NoError(err)

	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	// 84% spent: below the warning threshold
	database.CreateTestTransaction(s.T(), s.db, "84.00", "food", true, now)
	warning, err := s.service.BudgetWarning("food", now)
	s.NoError(err)
	s.Empty(warning)

	// 85% exactly: warning fires
	database.CreateTestTransaction(s.T(), s.db, "1.00", "food", true, now)
	warning, err = s.service.BudgetWarning("food", now)
	s.NoError(err)
	s.Contains(warning, "approaching budget")
	s.Contains(warning, "85%")

	// 101%: exceeded
	database.CreateTestTransaction(s.T(), s.db, "16.00", "food", true, now)
	warning, err = s.service.BudgetWarning("food", now)
	s.NoError(err)
	s.Contains(warning, "budget exceeded")
}

func (s *AggregationServiceSuite) TestBudgetWarning_NoBudget() {
	warning, err := s.service.BudgetWarning("transport", time.Now())
	s.NoError(err)
	s.Empty(warning)
}

func (s *AggregationServiceSuite) TestBudgetWarning_OnlyCurrentMonthCounts() {
	_, err := s.budgetRepo.Upsert(&models.Budget{
		Category:      "food",
		MonthlyAmount: decimal.RequireFromString("100.00"),
	})
	s.Require().NoError(err)

	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	// Last month's spend is irrelevant
	database.CreateTestTransaction(s.T(), s.db, "500.00", "food", true, now.AddDate(0, -1, 0))

	warning, err := s.service.BudgetWarning("food", now)
	s.NoError(err)
	s.Empty(warning)
}
