package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"moneytalk/internal/models"
	"moneytalk/internal/repositories"

	"github.com/shopspring/decimal"
)

// Spend thresholds for budget warnings, as fractions of the monthly amount.
var (
	budgetWarnRatio     = decimal.NewFromFloat(0.85)
	budgetExceededRatio = decimal.NewFromInt(1)
)

type aggregationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewAggregationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
) AggregationServiceInterface {
	return &aggregationService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		metrics:         metrics,
	}
}

// Summary computes all-time income, expense and balance. An empty ledger
// yields three zeros, not an error.
func (s *aggregationService) Summary() (*models.Summary, error) {
	income, err := s.transactionRepo.SumAmounts(false, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	expense, err := s.transactionRepo.SumAmounts(true, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	summary := &models.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}

	balance, _ := summary.Balance.Float64()
	s.metrics.RecordGauge("ledger.balance", balance, nil)

	return summary, nil
}

// Trends computes income and expense sums for the trailing `months` calendar
// months ending with the month containing now, plus the expense breakdown of
// the last completed month. Month arithmetic goes through time.Date with an
// out-of-range month value, which normalizes across year boundaries.
func (s *aggregationService) Trends(now time.Time, months int) (*models.TrendSeries, error) {
	if months < 1 {
		months = 1
	}

	series := &models.TrendSeries{
		Labels:  make([]string, 0, months),
		Income:  make([]decimal.Decimal, 0, months),
		Expense: make([]decimal.Decimal, 0, months),
	}

	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := monthEnd(start)

		income, err := s.transactionRepo.SumAmounts(false, &start, &end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum income for %s: %w", start.Format("2006-01"), err)
		}

		expense, err := s.transactionRepo.SumAmounts(true, &start, &end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum expenses for %s: %w", start.Format("2006-01"), err)
		}

		series.Labels = append(series.Labels, start.Format("2006-01"))
		series.Income = append(series.Income, income)
		series.Expense = append(series.Expense, expense)
	}

	breakdown, err := s.lastCompletedMonthBreakdown(now)
	if err != nil {
		return nil, err
	}
	series.CategoryBreakdown = breakdown

	return series, nil
}

func (s *aggregationService) lastCompletedMonthBreakdown(now time.Time) (map[string]decimal.Decimal, error) {
	start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	end := monthEnd(start)

	totals, err := s.transactionRepo.GetCategoryTotals(true, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	breakdown := make(map[string]decimal.Decimal, len(totals))
	for _, row := range totals {
		breakdown[row.Category] = row.Total
	}
	return breakdown, nil
}

// BudgetWarning compares the category's spend in the month containing now
// against its monthly budget. No budget for the category means no warning.
func (s *aggregationService) BudgetWarning(category string, now time.Time) (string, error) {
	budget, err := s.budgetRepo.GetByCategory(category)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up budget: %w", err)
	}

	if budget.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
		return "", nil
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := monthEnd(start)

	spent, err := s.transactionRepo.SumByCategory(category, true, start, end)
	if err != nil {
		return "", fmt.Errorf("failed to sum category spend: %w", err)
	}

	ratio := spent.Div(budget.MonthlyAmount)
	percent := ratio.Mul(decimal.NewFromInt(100)).Round(0)

	switch {
	case ratio.GreaterThanOrEqual(budgetExceededRatio):
		s.metrics.IncrementCounter("budget.warning", map[string]string{"level": "exceeded"})
		slog.Warn("budget exceeded",
			"category", category,
			"spent", spent.String(),
			"budget", budget.MonthlyAmount.String())
		return fmt.Sprintf("budget exceeded: spent %s of %s (%s%%) on %s this month",
			spent.StringFixed(2), budget.MonthlyAmount.StringFixed(2), percent.String(), category), nil
	case ratio.GreaterThanOrEqual(budgetWarnRatio):
		s.metrics.IncrementCounter("budget.warning", map[string]string{"level": "approaching"})
		return fmt.Sprintf("approaching budget: spent %s of %s (%s%%) on %s this month",
			spent.StringFixed(2), budget.MonthlyAmount.StringFixed(2), percent.String(), category), nil
	default:
		return "", nil
	}
}

// monthEnd returns the last representable instant of the month containing start
func monthEnd(start time.Time) time.Time {
	return time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, start.Location()).Add(-time.Nanosecond)
}
