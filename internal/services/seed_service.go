package services

import (
	"fmt"
	"log/slog"
	"time"

	"moneytalk/internal/models"
	"moneytalk/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// seedCategories pairs category labels with plausible amount ranges so the
// sample ledger looks like real spending rather than uniform noise.
var seedCategories = []struct {
	name string
	min  float64
	max  float64
}{
	{"food", 4, 80},
	{"transport", 2, 60},
	{"housing", 600, 1500},
	{"utilities", 20, 150},
	{"entertainment", 5, 50},
	{"shopping", 10, 250},
	{"health", 10, 120},
	{"general", 5, 100},
}

type seedService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewSeedService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SeedServiceInterface {
	return &seedService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// Seed inserts count fake transactions spread over the trailing six months,
// with one salary credit per month so summaries and trends have both sides
// of the ledger to work with. Returns the number actually inserted.
func (s *seedService) Seed(count int) (int, error) {
	if count <= 0 {
		count = 50
	}

	now := time.Now()
	inserted := 0

	// Monthly salary credits
	for i := 0; i < 6; i++ {
		payday := time.Date(now.Year(), now.Month()-time.Month(i), 25, 9, 0, 0, 0, now.Location())
		if payday.After(now) {
			continue
		}

		salary := &models.Transaction{
			Amount:      decimal.NewFromFloat(gofakeit.Float64Range(2800, 3400)).Round(2),
			Category:    "salary",
			Description: "monthly salary",
			Timestamp:   payday,
			IsExpense:   false,
		}
		if err := s.transactionRepo.Create(salary); err != nil {
			return inserted, fmt.Errorf("failed to seed salary transaction: %w", err)
		}
		inserted++
	}

	// Random expenses
	for i := 0; i < count; i++ {
		cat := seedCategories[gofakeit.Number(0, len(seedCategories)-1)]

		txn := &models.Transaction{
			Amount:      decimal.NewFromFloat(gofakeit.Price(cat.min, cat.max)),
			Category:    cat.name,
			Description: gofakeit.ProductName(),
			Timestamp:   gofakeit.DateRange(now.AddDate(0, -6, 0), now),
			IsExpense:   true,
		}

		if err := s.transactionRepo.Create(txn); err != nil {
			return inserted, fmt.Errorf("failed to seed transaction: %w", err)
		}
		inserted++
		s.metrics.IncrementCounter("transaction.created", map[string]string{"source": "seed"})
	}

	slog.Info("ledger seeded", "count", inserted)
	return inserted, nil
}
