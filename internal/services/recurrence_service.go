package services

import (
	"fmt"
	"log/slog"
	"time"

	"moneytalk/internal/models"
	"moneytalk/internal/repositories"
)

type recurrenceService struct {
	recurringRepo repositories.RecurringRuleRepositoryInterface
	metrics       MetricsRecorderInterface
}

func NewRecurrenceService(
	recurringRepo repositories.RecurringRuleRepositoryInterface,
	metrics MetricsRecorderInterface,
) RecurrenceServiceInterface {
	return &recurrenceService{
		recurringRepo: recurringRepo,
		metrics:       metrics,
	}
}

// RunDue books one transaction per due rule and advances each rule, returning
// the transactions it created. A rule that is several periods behind is
// advanced one period per pass; there is no catch-up, so a long-dormant rule
// never floods the ledger in one run. A failed rule is logged and skipped so
// the rest of the pass proceeds.
func (s *recurrenceService) RunDue(now time.Time) ([]models.Transaction, error) {
	s.metrics.IncrementCounter("recurring.run", nil)

	due, err := s.recurringRepo.GetDue(now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due rules: %w", err)
	}

	created := make([]models.Transaction, 0, len(due))
	for i := range due {
		rule := &due[i]

		txn := rule.Materialize()
		rule.Advance()

		if err := s.recurringRepo.CommitOccurrence(rule, txn); err != nil {
			slog.Error("failed to commit recurring occurrence",
				"rule_id", rule.ID,
				"error", err)
			continue
		}

		created = append(created, *txn)
		s.metrics.IncrementCounter("recurring.booked", nil)
		s.metrics.IncrementCounter("transaction.created", map[string]string{"source": "recurring"})
	}

	if len(created) > 0 {
		slog.Info("recurring pass complete",
			"due", len(due),
			"booked", len(created))
	}

	return created, nil
}
