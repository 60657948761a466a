package services

import (
	"context"
	"time"

	"moneytalk/internal/models"
)

// CommandServiceInterface interprets free-text ledger commands
type CommandServiceInterface interface {
	// Interpret classifies text, extracts its fields and executes the
	// resulting operation. The outcome kind tells the caller what happened;
	// an error is returned only for invalid input or a failed operation.
	Interpret(text string) (*models.Outcome, error)
}

// AggregationServiceInterface computes ledger totals and trend series
type AggregationServiceInterface interface {
	Summary() (*models.Summary, error)
	Trends(now time.Time, months int) (*models.TrendSeries, error)

	// BudgetWarning checks the category's month-to-date spend against its
	// budget. Returns an empty string when no budget is set or spend is
	// below the warning threshold.
	BudgetWarning(category string, now time.Time) (string, error)
}

// RecurrenceServiceInterface materializes due recurring rules
type RecurrenceServiceInterface interface {
	// RunDue books one transaction per due rule and advances each rule's
	// next run. Returns the transactions it booked.
	RunDue(now time.Time) ([]models.Transaction, error)
}

// AdvisorServiceInterface answers free-form finance questions via an LLM
type AdvisorServiceInterface interface {
	Ask(ctx context.Context, question string) (string, error)
}

// SeedServiceInterface populates the ledger with sample data for development
type SeedServiceInterface interface {
	Seed(count int) (int, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
