package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"moneytalk/internal/config"
	"moneytalk/internal/models"
	"moneytalk/internal/parser"
	"moneytalk/internal/repositories"
)

var (
	ErrEmptyCommand = errors.New("command text is empty")
	ErrNoTargetID   = errors.New("no target id in command")
)

type commandService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	aggregation     AggregationServiceInterface
	metrics         MetricsRecorderInterface
	listLimit       int

	// overridable for tests
	now func() time.Time
}

func NewCommandService(
	transactionRepo repositories.TransactionRepositoryInterface,
	aggregation AggregationServiceInterface,
	metrics MetricsRecorderInterface,
	ledgerCfg config.LedgerConfig,
) CommandServiceInterface {
	return &commandService{
		transactionRepo: transactionRepo,
		aggregation:     aggregation,
		metrics:         metrics,
		listLimit:       ledgerCfg.ListLimit,
		now:             time.Now,
	}
}

// Interpret classifies the text and executes the resulting operation.
func (s *commandService) Interpret(text string) (*models.Outcome, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("command.interpretation", time.Since(start))
	}()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyCommand
	}

	intent, id := parser.Classify(trimmed)

	outcome, err := s.execute(intent, id, trimmed)
	if err != nil {
		s.metrics.IncrementCounter("command.interpreted", map[string]string{
			"intent":  string(intent),
			"outcome": "error",
		})
		return nil, err
	}

	s.metrics.IncrementCounter("command.interpreted", map[string]string{
		"intent":  string(intent),
		"outcome": string(outcome.Kind),
	})

	slog.Info("command interpreted",
		"intent", intent,
		"outcome", outcome.Kind)

	return outcome, nil
}

func (s *commandService) execute(intent parser.Intent, id uint, text string) (*models.Outcome, error) {
	switch intent {
	case parser.IntentAddExpense:
		return s.addTransaction(text, true)
	case parser.IntentAddIncome:
		return s.addTransaction(text, false)
	case parser.IntentSummary:
		return s.summarize()
	case parser.IntentList:
		return s.list()
	case parser.IntentDelete:
		return s.deleteByText(text)
	case parser.IntentGetByID:
		return s.getByID(id)
	default:
		return &models.Outcome{
			Kind:   models.OutcomeUnrecognized,
			Intent: string(parser.IntentUnknown),
		}, nil
	}
}

func (s *commandService) addTransaction(text string, isExpense bool) (*models.Outcome, error) {
	intent := parser.IntentAddIncome
	if isExpense {
		intent = parser.IntentAddExpense
	}

	category := parser.ExtractCategory(text)

	amount, ok := parser.ExtractAmount(text)
	if !ok {
		// Recognized intent, missing amount. Nothing is persisted; the
		// partial carries what was understood so the caller can re-prompt.
		return &models.Outcome{
			Kind:   models.OutcomeNeedAmount,
			Intent: string(intent),
			Partial: &models.PartialCommand{
				Description: text,
				Category:    category,
			},
		}, nil
	}

	txn := &models.Transaction{
		Amount:      amount,
		Category:    category,
		Description: text,
		Timestamp:   parser.ExtractDate(text, s.now()),
		IsExpense:   isExpense,
	}

	if err := s.transactionRepo.Create(txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	s.metrics.IncrementCounter("transaction.created", map[string]string{"source": "command"})

	outcome := &models.Outcome{
		Kind:        models.OutcomeAdded,
		Intent:      string(intent),
		Transaction: txn,
	}

	if isExpense {
		warning, err := s.aggregation.BudgetWarning(category, s.now())
		if err != nil {
			// The transaction is already booked; a failed budget check
			// degrades to no warning rather than failing the command.
			slog.Error("budget check failed after booking transaction",
				"category", category,
				"error", err)
		}
		outcome.BudgetWarning = warning
	}

	return outcome, nil
}

func (s *commandService) summarize() (*models.Outcome, error) {
	summary, err := s.aggregation.Summary()
	if err != nil {
		return nil, err
	}

	return &models.Outcome{
		Kind:    models.OutcomeSummary,
		Intent:  string(parser.IntentSummary),
		Summary: summary,
	}, nil
}

func (s *commandService) list() (*models.Outcome, error) {
	transactions, err := s.transactionRepo.GetRecent(s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &models.Outcome{
		Kind:         models.OutcomeList,
		Intent:       string(parser.IntentList),
		Transactions: transactions,
	}, nil
}

func (s *commandService) deleteByText(text string) (*models.Outcome, error) {
	id, ok := parser.ExtractID(text)
	if !ok {
		return nil, ErrNoTargetID
	}

	if err := s.transactionRepo.Delete(id); err != nil {
		return nil, err
	}

	return &models.Outcome{
		Kind:      models.OutcomeDeleted,
		Intent:    string(parser.IntentDelete),
		DeletedID: id,
	}, nil
}

func (s *commandService) getByID(id uint) (*models.Outcome, error) {
	txn, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	return &models.Outcome{
		Kind:        models.OutcomeFound,
		Intent:      string(parser.IntentGetByID),
		Transaction: txn,
	}, nil
}
