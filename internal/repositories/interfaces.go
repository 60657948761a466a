package repositories

import (
	"time"

	"moneytalk/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetRecent(limit int) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uint) error

	// Aggregation queries used by the aggregation engine
	SumAmounts(isExpense bool, startDate, endDate *time.Time) (decimal.Decimal, error)
	SumByCategory(category string, isExpense bool, startDate, endDate time.Time) (decimal.Decimal, error)
	GetCategoryTotals(isExpense bool, startDate, endDate time.Time) ([]models.CategoryTotal, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	// Upsert creates the budget if no row exists for its category, otherwise
	// updates the existing row in place. Returns true when a row was created.
	Upsert(budget *models.Budget) (created bool, err error)
	GetByCategory(category string) (*models.Budget, error)
	GetAll() ([]models.Budget, error)
	Delete(id uint) error
}

// GoalRepositoryInterface defines the contract for goal repository operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetAll() ([]models.Goal, error)
	Delete(id uint) error
}

// RecurringRuleRepositoryInterface defines the contract for recurring rule repository operations
type RecurringRuleRepositoryInterface interface {
	Create(rule *models.RecurringRule) error
	GetAll() ([]models.RecurringRule, error)
	GetDue(asOf time.Time) ([]models.RecurringRule, error)
	Delete(id uint) error

	// CommitOccurrence persists a materialized transaction and the rule's
	// advanced next_run as one atomic batch.
	CommitOccurrence(rule *models.RecurringRule, transaction *models.Transaction) error
}
