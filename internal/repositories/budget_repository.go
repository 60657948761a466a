package repositories

import (
	"errors"
	"fmt"

	"moneytalk/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates or updates the budget for its category. The read-decide-write
// sequence runs inside one database transaction; the unique index on category
// backstops a concurrent double-create so the same category can never end up
// with two rows. The loser of that race sees the duplicate-key error, retries
// and resolves to an update, so callers never observe the conflict.
func (r *budgetRepository) Upsert(budget *models.Budget) (bool, error) {
	created, err := r.upsertOnce(budget)
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.upsertOnce(budget)
	}
	return created, err
}

func (r *budgetRepository) upsertOnce(budget *models.Budget) (bool, error) {
	var created bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Budget
		err := tx.Where("category = ?", budget.Category).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(budget).Error; err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}
			created = true
			return nil
		case err != nil:
			return fmt.Errorf("failed to look up budget: %w", err)
		default:
			existing.MonthlyAmount = budget.MonthlyAmount
			if budget.Currency != "" {
				existing.Currency = budget.Currency
			}
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update budget: %w", err)
			}
			*budget = existing
			return nil
		}
	})

	return created, err
}

// GetByCategory retrieves the budget for a category
func (r *budgetRepository) GetByCategory(category string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("category = ?", category).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by category: %w", err)
	}
	return &budget, nil
}

// GetAll retrieves all budgets ordered by category
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// Delete removes a budget by ID
func (r *budgetRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Budget{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
