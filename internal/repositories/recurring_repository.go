package repositories

import (
	"errors"
	"fmt"
	"time"

	"moneytalk/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRecurringRuleNotFound = errors.New("recurring rule not found")
)

// recurringRuleRepository implements RecurringRuleRepositoryInterface
type recurringRuleRepository struct {
	db *gorm.DB
}

// NewRecurringRuleRepository creates a new recurring rule repository
func NewRecurringRuleRepository(db *gorm.DB) RecurringRuleRepositoryInterface {
	return &recurringRuleRepository{
		db: db,
	}
}

// Create creates a new recurring rule
func (r *recurringRuleRepository) Create(rule *models.RecurringRule) error {
	if err := r.db.Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create recurring rule: %w", err)
	}
	return nil
}

// GetAll retrieves all recurring rules ordered by next run
func (r *recurringRuleRepository) GetAll() ([]models.RecurringRule, error) {
	var rules []models.RecurringRule
	if err := r.db.Order("next_run ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get recurring rules: %w", err)
	}
	return rules, nil
}

// GetDue retrieves rules whose next run is at or before asOf
func (r *recurringRuleRepository) GetDue(asOf time.Time) ([]models.RecurringRule, error) {
	var rules []models.RecurringRule
	if err := r.db.Where("next_run <= ?", asOf).
		Order("next_run ASC").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get due recurring rules: %w", err)
	}
	return rules, nil
}

// Delete removes a recurring rule by ID
func (r *recurringRuleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.RecurringRule{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recurring rule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurringRuleNotFound
	}
	return nil
}

// CommitOccurrence persists the materialized transaction and the rule's
// advanced next_run atomically. Either both land or neither does, so a
// failed pass never double-books an occurrence on retry.
func (r *recurringRuleRepository) CommitOccurrence(rule *models.RecurringRule, transaction *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create occurrence transaction: %w", err)
		}

		result := tx.Model(&models.RecurringRule{}).
			Where("id = ?", rule.ID).
			Update("next_run", rule.NextRun)
		if result.Error != nil {
			return fmt.Errorf("failed to advance recurring rule: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRecurringRuleNotFound
		}

		return nil
	})
}
