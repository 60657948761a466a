package repositories

import (
	"errors"
	"fmt"

	"moneytalk/internal/models"

	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new savings goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetAll retrieves all goals ordered by start date
func (r *goalRepository) GetAll() ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Order("start_date ASC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return goals, nil
}

// Delete removes a goal by ID
func (r *goalRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Goal{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
