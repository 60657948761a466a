package repositories

import (
	"errors"
	"fmt"
	"time"

	"moneytalk/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetRecent retrieves the most recent transactions ordered by timestamp descending
func (r *transactionRepository) GetRecent(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("timestamp DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions matching the given filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.Model(&models.Transaction{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.IsExpense != nil {
		query = query.Where("is_expense = ?", *filters.IsExpense)
	}
	if filters.StartDate != nil {
		query = query.Where("timestamp >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("timestamp <= ?", *filters.EndDate)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Order("timestamp DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, nil
}

// Update persists edits to an existing transaction. The populated record is
// the statement model so the update hook validates the edited values, not a
// zero receiver.
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(transaction).
		Updates(map[string]interface{}{
			"amount":      transaction.Amount,
			"description": transaction.Description,
			"is_expense":  transaction.IsExpense,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// SumAmounts sums transaction amounts for one side of the ledger, optionally
// bounded by an inclusive timestamp range
func (r *transactionRepository) SumAmounts(isExpense bool, startDate, endDate *time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("is_expense = ?", isExpense)

	if startDate != nil {
		query = query.Where("timestamp >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("timestamp <= ?", *endDate)
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	return result.Total, nil
}

// SumByCategory sums amounts for one category within an inclusive timestamp range
func (r *transactionRepository) SumByCategory(category string, isExpense bool, startDate, endDate time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("category = ? AND is_expense = ? AND timestamp BETWEEN ? AND ?",
			category, isExpense, startDate, endDate).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum category amounts: %w", err)
	}

	return result.Total, nil
}

// GetCategoryTotals retrieves amount sums grouped by category within a range.
// Categories with no transactions in the range are simply absent.
func (r *transactionRepository) GetCategoryTotals(isExpense bool, startDate, endDate time.Time) ([]models.CategoryTotal, error) {
	var totals []models.CategoryTotal

	query := `
		SELECT
			category,
			SUM(amount) as total
		FROM transactions
		WHERE is_expense = ?
			AND timestamp BETWEEN ? AND ?
		GROUP BY category
		ORDER BY total DESC
	`

	if err := r.db.Raw(query, isExpense, startDate, endDate).
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	return totals, nil
}
