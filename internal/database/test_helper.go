package database

import (
	"fmt"
	"testing"
	"time"

	"moneytalk/internal/config"
	"moneytalk/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"budgets",
		"goals",
		"recurring_rules",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}

	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}

func CreateTestTransaction(t *testing.T, db *DB, amount string, category string, isExpense bool, timestamp time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: "test transaction",
		Timestamp:   timestamp,
		IsExpense:   isExpense,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CreateTestBudget(t *testing.T, db *DB, category string, monthlyAmount string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Category:      category,
		MonthlyAmount: decimal.RequireFromString(monthlyAmount),
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CreateTestRecurringRule(t *testing.T, db *DB, description string, amount string, interval string, nextRun time.Time) *models.RecurringRule {
	t.Helper()

	rule := &models.RecurringRule{
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    "general",
		IsExpense:   true,
		Interval:    interval,
		NextRun:     nextRun,
	}

	if err := db.Create(rule).Error; err != nil {
		t.Fatalf("failed to create test recurring rule: %v", err)
	}

	return rule
}
