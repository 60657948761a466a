package repositories

import (
	"testing"
	"time"

	"moneytalk/internal/database"
	"moneytalk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) TestCreate() {
	txn := &models.Transaction{
		Amount:      decimal.RequireFromString("42.50"),
		Category:    "food",
		Description: "groceries",
		IsExpense:   true,
	}

	err := s.repo.Create(txn)
	s.NoError(err)
	s.NotZero(txn.ID)
	s.NotZero(txn.CreatedAt)
	s.False(txn.Timestamp.IsZero())
}

func (s *TransactionRepositorySuite) TestCreate_InvalidAmount() {
	txn := &models.Transaction{
		Amount:      decimal.Zero,
		Description: "zero amount",
		IsExpense:   true,
	}

	err := s.repo.Create(txn)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestGetByID() {
	created := database.CreateTestTransaction(s.T(), s.db, "15.00", "transport", true, time.Now())

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.True(found.Amount.Equal(decimal.RequireFromString("15.00")))
	s.Equal("transport", found.Category)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(99999)
	s.ErrorIs(err, ErrTransactionNotFound)
	s.Nil(found)
}

func (s *TransactionRepositorySuite) TestGetRecent_OrderAndLimit() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, "1.00", "food", true, now.Add(-3*time.Hour))
	newest := database.CreateTestTransaction(s.T(), s.db, "2.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "3.00", "food", true, now.Add(-1*time.Hour))

	recent, err := s.repo.GetRecent(2)
	s.NoError(err)
	s.Len(recent, 2)
	s.Equal(newest.ID, recent[0].ID)
	s.True(recent[0].Timestamp.After(recent[1].Timestamp))
}

func (s *TransactionRepositorySuite) TestGetWithFilters() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "20.00", "transport", true, now)
	database.CreateTestTransaction(s.T(), s.db, "3000.00", "salary", false, now)

	expense := true
	results, err := s.repo.GetWithFilters(models.TransactionFilters{
		Category:  "food",
		IsExpense: &expense,
	})
	s.NoError(err)
	s.Len(results, 1)
	s.Equal("food", results[0].Category)

	income := false
	results, err = s.repo.GetWithFilters(models.TransactionFilters{IsExpense: &income})
	s.NoError(err)
	s.Len(results, 1)
	s.Equal("salary", results[0].Category)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_DateRange() {
	now := time.Now()
	inRange := database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "20.00", "food", true, now.AddDate(0, -2, 0))

	start := now.AddDate(0, -1, 0)
	results, err := s.repo.GetWithFilters(models.TransactionFilters{StartDate: &start})
	s.NoError(err)
	s.Len(results, 1)
	s.Equal(inRange.ID, results[0].ID)
}

func (s *TransactionRepositorySuite) TestUpdate() {
	txn := database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, time.Now())

	txn.Amount = decimal.RequireFromString("12.75")
	txn.Description = "updated lunch"
	err := s.repo.Update(txn)
	s.NoError(err)

	found, err := s.repo.GetByID(txn.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.RequireFromString("12.75")))
	s.Equal("updated lunch", found.Description)
}

func (s *TransactionRepositorySuite) TestUpdate_HookValidatesEditedValues() {
	txn := database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, time.Now())

	// Valid edit passes the update hook against the edited record
	txn.Amount = decimal.RequireFromString("12.75")
	s.NoError(s.repo.Update(txn))

	// Invalid edit is rejected and the stored row stays intact
	txn.Amount = decimal.Zero
	err := s.repo.Update(txn)
	s.ErrorIs(err, models.ErrInvalidAmount)

	found, err := s.repo.GetByID(txn.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.RequireFromString("12.75")))
}

func (s *TransactionRepositorySuite) TestUpdate_NotFound() {
	txn := &models.Transaction{
		ID:          99999,
		Amount:      decimal.RequireFromString("5.00"),
		Description: "ghost",
		IsExpense:   true,
	}

	err := s.repo.Update(txn)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete() {
	txn := database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, time.Now())

	err := s.repo.Delete(txn.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	// A second delete of the same ID reports not found
	err = s.repo.Delete(txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestSumAmounts() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, "10.50", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "20.25", "transport", true, now)
	database.CreateTestTransaction(s.T(), s.db, "3000.00", "salary", false, now)

	expenses, err := s.repo.SumAmounts(true, nil, nil)
	s.NoError(err)
	s.True(expenses.Equal(decimal.RequireFromString("30.75")), "got %s", expenses)

	income, err := s.repo.SumAmounts(false, nil, nil)
	s.NoError(err)
	s.True(income.Equal(decimal.RequireFromString("3000.00")), "got %s", income)
}

func (s *TransactionRepositorySuite) TestSumAmounts_EmptyLedgerIsZero() {
	total, err := s.repo.SumAmounts(true, nil, nil)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *TransactionRepositorySuite) TestSumAmounts_DateRange() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "99.00", "food", true, now.AddDate(0, -3, 0))

	start := now.AddDate(0, -1, 0)
	total, err := s.repo.SumAmounts(true, &start, nil)
	s.NoError(err)
	s.True(total.Equal(decimal.RequireFromString("10.00")), "got %s", total)
}

func (s *TransactionRepositorySuite) TestSumByCategory() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "5.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "20.00", "transport", true, now)

	total, err := s.repo.SumByCategory("food", true, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	s.NoError(err)
	s.True(total.Equal(decimal.RequireFromString("15.00")), "got %s", total)
}

func (s *TransactionRepositorySuite) TestGetCategoryTotals() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, "100.00", "housing", true, now)
	database.CreateTestTransaction(s.T(), s.db, "10.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "5.00", "food", true, now)
	database.CreateTestTransaction(s.T(), s.db, "3000.00", "salary", false, now)

	totals, err := s.repo.GetCategoryTotals(true, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	s.NoError(err)
	s.Len(totals, 2)

	// Ordered by total descending
	s.Equal("housing", totals[0].Category)
	s.True(totals[0].Total.Equal(decimal.RequireFromString("100.00")))
	s.Equal("food", totals[1].Category)
	s.True(totals[1].Total.Equal(decimal.RequireFromString("15.00")))
}
