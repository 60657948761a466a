package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"moneytalk/internal/dto"
	"moneytalk/internal/errors"
	"moneytalk/internal/models"
	"moneytalk/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{transactionRepo: transactionRepo}
}

// ListTransactions retrieves transactions with optional filtering
// @Summary List transactions
// @Description Retrieve transactions ordered newest first, optionally filtered by category, direction and date range
// @Tags Transactions
// @Produce json
// @Param category query string false "Filter by category"
// @Param is_expense query bool false "Filter by direction"
// @Param start_date query string false "Filter by start date (RFC3339)"
// @Param end_date query string false "Filter by end date (RFC3339)"
// @Param limit query int false "Number of results (max 200)" default(50)
// @Success 200 {object} SuccessResponse "Transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var filters dto.TransactionFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid filter parameters"))
	}

	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}
	if filters.Limit > maxListLimit {
		filters.Limit = maxListLimit
	}

	transactions, err := h.transactionRepo.GetWithFilters(models.TransactionFilters{
		Category:  filters.Category,
		IsExpense: filters.IsExpense,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Limit:     filters.Limit,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transactions,
		Meta: map[string]int{"count": len(transactions)},
	})
}

// GetTransaction retrieves a single transaction by id
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionRepo.GetByID(id)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// CreateTransaction creates a transaction directly, bypassing the parser
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation failed"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	transaction := &models.Transaction{
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
		IsExpense:   req.IsExpense,
	}
	if req.Timestamp != nil {
		transaction.Timestamp = *req.Timestamp
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		if stderrors.Is(err, models.ErrInvalidAmount) {
			return SendError(c, errors.TransactionInvalidAmount)
		}
		if stderrors.Is(err, models.ErrMissingDescription) {
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails("description is required"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// EditTransaction edits an existing transaction; nil fields are left unchanged
// @Summary Edit transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.EditTransactionRequest true "Fields to change"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) EditTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.EditTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionRepo.GetByID(id)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return SendError(c, errors.TransactionInvalidAmount)
		}
		transaction.Amount = amount
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.IsExpense != nil {
		transaction.IsExpense = *req.IsExpense
	}

	if err := h.transactionRepo.Update(transaction); err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction by id
// @Summary Delete transaction
// @Tags Transactions
// @Param id path int true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionRepo.Delete(id); err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseIDParam parses the :id path parameter as an unsigned integer
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

var errInvalidID = stderrors.New("invalid id parameter")
