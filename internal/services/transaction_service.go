package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"moneta/internal/budget"
	apperrors "moneta/internal/errors"
	"moneta/internal/logger"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and persists a new transaction.
func (s *transactionService) CreateTransaction(
	transactionType models.TransactionType,
	category models.Category,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	if !category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
	}
	if !category.Matches(transactionType) {
		return nil, apperrors.ErrCategoryMismatch
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}
	if date.After(time.Now()) {
		return nil, apperrors.ErrFutureDate
	}

	transaction := &models.Transaction{
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetTransactions retrieves a paginated list of transactions, newest first.
func (s *transactionService) GetTransactions(page pagination.PageRequest, typeFilter *models.TransactionType) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	if typeFilter != nil {
		base = base.Where("type = ?", *typeFilter)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction permanently removes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetTransactionsByDateRange returns all transactions dated within
// [start, end] inclusive, oldest first.
func (s *transactionService) GetTransactionsByDateRange(start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// PrecheckExpense evaluates a not-yet-saved expense against the active
// expense limits for its category, without persisting anything.
func (s *transactionService) PrecheckExpense(category models.Category, amount int64, at time.Time) (budget.GuardResult, error) {
	if amount <= 0 {
		return budget.GuardResult{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !category.IsExpense() {
		return budget.GuardResult{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be an expense category")
	}

	// As in warning evaluation, a failed read degrades to an empty
	// collection; the guard then proceeds rather than blocking the save.
	monthStart, monthEnd := budget.MonthBounds(at)
	monthTransactions, err := s.GetTransactionsByDateRange(monthStart, monthEnd)
	if err != nil {
		logger.Get().Warnw("failed to load month transactions for expense precheck", "error", err)
		monthTransactions = nil
	}

	var reminders []models.Reminder
	if err := s.db.
		Where("type = ? AND is_completed = ?", models.ReminderTypeExpenseLimit, false).
		Order("created_at ASC").
		Find(&reminders).Error; err != nil {
		logger.Get().Warnw("failed to load expense limits for expense precheck", "error", err)
		reminders = nil
	}

	candidate := models.Transaction{
		Type:     models.TransactionTypeExpense,
		Category: category,
		Amount:   amount,
		Date:     at,
	}

	return budget.CheckBeforeSave(candidate, monthTransactions, reminders), nil
}
