package services

import (
	"time"

	"moneta/internal/budget"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(transactionType models.TransactionType, category models.Category, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, typeFilter *models.TransactionType) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	DeleteTransaction(id string) error
	GetTransactionsByDateRange(start, end time.Time) ([]models.Transaction, error)
	PrecheckExpense(category models.Category, amount int64, at time.Time) (budget.GuardResult, error)
}

// ReminderServicer defines the contract for reminder-related business logic.
type ReminderServicer interface {
	CreateReminder(reminderType models.ReminderType, title, description string, amount, minAmount, maxAmount *int64, category *models.Category, dueDate time.Time, isRecurring bool, frequency *models.Frequency) (*models.Reminder, error)
	GetReminders(page pagination.PageRequest, includeCompleted bool) (*pagination.PageResponse[models.Reminder], error)
	GetReminderByID(id string) (*models.Reminder, error)
	UpdateReminder(id string, title, description string, dueDate *time.Time, isCompleted *bool) (*models.Reminder, error)
	DeleteReminder(id string) error
	GetActiveReminders() ([]models.Reminder, error)
	EvaluateWarnings(at time.Time) (map[string]string, error)
	MarkNotified(id string, at time.Time) error
}

// MonthlySummary contains aggregated totals for one calendar month.
type MonthlySummary struct {
	Period           string `json:"period"`
	TotalIncome      int64  `json:"total_income"`
	TotalExpense     int64  `json:"total_expense"`
	InvestmentIncome int64  `json:"investment_income"`
	Balance          int64  `json:"balance"`
}

// DailyReport contains per-day chart series for one calendar month. All
// slices have one entry per day of the month. Labels carries the day number
// at chart tick positions and is empty elsewhere.
type DailyReport struct {
	Period            string   `json:"period"`
	Labels            []string `json:"labels"`
	CumulativeIncome  []int64  `json:"cumulative_income"`
	CumulativeExpense []int64  `json:"cumulative_expense"`
	DailySavings      []int64  `json:"daily_savings"`
}

// ReportServicer defines the contract for monthly report generation.
type ReportServicer interface {
	GetMonthlySummary(at time.Time) (*MonthlySummary, error)
	GetDailyReport(at time.Time) (*DailyReport, error)
}
