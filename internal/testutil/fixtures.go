package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneta/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction creates a transaction of the given type, category and
// amount (whole VND) on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, category models.Category, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestExpenseLimit creates an active expense limit reminder for the
// given category with the given maximum amount.
func CreateTestExpenseLimit(t *testing.T, db *gorm.DB, category models.Category, maxAmount int64) *models.Reminder {
	t.Helper()

	r := &models.Reminder{
		Type:      models.ReminderTypeExpenseLimit,
		Title:     fmt.Sprintf("Test limit %d", nextID()),
		Category:  &category,
		MaxAmount: &maxAmount,
		DueDate:   time.Now().AddDate(0, 1, 0),
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to create test expense limit: %v", err)
	}
	return r
}

// CreateTestSavingsTarget creates an active savings target reminder with the
// given minimum amount.
func CreateTestSavingsTarget(t *testing.T, db *gorm.DB, minAmount int64) *models.Reminder {
	t.Helper()

	r := &models.Reminder{
		Type:      models.ReminderTypeSavingsTarget,
		Title:     fmt.Sprintf("Test target %d", nextID()),
		MinAmount: &minAmount,
		DueDate:   time.Now().AddDate(0, 1, 0),
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to create test savings target: %v", err)
	}
	return r
}

// CreateTestGeneralReminder creates a general reminder due at the given time.
func CreateTestGeneralReminder(t *testing.T, db *gorm.DB, dueDate time.Time) *models.Reminder {
	t.Helper()

	r := &models.Reminder{
		Type:    models.ReminderTypeGeneral,
		Title:   fmt.Sprintf("Test reminder %d", nextID()),
		DueDate: dueDate,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to create test general reminder: %v", err)
	}
	return r
}
