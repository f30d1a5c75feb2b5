package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single financial event. Amounts are whole
// currency units (VND) and must be positive. Date is the user-chosen
// effective date, which may be backdated; CreatedAt in Base records when
// the row was written.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null;index" json:"type"`
	Category    Category        `gorm:"not null;index" json:"category"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
