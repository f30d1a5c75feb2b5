// Package budget implements the budget-evaluation core: aggregation over
// transaction collections, reminder warning evaluation, the pre-save expense
// guard, and daily chart series. Every function here is pure — no storage,
// no wall clock. Callers load the collections and supply the current instant.
package budget

import (
	"time"

	"github.com/jinzhu/now"

	"moneta/internal/models"
)

// SumByType returns the total amount of transactions matching the given type.
func SumByType(transactions []models.Transaction, t models.TransactionType) int64 {
	var sum int64
	for _, tx := range transactions {
		if tx.Type == t {
			sum += tx.Amount
		}
	}
	return sum
}

// SumByTypeAndCategory returns the total amount of transactions matching
// both the given type and category.
func SumByTypeAndCategory(transactions []models.Transaction, t models.TransactionType, c models.Category) int64 {
	var sum int64
	for _, tx := range transactions {
		if tx.Type == t && tx.Category == c {
			sum += tx.Amount
		}
	}
	return sum
}

// InvestmentIncome returns the total of income transactions in the
// INVESTMENT category. This is the canonical definition of "savings"
// everywhere in the system.
func InvestmentIncome(transactions []models.Transaction) int64 {
	return SumByTypeAndCategory(transactions, models.TransactionTypeIncome, models.CategoryInvestment)
}

// FilterByDateRange returns the transactions whose effective Date falls
// within [start, end], inclusive on both bounds.
func FilterByDateRange(transactions []models.Transaction, start, end time.Time) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// MonthBounds returns the first and last instant of the calendar month
// containing the given instant, in that instant's location.
func MonthBounds(instant time.Time) (time.Time, time.Time) {
	n := now.With(instant)
	return n.BeginningOfMonth(), n.EndOfMonth()
}

// DaysUntilMonthEnd returns the number of whole days between t and the end
// of the last day of t's calendar month. It is 0 on the last day of the
// month and grows by one for each earlier calendar day.
func DaysUntilMonthEnd(t time.Time) int {
	_, monthEnd := MonthBounds(t)
	return int(monthEnd.Sub(t).Hours() / 24)
}
