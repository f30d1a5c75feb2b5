package budget

import (
	"time"

	"moneta/internal/models"
)

// DailySeries holds one entry per calendar day of a month, in ascending
// order. Income and expense accumulate across the month; savings are per
// day. Values are raw currency units — scaling for display (the reports
// chart shows millions) is the presentation layer's job.
type DailySeries struct {
	Days              []time.Time `json:"days"`
	CumulativeIncome  []int64     `json:"cumulative_income"`
	CumulativeExpense []int64     `json:"cumulative_expense"`
	DailySavings      []int64     `json:"daily_savings"`
}

// Len returns the number of days in the series.
func (s DailySeries) Len() int {
	return len(s.Days)
}

// BuildDailySeries builds the per-day series for the days in [start, end]
// inclusive. Transactions outside the range contribute nothing.
func BuildDailySeries(monthTransactions []models.Transaction, start, end time.Time) DailySeries {
	var series DailySeries
	var cumulativeIncome, cumulativeExpense int64

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		var dayIncome, dayExpense, daySavings int64
		for _, tx := range monthTransactions {
			if !sameDay(tx.Date, day) {
				continue
			}
			switch tx.Type {
			case models.TransactionTypeIncome:
				dayIncome += tx.Amount
				if tx.Category == models.CategoryInvestment {
					daySavings += tx.Amount
				}
			case models.TransactionTypeExpense:
				dayExpense += tx.Amount
			}
		}

		cumulativeIncome += dayIncome
		cumulativeExpense += dayExpense

		series.Days = append(series.Days, day)
		series.CumulativeIncome = append(series.CumulativeIncome, cumulativeIncome)
		series.CumulativeExpense = append(series.CumulativeExpense, cumulativeExpense)
		series.DailySavings = append(series.DailySavings, daySavings)
	}

	return series
}

// sameDay reports whether two instants fall on the same calendar day in
// b's location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
