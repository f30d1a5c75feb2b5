package budget

import (
	"fmt"
	"time"

	"moneta/internal/models"
)

// EvaluateWarnings walks the reminders against the current month's
// transactions and returns a map from reminder ID to warning message.
// Reminders with no triggered condition are absent from the map. Completed
// reminders never warn. The function is a pure function of its arguments:
// calling it twice with the same inputs yields the same output.
func EvaluateWarnings(monthTransactions []models.Transaction, reminders []models.Reminder, nowInstant time.Time) map[string]string {
	warnings := make(map[string]string)
	daysLeft := DaysUntilMonthEnd(nowInstant)

	for _, r := range reminders {
		if r.IsCompleted {
			continue
		}

		switch r.Type {
		case models.ReminderTypeExpenseLimit:
			rule, err := LimitRuleFor(r)
			if err != nil {
				// Persisted reminders always carry their variant fields;
				// a failure here is an upstream invariant violation.
				continue
			}
			spent := SumByTypeAndCategory(monthTransactions, models.TransactionTypeExpense, rule.Category)
			label := rule.Category.Info().Label
			if spent > rule.MaxAmount {
				warnings[r.ID] = fmt.Sprintf("⚠️ %s spending has exceeded the %s limit! Current: %s",
					label, FormatAmount(rule.MaxAmount), FormatAmount(spent))
			} else if nearLimit(spent, rule.MaxAmount) {
				warnings[r.ID] = fmt.Sprintf("⚡ %s spending is approaching its limit (%d%%)",
					label, percentOf(spent, rule.MaxAmount))
			}

		case models.ReminderTypeSavingsTarget:
			// Only evaluated in the window covering the last few days of
			// the month.
			if daysLeft < 0 || daysLeft > savingsWindowDays {
				continue
			}
			rule, err := TargetRuleFor(r)
			if err != nil {
				continue
			}
			savings := InvestmentIncome(monthTransactions)
			if savings < rule.MinAmount {
				remaining := rule.MinAmount - savings
				warnings[r.ID] = fmt.Sprintf("⏰ %d day(s) left! Save %s more to reach your target",
					daysLeft, FormatAmount(remaining))
			}
		}
	}

	return warnings
}
