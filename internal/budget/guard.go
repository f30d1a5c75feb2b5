package budget

import (
	"fmt"

	"moneta/internal/models"
)

// GuardAction classifies the outcome of a pre-save check.
type GuardAction string

const (
	// GuardProceed means the save needs no confirmation.
	GuardProceed GuardAction = "proceed"
	// GuardWarn means the caller should ask the user to confirm before
	// saving. The guard itself never blocks persistence.
	GuardWarn GuardAction = "warn"
)

// GuardResult is the advisory outcome of checking a candidate expense
// against the active expense limits.
type GuardResult struct {
	Action  GuardAction `json:"action"`
	Message string      `json:"message,omitempty"`
}

// CheckBeforeSave classifies a not-yet-persisted transaction against the
// active expense-limit reminders. monthTransactions must be the current
// month's already-recorded transactions, excluding the candidate. Income
// candidates always proceed; expense limits only ever apply to expenses.
func CheckBeforeSave(candidate models.Transaction, monthTransactions []models.Transaction, reminders []models.Reminder) GuardResult {
	if candidate.Type != models.TransactionTypeExpense {
		return GuardResult{Action: GuardProceed}
	}

	rule, ok := limitForCategory(reminders, candidate.Category)
	if !ok {
		return GuardResult{Action: GuardProceed}
	}

	currentExpense := SumByTypeAndCategory(monthTransactions, models.TransactionTypeExpense, rule.Category)
	totalAfter := currentExpense + candidate.Amount
	label := rule.Category.Info().Label

	switch {
	case totalAfter > rule.MaxAmount:
		over := totalAfter - rule.MaxAmount
		return GuardResult{
			Action: GuardWarn,
			Message: fmt.Sprintf(
				"%s spending will exceed the %s limit!\n\nCurrent: %s\nAfter saving: %s\nOver by: %s",
				label, FormatAmount(rule.MaxAmount), FormatAmount(currentExpense),
				FormatAmount(totalAfter), FormatAmount(over)),
		}
	case nearLimit(totalAfter, rule.MaxAmount):
		return GuardResult{
			Action: GuardWarn,
			Message: fmt.Sprintf(
				"%s spending is approaching its limit!\n\nCurrent: %s\nAfter saving: %s\nLimit: %s\n\n%d%% of limit reached",
				label, FormatAmount(currentExpense), FormatAmount(totalAfter),
				FormatAmount(rule.MaxAmount), percentOf(totalAfter, rule.MaxAmount)),
		}
	}

	return GuardResult{Action: GuardProceed}
}

// limitForCategory finds the first non-completed expense-limit reminder for
// the category, in slice order. The reminder service keeps at most one
// active limit per category, so order cannot change the outcome.
func limitForCategory(reminders []models.Reminder, category models.Category) (LimitRule, bool) {
	for _, r := range reminders {
		if r.IsCompleted || r.Type != models.ReminderTypeExpenseLimit {
			continue
		}
		rule, err := LimitRuleFor(r)
		if err != nil {
			continue
		}
		if rule.Category == category {
			return rule, true
		}
	}
	return LimitRule{}, false
}
