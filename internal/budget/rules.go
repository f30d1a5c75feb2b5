package budget

import (
	"fmt"

	"moneta/internal/models"
)

// Near-limit warnings fire at 80% of an expense limit. The ratio is shared
// by the warning evaluator and the pre-save guard so the two can never
// disagree. Compared as spent*5 >= max*4 to keep the boundary exact.
const (
	nearLimitNum = 4
	nearLimitDen = 5
)

// savingsWindowDays is how many days before month-end savings-target
// warnings start firing.
const savingsWindowDays = 3

// LimitRule is the validated form of an expense_limit reminder: the fields
// the evaluation core needs, guaranteed present.
type LimitRule struct {
	ReminderID string
	Category   models.Category
	MaxAmount  int64
}

// TargetRule is the validated form of a savings_target reminder.
type TargetRule struct {
	ReminderID string
	MinAmount  int64
}

// LimitRuleFor extracts the expense-limit rule from a reminder. It fails if
// the reminder is not an expense_limit, or is missing its category or max
// amount, or names a non-expense category.
func LimitRuleFor(r models.Reminder) (LimitRule, error) {
	if r.Type != models.ReminderTypeExpenseLimit {
		return LimitRule{}, fmt.Errorf("reminder %s is not an expense limit", r.ID)
	}
	if r.Category == nil || r.MaxAmount == nil {
		return LimitRule{}, fmt.Errorf("expense limit reminder %s is missing category or max amount", r.ID)
	}
	if !r.Category.IsExpense() {
		return LimitRule{}, fmt.Errorf("expense limit reminder %s has non-expense category %s", r.ID, *r.Category)
	}
	if *r.MaxAmount <= 0 {
		return LimitRule{}, fmt.Errorf("expense limit reminder %s has non-positive max amount", r.ID)
	}
	return LimitRule{ReminderID: r.ID, Category: *r.Category, MaxAmount: *r.MaxAmount}, nil
}

// TargetRuleFor extracts the savings-target rule from a reminder. It fails
// if the reminder is not a savings_target or is missing its min amount.
func TargetRuleFor(r models.Reminder) (TargetRule, error) {
	if r.Type != models.ReminderTypeSavingsTarget {
		return TargetRule{}, fmt.Errorf("reminder %s is not a savings target", r.ID)
	}
	if r.MinAmount == nil || *r.MinAmount <= 0 {
		return TargetRule{}, fmt.Errorf("savings target reminder %s is missing a positive min amount", r.ID)
	}
	return TargetRule{ReminderID: r.ID, MinAmount: *r.MinAmount}, nil
}

// nearLimit reports whether amount has reached the near-limit share of max.
func nearLimit(amount, max int64) bool {
	return amount*nearLimitDen >= max*nearLimitNum
}
