package models

import "time"

// ReminderType represents the kind of alert rule a reminder encodes.
type ReminderType string

const (
	ReminderTypeGeneral       ReminderType = "general"
	ReminderTypeExpenseLimit  ReminderType = "expense_limit"
	ReminderTypeSavingsTarget ReminderType = "savings_target"
)

// Valid reports whether t is one of the known reminder types.
func (t ReminderType) Valid() bool {
	switch t {
	case ReminderTypeGeneral, ReminderTypeExpenseLimit, ReminderTypeSavingsTarget:
		return true
	}
	return false
}

// Frequency represents how often a recurring reminder repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Next returns the due date one interval after t. Monthly and yearly steps
// follow time.AddDate normalization, so Jan 31 advances to Mar 3 rather
// than failing.
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case FrequencyYearly:
		return t.AddDate(1, 0, 0)
	}
	return t
}

// Reminder is a user-defined alert rule. Which optional fields are required
// depends on Type: expense_limit reminders carry Category and MaxAmount,
// savings_target reminders carry MinAmount, and general reminders may carry
// a reference Amount that is never enforced. The reminder service rejects
// creation of a reminder whose variant fields are incomplete, so persisted
// rows always satisfy these invariants.
type Reminder struct {
	Base
	Type        ReminderType `gorm:"not null;index" json:"type"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"not null" json:"description"`
	Amount      *int64       `json:"amount,omitempty"`
	MinAmount   *int64       `json:"min_amount,omitempty"`
	MaxAmount   *int64       `json:"max_amount,omitempty"`
	Category    *Category    `json:"category,omitempty"`
	DueDate     time.Time    `gorm:"not null;index" json:"due_date"`
	IsRecurring bool         `gorm:"default:false" json:"is_recurring"`
	Frequency   *Frequency   `json:"frequency,omitempty"`
	IsCompleted bool         `gorm:"default:false" json:"is_completed"`

	// NotifiedAt records when the notifier last dispatched this reminder.
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
}
