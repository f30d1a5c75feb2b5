package notify

import (
	"encoding/json"
	"time"

	"moneta/internal/models"
)

// ReminderDueMessage is the payload published when a reminder falls due.
// It carries enough for a delivery channel to render the notification
// without a database round trip.
type ReminderDueMessage struct {
	ReminderID string              `json:"reminder_id"`
	Type       models.ReminderType `json:"type"`
	Title      string              `json:"title"`
	DueDate    time.Time           `json:"due_date"`
	Timestamp  time.Time           `json:"timestamp"`
}

// NewReminderDueMessage builds a message for a due reminder.
func NewReminderDueMessage(r models.Reminder) *ReminderDueMessage {
	return &ReminderDueMessage{
		ReminderID: r.ID,
		Type:       r.Type,
		Title:      r.Title,
		DueDate:    r.DueDate,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReminderDueMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReminderDueMessageFromJSON creates a message from JSON bytes.
func ReminderDueMessageFromJSON(data []byte) (*ReminderDueMessage, error) {
	var msg ReminderDueMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
