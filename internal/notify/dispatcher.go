package notify

import (
	"context"
	"time"

	"moneta/internal/logger"
	"moneta/internal/models"
	"moneta/internal/services"
)

// Publisher publishes due-reminder messages. Satisfied by *Client.
type Publisher interface {
	PublishReminderDue(ctx context.Context, msg *ReminderDueMessage) error
}

// DueReminders selects the reminders that should be notified at the given
// instant: not completed, due date reached, and not already notified for
// the current due date. A recurring reminder whose due date was advanced
// past its NotifiedAt stamp is due again.
func DueReminders(reminders []models.Reminder, at time.Time) []models.Reminder {
	var due []models.Reminder
	for _, r := range reminders {
		if r.IsCompleted {
			continue
		}
		if r.DueDate.After(at) {
			continue
		}
		if r.NotifiedAt != nil && !r.NotifiedAt.Before(r.DueDate) {
			continue
		}
		due = append(due, r)
	}
	return due
}

// Dispatcher periodically scans for due reminders and publishes them.
type Dispatcher struct {
	reminderService services.ReminderServicer
	publisher       Publisher
	interval        time.Duration
}

// NewDispatcher creates a Dispatcher scanning at the given interval.
func NewDispatcher(reminderService services.ReminderServicer, publisher Publisher, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		reminderService: reminderService,
		publisher:       publisher,
		interval:        interval,
	}
}

// Run scans immediately and then on every tick until the context is
// cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	if err := d.Scan(ctx, time.Now()); err != nil {
		logger.Get().Errorw("reminder scan failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := d.Scan(ctx, time.Now()); err != nil {
				logger.Get().Errorw("reminder scan failed", "error", err)
			}
		}
	}
}

// Scan publishes every reminder due at the given instant and stamps it as
// notified. A reminder whose publish fails is left unstamped, so the next
// scan retries it.
func (d *Dispatcher) Scan(ctx context.Context, at time.Time) error {
	reminders, err := d.reminderService.GetActiveReminders()
	if err != nil {
		return err
	}

	log := logger.Get()
	for _, r := range DueReminders(reminders, at) {
		if err := d.publisher.PublishReminderDue(ctx, NewReminderDueMessage(r)); err != nil {
			log.Errorw("failed to publish due reminder",
				"reminder_id", r.ID,
				"error", err,
			)
			continue
		}
		if err := d.reminderService.MarkNotified(r.ID, at); err != nil {
			log.Errorw("failed to mark reminder notified",
				"reminder_id", r.ID,
				"error", err,
			)
		}
	}

	return nil
}
