package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"moneta/internal/budget"
	apperrors "moneta/internal/errors"
	"moneta/internal/logger"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// reminderService handles reminder-related business logic.
type reminderService struct {
	db *gorm.DB
}

// NewReminderService creates a new ReminderServicer.
func NewReminderService(db *gorm.DB) ReminderServicer {
	return &reminderService{db: db}
}

// CreateReminder validates and persists a new reminder. Which optional
// fields are required depends on the reminder type.
func (s *reminderService) CreateReminder(
	reminderType models.ReminderType,
	title, description string,
	amount, minAmount, maxAmount *int64,
	category *models.Category,
	dueDate time.Time,
	isRecurring bool,
	frequency *models.Frequency,
) (*models.Reminder, error) {
	if !reminderType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown reminder type")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}

	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	if isRecurring {
		if frequency == nil || !frequency.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recurring reminders require a frequency")
		}
	} else {
		frequency = nil
	}

	reminder := &models.Reminder{
		Type:        reminderType,
		Title:       title,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		MinAmount:   minAmount,
		MaxAmount:   maxAmount,
		Category:    category,
		DueDate:     dueDate,
		IsRecurring: isRecurring,
		Frequency:   frequency,
	}

	switch reminderType {
	case models.ReminderTypeExpenseLimit:
		if _, err := budget.LimitRuleFor(*reminder); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrIncompleteReminder, err)
		}
		if err := s.checkCategoryConflict(*category); err != nil {
			return nil, err
		}
	case models.ReminderTypeSavingsTarget:
		if _, err := budget.TargetRuleFor(*reminder); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrIncompleteReminder, err)
		}
	}

	if err := s.db.Create(reminder).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return reminder, nil
}

// checkCategoryConflict rejects a second active expense limit for the same
// category. With one active limit per category, the pre-save guard's choice
// of rule is unambiguous.
func (s *reminderService) checkCategoryConflict(category models.Category) error {
	var count int64
	err := s.db.Model(&models.Reminder{}).
		Where("type = ? AND category = ? AND is_completed = ?", models.ReminderTypeExpenseLimit, category, false).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrReminderCategoryConflict
	}
	return nil
}

// GetReminders retrieves a paginated list of reminders ordered by due date.
func (s *reminderService) GetReminders(page pagination.PageRequest, includeCompleted bool) (*pagination.PageResponse[models.Reminder], error) {
	page.Defaults()

	base := s.db.Model(&models.Reminder{})
	if !includeCompleted {
		base = base.Where("is_completed = ?", false)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var reminders []models.Reminder
	if err := base.Scopes(pagination.Paginate(page)).
		Order("due_date ASC").
		Find(&reminders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(reminders, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetReminderByID retrieves a reminder by ID.
func (s *reminderService) GetReminderByID(id string) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := s.db.Where("id = ?", id).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &reminder, nil
}

// UpdateReminder updates a reminder's mutable fields. The type and the
// type-specific amounts are fixed at creation.
func (s *reminderService) UpdateReminder(id string, title, description string, dueDate *time.Time, isCompleted *bool) (*models.Reminder, error) {
	reminder, err := s.GetReminderByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = strings.TrimSpace(title)
	}
	if description != "" {
		updates["description"] = strings.TrimSpace(description)
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}
	if isCompleted != nil {
		updates["is_completed"] = *isCompleted
	}

	if len(updates) == 0 {
		return reminder, nil
	}

	if err := s.db.Model(reminder).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return reminder, nil
}

// DeleteReminder permanently removes a reminder.
func (s *reminderService) DeleteReminder(id string) error {
	reminder, err := s.GetReminderByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(reminder).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetActiveReminders returns all non-completed reminders in creation order.
func (s *reminderService) GetActiveReminders() ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := s.db.
		Where("is_completed = ?", false).
		Order("created_at ASC").
		Find(&reminders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reminders, nil
}

// EvaluateWarnings computes the warning set for the calendar month
// containing at, keyed by reminder ID. A failed read degrades to an empty
// collection instead of failing the evaluation, so the screen still renders.
func (s *reminderService) EvaluateWarnings(at time.Time) (map[string]string, error) {
	monthStart, monthEnd := budget.MonthBounds(at)

	var transactions []models.Transaction
	if err := s.db.
		Where("date >= ? AND date <= ?", monthStart, monthEnd).
		Find(&transactions).Error; err != nil {
		logger.Get().Warnw("failed to load month transactions for warning evaluation", "error", err)
		transactions = nil
	}

	reminders, err := s.GetActiveReminders()
	if err != nil {
		logger.Get().Warnw("failed to load reminders for warning evaluation", "error", err)
		reminders = nil
	}

	return budget.EvaluateWarnings(transactions, reminders, at), nil
}

// MarkNotified stamps a reminder as notified at the given time. Recurring
// reminders also advance their due date by one frequency interval, so the
// next occurrence becomes due on schedule.
func (s *reminderService) MarkNotified(id string, at time.Time) error {
	reminder, err := s.GetReminderByID(id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"notified_at": at}
	if reminder.IsRecurring && reminder.Frequency != nil {
		updates["due_date"] = reminder.Frequency.Next(reminder.DueDate)
	}

	if err := s.db.Model(reminder).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
