package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
	"moneta/internal/services"
)

// ReminderHandler handles reminder-related requests.
type ReminderHandler struct {
	reminderService services.ReminderServicer
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService services.ReminderServicer) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// CreateReminderRequest represents the request payload for creating a reminder.
type CreateReminderRequest struct {
	Type        models.ReminderType `json:"type" binding:"required,reminder_type"`
	Title       string              `json:"title" binding:"required,min=1,max=200"`
	Description string              `json:"description" binding:"max=500"`
	Amount      *int64              `json:"amount" binding:"omitempty,gt=0"`
	MinAmount   *int64              `json:"min_amount" binding:"omitempty,gt=0"`
	MaxAmount   *int64              `json:"max_amount" binding:"omitempty,gt=0"`
	Category    *models.Category    `json:"category" binding:"omitempty,category"`
	DueDate     time.Time           `json:"due_date" binding:"required"`
	IsRecurring bool                `json:"is_recurring"`
	Frequency   *models.Frequency   `json:"frequency" binding:"omitempty,frequency"`
}

// UpdateReminderRequest represents the request payload for updating a reminder.
type UpdateReminderRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=1,max=200"`
	Description string     `json:"description" binding:"omitempty,max=500"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted *bool      `json:"is_completed"`
}

// CreateReminder handles the creation of a new reminder.
// @Summary     Create a reminder
// @Description Create a general reminder, expense limit, or savings target
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateReminderRequest true "Reminder details"
// @Success     201 {object} models.Reminder "Reminder created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Category already has an active limit"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder, err := h.reminderService.CreateReminder(
		req.Type, req.Title, req.Description,
		req.Amount, req.MinAmount, req.MaxAmount,
		req.Category, req.DueDate, req.IsRecurring, req.Frequency,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reminder": reminder})
}

// GetReminders handles listing reminders.
// @Summary     Get reminders
// @Description Get a paginated list of reminders ordered by due date
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       include_completed query bool false "Include completed reminders"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Reminder] "Paginated reminders"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders [get]
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	includeCompleted := c.Query("include_completed") == "true"

	result, err := h.reminderService.GetReminders(page, includeCompleted)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWarnings evaluates budget warnings for the current month.
// @Summary     Get budget warnings
// @Description Evaluate active reminders against this month's transactions
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Warnings keyed by reminder ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders/warnings [get]
func (h *ReminderHandler) GetWarnings(c *gin.Context) {
	warnings, err := h.reminderService.EvaluateWarnings(time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"warnings": warnings})
}

// GetReminder handles fetching a single reminder.
// @Summary     Get a reminder
// @Description Get a reminder by ID
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Reminder ID"
// @Success     200 {object} models.Reminder "Reminder"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Reminder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders/{id} [get]
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	reminder, err := h.reminderService.GetReminderByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

// UpdateReminder handles updating a reminder.
// @Summary     Update a reminder
// @Description Update a reminder's title, description, due date or completion
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Reminder ID"
// @Param       request body UpdateReminderRequest true "Fields to update"
// @Success     200 {object} models.Reminder "Updated reminder"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Reminder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder, err := h.reminderService.UpdateReminder(c.Param("id"), req.Title, req.Description, req.DueDate, req.IsCompleted)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

// DeleteReminder handles deleting a reminder.
// @Summary     Delete a reminder
// @Description Permanently delete a reminder
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Reminder ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Reminder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	if err := h.reminderService.DeleteReminder(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
