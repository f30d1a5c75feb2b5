package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
	"moneta/internal/services"
)

// --- mock reminder service ---

type mockReminderService struct {
	createReminderFn     func(reminderType models.ReminderType, title, description string, amount, minAmount, maxAmount *int64, category *models.Category, dueDate time.Time, isRecurring bool, frequency *models.Frequency) (*models.Reminder, error)
	getRemindersFn       func(page pagination.PageRequest, includeCompleted bool) (*pagination.PageResponse[models.Reminder], error)
	getReminderByIDFn    func(id string) (*models.Reminder, error)
	updateReminderFn     func(id string, title, description string, dueDate *time.Time, isCompleted *bool) (*models.Reminder, error)
	deleteReminderFn     func(id string) error
	getActiveRemindersFn func() ([]models.Reminder, error)
	evaluateWarningsFn   func(at time.Time) (map[string]string, error)
	markNotifiedFn       func(id string, at time.Time) error
}

func (m *mockReminderService) CreateReminder(reminderType models.ReminderType, title, description string, amount, minAmount, maxAmount *int64, category *models.Category, dueDate time.Time, isRecurring bool, frequency *models.Frequency) (*models.Reminder, error) {
	if m.createReminderFn != nil {
		return m.createReminderFn(reminderType, title, description, amount, minAmount, maxAmount, category, dueDate, isRecurring, frequency)
	}
	return &models.Reminder{}, nil
}

func (m *mockReminderService) GetReminders(page pagination.PageRequest, includeCompleted bool) (*pagination.PageResponse[models.Reminder], error) {
	if m.getRemindersFn != nil {
		return m.getRemindersFn(page, includeCompleted)
	}
	resp := pagination.NewPageResponse([]models.Reminder{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockReminderService) GetReminderByID(id string) (*models.Reminder, error) {
	if m.getReminderByIDFn != nil {
		return m.getReminderByIDFn(id)
	}
	return &models.Reminder{}, nil
}

func (m *mockReminderService) UpdateReminder(id string, title, description string, dueDate *time.Time, isCompleted *bool) (*models.Reminder, error) {
	if m.updateReminderFn != nil {
		return m.updateReminderFn(id, title, description, dueDate, isCompleted)
	}
	return &models.Reminder{}, nil
}

func (m *mockReminderService) DeleteReminder(id string) error {
	if m.deleteReminderFn != nil {
		return m.deleteReminderFn(id)
	}
	return nil
}

func (m *mockReminderService) GetActiveReminders() ([]models.Reminder, error) {
	if m.getActiveRemindersFn != nil {
		return m.getActiveRemindersFn()
	}
	return nil, nil
}

func (m *mockReminderService) EvaluateWarnings(at time.Time) (map[string]string, error) {
	if m.evaluateWarningsFn != nil {
		return m.evaluateWarningsFn(at)
	}
	return map[string]string{}, nil
}

func (m *mockReminderService) MarkNotified(id string, at time.Time) error {
	if m.markNotifiedFn != nil {
		return m.markNotifiedFn(id, at)
	}
	return nil
}

var _ services.ReminderServicer = (*mockReminderService)(nil)

func setupReminderRouter(handler *ReminderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/reminders", handler.CreateReminder)
	r.GET("/reminders", handler.GetReminders)
	r.GET("/reminders/warnings", handler.GetWarnings)
	r.GET("/reminders/:id", handler.GetReminder)
	r.PUT("/reminders/:id", handler.UpdateReminder)
	r.DELETE("/reminders/:id", handler.DeleteReminder)
	return r
}

func TestReminderHandler_CreateReminder(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockReminderService{
			createReminderFn: func(reminderType models.ReminderType, title, _ string, _, _, maxAmount *int64, category *models.Category, _ time.Time, _ bool, _ *models.Frequency) (*models.Reminder, error) {
				return &models.Reminder{
					Base:      models.Base{ID: "0198b2c0-0000-7000-8000-000000000002"},
					Type:      reminderType,
					Title:     title,
					MaxAmount: maxAmount,
					Category:  category,
				}, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "POST", "/reminders",
			`{"type":"expense_limit","title":"Food budget","category":"FOOD","max_amount":3000000,"due_date":"2026-09-30T00:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		reminder := result["reminder"].(map[string]interface{})
		if reminder["title"] != "Food budget" {
			t.Errorf("expected title, got %v", reminder["title"])
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		r := setupReminderRouter(NewReminderHandler(&mockReminderService{}))

		rec := doRequest(r, "POST", "/reminders",
			`{"type":"weird","title":"X","due_date":"2026-09-30T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing due date", func(t *testing.T) {
		r := setupReminderRouter(NewReminderHandler(&mockReminderService{}))

		rec := doRequest(r, "POST", "/reminders",
			`{"type":"general","title":"X"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on incomplete expense limit", func(t *testing.T) {
		svc := &mockReminderService{
			createReminderFn: func(models.ReminderType, string, string, *int64, *int64, *int64, *models.Category, time.Time, bool, *models.Frequency) (*models.Reminder, error) {
				return nil, apperrors.ErrIncompleteReminder
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "POST", "/reminders",
			`{"type":"expense_limit","title":"Limit","due_date":"2026-09-30T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INCOMPLETE_REMINDER")
	})

	t.Run("returns 409 on duplicate category limit", func(t *testing.T) {
		svc := &mockReminderService{
			createReminderFn: func(models.ReminderType, string, string, *int64, *int64, *int64, *models.Category, time.Time, bool, *models.Frequency) (*models.Reminder, error) {
				return nil, apperrors.ErrReminderCategoryConflict
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "POST", "/reminders",
			`{"type":"expense_limit","title":"Limit","category":"FOOD","max_amount":1000000,"due_date":"2026-09-30T00:00:00Z"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "REMINDER_CATEGORY_CONFLICT")
	})
}

func TestReminderHandler_GetReminders(t *testing.T) {
	t.Run("returns 200 with paginated reminders", func(t *testing.T) {
		svc := &mockReminderService{
			getRemindersFn: func(page pagination.PageRequest, _ bool) (*pagination.PageResponse[models.Reminder], error) {
				resp := pagination.NewPageResponse([]models.Reminder{
					{Base: models.Base{ID: "0198b2c0-0000-7000-8000-000000000002"}, Type: models.ReminderTypeGeneral, Title: "Pay rent"},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "GET", "/reminders", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected 1 total item, got %v", result["total_items"])
		}
	})

	t.Run("passes include_completed to service", func(t *testing.T) {
		var gotInclude bool
		svc := &mockReminderService{
			getRemindersFn: func(_ pagination.PageRequest, includeCompleted bool) (*pagination.PageResponse[models.Reminder], error) {
				gotInclude = includeCompleted
				resp := pagination.NewPageResponse([]models.Reminder{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		doRequest(r, "GET", "/reminders?include_completed=true", "")

		if !gotInclude {
			t.Error("expected include_completed to be passed through")
		}
	})
}

func TestReminderHandler_GetWarnings(t *testing.T) {
	t.Run("returns warnings keyed by reminder ID", func(t *testing.T) {
		svc := &mockReminderService{
			evaluateWarningsFn: func(time.Time) (map[string]string, error) {
				return map[string]string{"r1": "limit exceeded"}, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "GET", "/reminders/warnings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		warnings := result["warnings"].(map[string]interface{})
		if warnings["r1"] != "limit exceeded" {
			t.Errorf("expected warning for r1, got %v", warnings)
		}
	})

	t.Run("returns empty object when no warnings", func(t *testing.T) {
		r := setupReminderRouter(NewReminderHandler(&mockReminderService{}))

		rec := doRequest(r, "GET", "/reminders/warnings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		warnings, ok := result["warnings"].(map[string]interface{})
		if !ok || len(warnings) != 0 {
			t.Errorf("expected empty warnings object, got %v", result["warnings"])
		}
	})
}

func TestReminderHandler_UpdateReminder(t *testing.T) {
	t.Run("returns 200 on completion", func(t *testing.T) {
		svc := &mockReminderService{
			updateReminderFn: func(id string, _, _ string, _ *time.Time, isCompleted *bool) (*models.Reminder, error) {
				return &models.Reminder{
					Base:        models.Base{ID: id},
					Title:       "Pay rent",
					IsCompleted: isCompleted != nil && *isCompleted,
				}, nil
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "PUT", "/reminders/0198b2c0-0000-7000-8000-000000000002",
			`{"is_completed":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		reminder := result["reminder"].(map[string]interface{})
		if reminder["is_completed"] != true {
			t.Errorf("expected completed, got %v", reminder["is_completed"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockReminderService{
			updateReminderFn: func(string, string, string, *time.Time, *bool) (*models.Reminder, error) {
				return nil, apperrors.ErrReminderNotFound
			},
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "PUT", "/reminders/nope", `{"title":"X"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestReminderHandler_DeleteReminder(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockReminderService{
			deleteReminderFn: func(string) error { return apperrors.ErrReminderNotFound },
		}
		r := setupReminderRouter(NewReminderHandler(svc))

		rec := doRequest(r, "DELETE", "/reminders/nope", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "REMINDER_NOT_FOUND")
	})
}
