package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestBudgetFlow_LimitWarningsAndPrecheck walks the main budgeting loop:
// record spending, set an expense limit, then watch warnings and the
// pre-save guard react as spending approaches and crosses the limit.
func TestBudgetFlow_LimitWarningsAndPrecheck(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	now := time.Now().Format(time.RFC3339)

	// Spend 1,500,000 on food this month.
	body := fmt.Sprintf(`{"type":"expense","category":"FOOD","amount":1500000,"description":"Groceries","date":%q}`, now)
	rec := app.request("POST", "/api/v1/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Set a 2,000,000 monthly limit on food.
	body = fmt.Sprintf(`{"type":"expense_limit","title":"Food budget","category":"FOOD","max_amount":2000000,"due_date":%q}`, now)
	rec = app.request("POST", "/api/v1/reminders", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create limit: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)
	reminder, ok := created["reminder"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected reminder in response, got %v", created)
	}
	reminderID := reminder["id"].(string)

	// 1.5M of 2M is 75%, below the warning threshold.
	rec = app.request("GET", "/api/v1/reminders/warnings", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("warnings: expected 200, got %d", rec.Code)
	}
	warnings := parseJSON(t, rec)["warnings"].(map[string]interface{})
	if len(warnings) != 0 {
		t.Errorf("expected no warnings at 75%% of limit, got %v", warnings)
	}

	// But spending another 600,000 would cross the limit, so the
	// guard warns before the save.
	body = `{"category":"FOOD","amount":600000}`
	rec = app.request("POST", "/api/v1/transactions/precheck", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("precheck: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	verdict := parseJSON(t, rec)
	if verdict["action"] != "warn" {
		t.Errorf("expected warn verdict for limit-crossing expense, got %v", verdict)
	}

	// A small expense in another category proceeds silently.
	body = `{"category":"TRANSPORT","amount":50000}`
	rec = app.request("POST", "/api/v1/transactions/precheck", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("precheck: expected 200, got %d", rec.Code)
	}
	verdict = parseJSON(t, rec)
	if verdict["action"] != "proceed" {
		t.Errorf("expected proceed verdict for unrelated category, got %v", verdict)
	}

	// Record the 600,000 anyway; the total is now 2.1M and the
	// limit warning fires.
	body = fmt.Sprintf(`{"type":"expense","category":"FOOD","amount":600000,"description":"Dinner out","date":%q}`, now)
	rec = app.request("POST", "/api/v1/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction: expected 201, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/reminders/warnings", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("warnings: expected 200, got %d", rec.Code)
	}
	warnings = parseJSON(t, rec)["warnings"].(map[string]interface{})
	if _, ok := warnings[reminderID]; !ok {
		t.Errorf("expected a warning for the exceeded limit, got %v", warnings)
	}

	// Completing the limit silences its warning.
	rec = app.request("PUT", "/api/v1/reminders/"+reminderID, `{"is_completed":true}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete reminder: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/reminders/warnings", "", token)
	warnings = parseJSON(t, rec)["warnings"].(map[string]interface{})
	if len(warnings) != 0 {
		t.Errorf("expected no warnings after completing the limit, got %v", warnings)
	}
}

func TestBudgetFlow_DuplicateLimitRejected(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	now := time.Now().Format(time.RFC3339)
	body := fmt.Sprintf(`{"type":"expense_limit","title":"Shopping budget","category":"SHOPPING","max_amount":3000000,"due_date":%q}`, now)

	rec := app.request("POST", "/api/v1/reminders", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create limit: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/reminders", body, token)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate active limit, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBudgetFlow_GuardBlockedByCategoryMismatch(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	now := time.Now().Format(time.RFC3339)

	// An income category on an expense transaction is rejected outright.
	body := fmt.Sprintf(`{"type":"expense","category":"SALARY","amount":100000,"description":"Broken","date":%q}`, now)
	rec := app.request("POST", "/api/v1/transactions", body, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for category mismatch, got %d: %s", rec.Code, rec.Body.String())
	}
}
