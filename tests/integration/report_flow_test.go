package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jinzhu/now"
)

func TestReportFlow_MonthlySummaryAndDailySeries(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	today := time.Now().Format(time.RFC3339)

	seed := []string{
		fmt.Sprintf(`{"type":"income","category":"SALARY","amount":5000000,"description":"August salary","date":%q}`, today),
		fmt.Sprintf(`{"type":"income","category":"INVESTMENT","amount":1000000,"description":"Dividends","date":%q}`, today),
		fmt.Sprintf(`{"type":"expense","category":"BILLS","amount":2000000,"description":"Rent","date":%q}`, today),
	}
	for _, body := range seed {
		rec := app.request("POST", "/api/v1/transactions", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed transaction: expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/reports/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if got := summary["total_income"].(float64); got != 6000000 {
		t.Errorf("expected total income 6000000, got %v", got)
	}
	if got := summary["total_expense"].(float64); got != 2000000 {
		t.Errorf("expected total expense 2000000, got %v", got)
	}
	if got := summary["investment_income"].(float64); got != 1000000 {
		t.Errorf("expected investment income 1000000, got %v", got)
	}
	if got := summary["balance"].(float64); got != 4000000 {
		t.Errorf("expected balance 4000000, got %v", got)
	}
	if got := summary["period"].(string); got != time.Now().Format("2006-01") {
		t.Errorf("expected current period, got %q", got)
	}

	rec = app.request("GET", "/api/v1/reports/daily-series", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("daily series: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)

	daysInMonth := now.EndOfMonth().Day()
	labels := report["labels"].([]interface{})
	income := report["cumulative_income"].([]interface{})
	expense := report["cumulative_expense"].([]interface{})
	savings := report["daily_savings"].([]interface{})
	if len(labels) != daysInMonth || len(income) != daysInMonth || len(expense) != daysInMonth || len(savings) != daysInMonth {
		t.Fatalf("expected %d points per series, got labels=%d income=%d expense=%d savings=%d",
			daysInMonth, len(labels), len(income), len(expense), len(savings))
	}

	// Cumulative series carry the month totals through to the last day.
	if got := income[daysInMonth-1].(float64); got != 6000000 {
		t.Errorf("expected cumulative income 6000000 on the last day, got %v", got)
	}
	if got := expense[daysInMonth-1].(float64); got != 2000000 {
		t.Errorf("expected cumulative expense 2000000 on the last day, got %v", got)
	}

	// Investment income lands on today's savings point only.
	todayIdx := time.Now().Day() - 1
	if got := savings[todayIdx].(float64); got != 1000000 {
		t.Errorf("expected savings 1000000 on day %d, got %v", todayIdx+1, got)
	}
}

func TestReportFlow_ExplicitMonthSelection(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	// January of last year has no transactions, so the summary is empty.
	rec := app.request("GET", "/api/v1/reports/summary?month=2025-01", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if got := summary["period"].(string); got != "2025-01" {
		t.Errorf("expected period 2025-01, got %q", got)
	}
	if got := summary["total_income"].(float64); got != 0 {
		t.Errorf("expected zero income for empty month, got %v", got)
	}

	rec = app.request("GET", "/api/v1/reports/daily-series?month=2025-01", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("daily series: expected 200, got %d", rec.Code)
	}
	report := parseJSON(t, rec)
	if labels := report["labels"].([]interface{}); len(labels) != 31 {
		t.Errorf("expected 31 points for January, got %d", len(labels))
	}

	rec = app.request("GET", "/api/v1/reports/summary?month=2025-13", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid month, got %d", rec.Code)
	}
}
