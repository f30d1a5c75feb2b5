package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneta/internal/services"
)

// ReportHandler handles monthly report requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlySummary returns income, expense and balance totals for a month.
// @Summary     Get monthly summary
// @Description Get income, expense and balance totals for a calendar month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month in YYYY-MM format (default current)"
// @Success     200 {object} services.MonthlySummary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	at, err := parseMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetMonthlySummary(at)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetDailyReport returns per-day chart series for a month.
// @Summary     Get daily report
// @Description Get cumulative income/expense and daily savings series for a calendar month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month in YYYY-MM format (default current)"
// @Success     200 {object} services.DailyReport "Daily chart series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/daily-series [get]
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	at, err := parseMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetDailyReport(at)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
