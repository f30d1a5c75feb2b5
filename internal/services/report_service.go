package services

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"moneta/internal/budget"
	apperrors "moneta/internal/errors"
	"moneta/internal/models"
)

// chartTickDays are the days of the month that get an axis label on the
// daily chart. The last day of the month is always labelled too.
var chartTickDays = map[int]bool{1: true, 7: true, 14: true, 21: true, 28: true}

// reportService generates monthly summaries and chart series.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

func (s *reportService) monthTransactions(at time.Time) ([]models.Transaction, time.Time, time.Time, error) {
	monthStart, monthEnd := budget.MonthBounds(at)

	var transactions []models.Transaction
	if err := s.db.
		Where("date >= ? AND date <= ?", monthStart, monthEnd).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, monthStart, monthEnd, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, monthStart, monthEnd, nil
}

// GetMonthlySummary returns income, expense and balance totals for the
// calendar month containing at.
func (s *reportService) GetMonthlySummary(at time.Time) (*MonthlySummary, error) {
	transactions, monthStart, _, err := s.monthTransactions(at)
	if err != nil {
		return nil, err
	}

	income := budget.SumByType(transactions, models.TransactionTypeIncome)
	expense := budget.SumByType(transactions, models.TransactionTypeExpense)

	return &MonthlySummary{
		Period:           monthStart.Format("2006-01"),
		TotalIncome:      income,
		TotalExpense:     expense,
		InvestmentIncome: budget.InvestmentIncome(transactions),
		Balance:          income - expense,
	}, nil
}

// GetDailyReport returns the per-day chart series for the calendar month
// containing at.
func (s *reportService) GetDailyReport(at time.Time) (*DailyReport, error) {
	transactions, monthStart, monthEnd, err := s.monthTransactions(at)
	if err != nil {
		return nil, err
	}

	series := budget.BuildDailySeries(transactions, monthStart, monthEnd)

	labels := make([]string, series.Len())
	for i, day := range series.Days {
		d := day.Day()
		if chartTickDays[d] || i == series.Len()-1 {
			labels[i] = strconv.Itoa(d)
		}
	}

	return &DailyReport{
		Period:            monthStart.Format("2006-01"),
		Labels:            labels,
		CumulativeIncome:  series.CumulativeIncome,
		CumulativeExpense: series.CumulativeExpense,
		DailySavings:      series.DailySavings,
	}, nil
}
