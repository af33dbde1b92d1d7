package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	inventory.PurchaseRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, purchaseRepo inventory.PurchaseRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		PurchaseRepository:   purchaseRepo,
	}
}

// AttendanceSummary implements report.ReportService. Unknown employees and
// empty ranges produce a summary with zero aggregates and a message, never an
// error.
func (r *ReportServiceImpl) AttendanceSummary(ctx context.Context, req report.AttendanceSummaryRequest) (report.AttendanceSummary, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceSummary{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	summary := report.AttendanceSummary{
		EmployeeID: req.EmployeeID,
		From:       req.From,
		To:         req.To,
	}

	if to.Before(from) {
		summary.Message = "The requested range contains no days"
		return summary, nil
	}

	emp, err := r.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			summary.Message = "No employee found with this id"
			return summary, nil
		}
		return report.AttendanceSummary{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	summary.EmployeeName = emp.Name

	records, err := r.AttendanceRepository.ListByEmployeeRange(ctx, req.EmployeeID, from, to)
	if err != nil {
		return report.AttendanceSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	byDate := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		byDate[record.Date.Format("2006-01-02")] = record
	}

	summary.Aggregates = Aggregate(emp.JoiningDate, from, to, byDate)
	if emp.DailyWage.IsPositive() {
		summary.Wage = wageSummary(emp.DailyWage, summary.Aggregates)
	}
	summary.Months = BuildCalendar(emp.JoiningDate, from, to, byDate)
	if len(records) == 0 {
		summary.Message = "No attendance records in this range"
	}

	return summary, nil
}

// PurchaseReport implements report.ReportService.
func (r *ReportServiceImpl) PurchaseReport(ctx context.Context, req report.PurchaseReportRequest) (report.PurchaseReport, error) {
	if err := req.Validate(); err != nil {
		return report.PurchaseReport{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	result := report.PurchaseReport{From: req.From, To: req.To}
	if to.Before(from) {
		return result, nil
	}

	purchases, err := r.PurchaseRepository.List(ctx, inventory.MovementFilter{
		ItemName: req.ItemName,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		return report.PurchaseReport{}, fmt.Errorf("failed to list purchases: %w", err)
	}

	if req.ItemName != "" {
		result.DailyCounts = dailyCounts(purchases)
	}
	result.ItemTotals = itemTotals(purchases)
	result.TopItems = topItems(result.ItemTotals, 5)
	result.MonthlyTrend = monthlyTrend(purchases)

	return result, nil
}

// Bonus accrues at 8.33% of the total earned in the range.
var bonusRate = decimal.NewFromFloat(0.0833)

func wageSummary(dailyWage decimal.Decimal, agg report.Aggregates) *report.WageSummary {
	basePay := dailyWage.Mul(decimal.NewFromInt(int64(agg.PresentDays)))
	hourlyRate := dailyWage.Div(decimal.NewFromInt(8))
	overtimePay := hourlyRate.Mul(decimal.NewFromFloat(agg.OvertimeHours)).Round(2)
	totalEarned := basePay.Add(overtimePay)

	return &report.WageSummary{
		DailyWage:    dailyWage.String(),
		BasePay:      basePay.String(),
		OvertimePay:  overtimePay.String(),
		TotalEarned:  totalEarned.String(),
		BonusAccrued: totalEarned.Mul(bonusRate).Round(2).String(),
	}
}

func dailyCounts(purchases []inventory.Purchase) []report.DailyCount {
	byDay := make(map[string]decimal.Decimal)
	for _, p := range purchases {
		day := p.Date.Format("2006-01-02")
		byDay[day] = byDay[day].Add(p.Quantity)
	}

	counts := make([]report.DailyCount, 0, len(byDay))
	for day, qty := range byDay {
		counts = append(counts, report.DailyCount{Date: day, Quantity: qty.String()})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date < counts[j].Date })
	return counts
}

func itemTotals(purchases []inventory.Purchase) []report.ItemTotal {
	type total struct {
		quantity decimal.Decimal
		amount   decimal.Decimal
	}

	byItem := make(map[string]total)
	for _, p := range purchases {
		t := byItem[p.ItemName]
		t.quantity = t.quantity.Add(p.Quantity)
		t.amount = t.amount.Add(p.Total)
		byItem[p.ItemName] = t
	}

	totals := make([]report.ItemTotal, 0, len(byItem))
	for name, t := range byItem {
		totals = append(totals, report.ItemTotal{
			ItemName: name,
			Quantity: t.quantity.String(),
			Total:    t.amount.String(),
		})
	}
	// Highest quantity first, name as tiebreak for stable output.
	sort.Slice(totals, func(i, j int) bool {
		qi, _ := decimal.NewFromString(totals[i].Quantity)
		qj, _ := decimal.NewFromString(totals[j].Quantity)
		if !qi.Equal(qj) {
			return qi.GreaterThan(qj)
		}
		return totals[i].ItemName < totals[j].ItemName
	})
	return totals
}

func topItems(totals []report.ItemTotal, n int) []report.ItemTotal {
	if len(totals) <= n {
		return totals
	}
	return totals[:n]
}

func monthlyTrend(purchases []inventory.Purchase) []report.MonthlyTrendPoint {
	byMonth := make(map[string]decimal.Decimal)
	for _, p := range purchases {
		month := p.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(p.Total)
	}

	trend := make([]report.MonthlyTrendPoint, 0, len(byMonth))
	for month, amount := range byMonth {
		trend = append(trend, report.MonthlyTrendPoint{Month: month, Total: amount.String()})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	return trend
}
