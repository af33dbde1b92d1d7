package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/domain/report"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

func newTestService(t *testing.T) (report.ReportService, store.Store) {
	t.Helper()
	s, err := excel.NewStore(filepath.Join(t.TempDir(), "business_data.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return NewReportService(s.Attendance(), s.Employees(), s.Purchases()), s
}

func seedEmployee(t *testing.T, recordStore store.Store, joining, wage string) {
	t.Helper()
	emp := employee.Employee{
		EmployeeID:  "EMP001",
		Name:        "Asha Verma",
		JoiningDate: day(joining),
	}
	if wage != "" {
		emp.DailyWage = decimal.RequireFromString(wage)
	}
	_, err := recordStore.Employees().Create(context.Background(), emp)
	require.NoError(t, err)
}

func seedAttendanceDay(t *testing.T, recordStore store.Store, date string, status attendance.Status, hours float64) {
	t.Helper()
	_, err := recordStore.Attendance().Create(context.Background(), attendance.Attendance{
		EmployeeID:    "EMP001",
		Date:          day(date),
		Status:        status,
		OvertimeHours: hours,
	})
	require.NoError(t, err)
}

func TestReportService_AttendanceSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	seedEmployee(t, recordStore, "2024-01-15", "")
	seedAttendanceDay(t, recordStore, "2024-05-06", attendance.StatusPresent, 0)
	seedAttendanceDay(t, recordStore, "2024-05-07", attendance.StatusOvertime, 2)
	seedAttendanceDay(t, recordStore, "2024-05-08", attendance.StatusAbsent, 0)

	summary, err := svc.AttendanceSummary(ctx, report.AttendanceSummaryRequest{
		EmployeeID: "EMP001",
		From:       "2024-05-01",
		To:         "2024-05-31",
	})
	require.NoError(t, err)
	assert.Empty(t, summary.Message)
	assert.Equal(t, "Asha Verma", summary.EmployeeName)
	assert.Equal(t, 2, summary.Aggregates.PresentDays)
	assert.Equal(t, 1, summary.Aggregates.AbsentDays)
	assert.Equal(t, 2.0, summary.Aggregates.OvertimeHours)
	require.Len(t, summary.Months, 1)
	assert.Equal(t, "May 2024", summary.Months[0].Label)
	assert.Nil(t, summary.Wage)
}

func TestReportService_AttendanceSummary_WageRollup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	seedEmployee(t, recordStore, "2024-01-15", "400")
	seedAttendanceDay(t, recordStore, "2024-05-06", attendance.StatusPresent, 0)
	seedAttendanceDay(t, recordStore, "2024-05-07", attendance.StatusOvertime, 2)
	seedAttendanceDay(t, recordStore, "2024-05-08", attendance.StatusAbsent, 0)

	summary, err := svc.AttendanceSummary(ctx, report.AttendanceSummaryRequest{
		EmployeeID: "EMP001",
		From:       "2024-05-01",
		To:         "2024-05-31",
	})
	require.NoError(t, err)
	require.NotNil(t, summary.Wage)
	// Two earning days at 400 plus two overtime hours at 400/8.
	assert.Equal(t, "400", summary.Wage.DailyWage)
	assert.Equal(t, "800", summary.Wage.BasePay)
	assert.Equal(t, "100", summary.Wage.OvertimePay)
	assert.Equal(t, "900", summary.Wage.TotalEarned)
	assert.Equal(t, "74.97", summary.Wage.BonusAccrued)
}

func TestReportService_AttendanceSummary_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	summary, err := svc.AttendanceSummary(ctx, report.AttendanceSummaryRequest{
		EmployeeID: "EMP404",
		From:       "2024-05-01",
		To:         "2024-05-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "No employee found with this id", summary.Message)
	assert.Zero(t, summary.Aggregates.PresentDays)
	assert.Empty(t, summary.Months)
}

func TestReportService_AttendanceSummary_InvertedRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	seedEmployee(t, recordStore, "2024-01-15", "")

	summary, err := svc.AttendanceSummary(ctx, report.AttendanceSummaryRequest{
		EmployeeID: "EMP001",
		From:       "2024-05-31",
		To:         "2024-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "The requested range contains no days", summary.Message)
	assert.Zero(t, summary.Aggregates.PresentDays)
	assert.Empty(t, summary.Months)
}

func TestReportService_PurchaseReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, recordStore := newTestService(t)

	seedPurchase := func(date, item, qty string) {
		quantity := decimal.RequireFromString(qty)
		_, err := recordStore.Purchases().Create(ctx, inventory.Purchase{
			Date:      day(date),
			ItemName:  item,
			Category:  "Grocery",
			Quantity:  quantity,
			UnitPrice: decimal.RequireFromString("10.00"),
			Total:     quantity.Mul(decimal.RequireFromString("10.00")),
		})
		require.NoError(t, err)
	}

	seedPurchase("2024-04-10", "Rice", "20")
	seedPurchase("2024-05-02", "Rice", "30")
	seedPurchase("2024-05-03", "Oil", "5")

	result, err := svc.PurchaseReport(ctx, report.PurchaseReportRequest{
		From: "2024-04-01",
		To:   "2024-05-31",
	})
	require.NoError(t, err)

	require.Len(t, result.ItemTotals, 2)
	assert.Equal(t, "Rice", result.ItemTotals[0].ItemName)
	require.Len(t, result.MonthlyTrend, 2)
	// Item drill-down is only produced when a single item is requested.
	assert.Empty(t, result.DailyCounts)

	drill, err := svc.PurchaseReport(ctx, report.PurchaseReportRequest{
		ItemName: "Rice",
		From:     "2024-04-01",
		To:       "2024-05-31",
	})
	require.NoError(t, err)
	assert.Len(t, drill.DailyCounts, 2)
}
