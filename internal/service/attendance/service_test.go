package attendance

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/pkg/validator"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
)

func newTestService(t *testing.T) attendance.AttendanceService {
	t.Helper()
	s, err := excel.NewStore(filepath.Join(t.TempDir(), "business_data.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	_, err = s.Employees().Create(context.Background(), employee.Employee{
		EmployeeID:  "EMP001",
		Name:        "Asha Verma",
		JoiningDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DailyWage:   decimal.RequireFromString("900.00"),
	})
	require.NoError(t, err)

	return NewAttendanceService(s.Attendance(), s.Employees())
}

func markRequest(date string, status attendance.Status) attendance.MarkAttendanceRequest {
	return attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       date,
		Status:     string(status),
	}
}

func TestAttendanceService_Mark(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.Mark(ctx, markRequest("2024-05-20", attendance.StatusPresent))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2024-05-20", resp.Date)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestAttendanceService_Mark_DuplicateDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Mark(ctx, markRequest("2024-05-20", attendance.StatusPresent))
	require.NoError(t, err)

	_, err = svc.Mark(ctx, markRequest("2024-05-20", attendance.StatusAbsent))
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}

func TestAttendanceService_Mark_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	req := markRequest("2024-05-20", attendance.StatusPresent)
	req.EmployeeID = "EMP404"

	_, err := svc.Mark(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Mark_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	req := markRequest("2024-05-20", attendance.StatusPresent)
	req.Status = "On The Moon"

	_, err := svc.Mark(ctx, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}

func TestAttendanceService_Mark_OvertimeHoursOnlyForOvertime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	// Hours on a non-overtime status are dropped.
	req := markRequest("2024-05-20", attendance.StatusPresent)
	req.OvertimeHours = 3
	resp, err := svc.Mark(ctx, req)
	require.NoError(t, err)
	assert.Zero(t, resp.OvertimeHours)

	overtime := markRequest("2024-05-21", attendance.StatusOvertime)
	overtime.OvertimeHours = 2.5
	resp, err = svc.Mark(ctx, overtime)
	require.NoError(t, err)
	assert.Equal(t, 2.5, resp.OvertimeHours)
}

func TestAttendanceService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Mark(ctx, markRequest("2024-05-20", attendance.StatusPresent))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID: created.ID,
		MarkAttendanceRequest: attendance.MarkAttendanceRequest{
			EmployeeID: "EMP001",
			Date:       "2024-05-20",
			Status:     string(attendance.StatusHalfDay),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusHalfDay), updated.Status)
}

func TestAttendanceService_List_FilterByRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	for _, date := range []string{"2024-05-01", "2024-05-15", "2024-06-01"} {
		_, err := svc.Mark(ctx, markRequest(date, attendance.StatusPresent))
		require.NoError(t, err)
	}

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	records, err := svc.List(ctx, attendance.AttendanceFilter{
		EmployeeID: "EMP001",
		From:       &from,
		To:         &to,
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
