package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/report"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func recordsByDate(records ...attendance.Attendance) map[string]attendance.Attendance {
	byDate := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		byDate[r.Date.Format("2006-01-02")] = r
	}
	return byDate
}

func TestClassifyDay_Precedence(t *testing.T) {
	t.Parallel()

	joining := day("2024-01-10")
	from, to := day("2024-01-08"), day("2024-01-21")
	records := recordsByDate(
		attendance.Attendance{Date: day("2024-01-09"), Status: attendance.StatusPresent},
		attendance.Attendance{Date: day("2024-01-15"), Status: attendance.StatusOvertime, OvertimeHours: 2.5},
	)

	tests := []struct {
		name      string
		date      string
		wantClass string
		wantHours float64
	}{
		{"before the range is out of range", "2024-01-05", report.ClassOutOfRange, 0},
		{"after the range is out of range", "2024-01-25", report.ClassOutOfRange, 0},
		{"before joining wins over a stray record", "2024-01-09", report.ClassBeforeJoining, 0},
		{"a recorded day carries its status", "2024-01-15", string(attendance.StatusOvertime), 2.5},
		{"an unrecorded working day has no record", "2024-01-16", report.ClassNoRecord, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDay(day(tt.date), joining, from, to, records)
			assert.Equal(t, tt.wantClass, got.Class)
			assert.Equal(t, tt.wantHours, got.OvertimeHours)
		})
	}
}

func TestColorFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "white", ColorFor(report.ClassOutOfRange))
	assert.Equal(t, "white", ColorFor(report.ClassBeforeJoining))
	assert.Equal(t, "lightgray", ColorFor(report.ClassNoRecord))
	assert.Equal(t, "green", ColorFor(string(attendance.StatusPresent)))
	assert.Equal(t, "darkgreen", ColorFor(string(attendance.StatusOvertime)))
	assert.Equal(t, "lightgreen", ColorFor(string(attendance.StatusHalfDay)))
	assert.Equal(t, "red", ColorFor(string(attendance.StatusAbsent)))
	assert.Equal(t, "yellow", ColorFor(string(attendance.StatusLeave)))
	assert.Equal(t, "lightgray", ColorFor(string(attendance.StatusLate)))
	assert.Equal(t, "lightgray", ColorFor(string(attendance.StatusRemoteWork)))
}

func TestAggregate_CountsEachBucketOnce(t *testing.T) {
	t.Parallel()

	joining := day("2023-12-01")
	from, to := day("2024-01-01"), day("2024-01-10")
	records := recordsByDate(
		attendance.Attendance{Date: day("2024-01-01"), Status: attendance.StatusPresent},
		attendance.Attendance{Date: day("2024-01-02"), Status: attendance.StatusOvertime, OvertimeHours: 3},
		attendance.Attendance{Date: day("2024-01-03"), Status: attendance.StatusAbsent},
		attendance.Attendance{Date: day("2024-01-04"), Status: attendance.StatusLeave},
		attendance.Attendance{Date: day("2024-01-05"), Status: attendance.StatusHalfDay},
		attendance.Attendance{Date: day("2024-01-08"), Status: attendance.StatusLate},
		attendance.Attendance{Date: day("2024-01-09"), Status: attendance.StatusRemoteWork},
	)

	agg := Aggregate(joining, from, to, records)

	// Overtime counts as a present day on top of its hours; Late and Remote
	// Work count toward nothing.
	assert.Equal(t, 2, agg.PresentDays)
	assert.Equal(t, 1, agg.AbsentDays)
	assert.Equal(t, 1, agg.LeaveDays)
	assert.Equal(t, 1, agg.HalfDays)
	assert.Equal(t, 3.0, agg.OvertimeHours)
}

func TestAggregate_BeforeJoiningContributesNothing(t *testing.T) {
	t.Parallel()

	// Joined after the whole requested range.
	joining := day("2024-03-01")
	from, to := day("2024-01-01"), day("2024-01-31")
	records := recordsByDate(
		attendance.Attendance{Date: day("2024-01-15"), Status: attendance.StatusPresent},
	)

	agg := Aggregate(joining, from, to, records)

	assert.Zero(t, agg.PresentDays)
	assert.Zero(t, agg.AbsentDays)
	assert.Zero(t, agg.LeaveDays)
	assert.Zero(t, agg.HalfDays)
	assert.Zero(t, agg.OvertimeHours)
}

func TestBuildCalendar_MondayFirstGrid(t *testing.T) {
	t.Parallel()

	joining := day("2023-06-01")
	from, to := day("2024-01-01"), day("2024-01-31")

	months := BuildCalendar(joining, from, to, nil)

	require.Len(t, months, 1)
	grid := months[0]
	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 1, grid.Month)
	assert.Equal(t, "January 2024", grid.Label)

	// January 2024 starts on a Monday and spans five Monday-first weeks, the
	// last of which spills into February.
	require.Len(t, grid.Weeks, 5)
	for _, week := range grid.Weeks {
		require.Len(t, week, 7)
	}

	first := grid.Weeks[0][0]
	assert.Equal(t, "2024-01-01", first.Date)
	assert.True(t, first.InMonth)

	last := grid.Weeks[4][6]
	assert.Equal(t, "2024-02-04", last.Date)
	assert.False(t, last.InMonth)
	assert.Equal(t, report.ClassOutOfRange, last.Class)
	assert.Equal(t, "white", last.Color)
}

func TestBuildCalendar_BeforeJoiningDaysAreWhite(t *testing.T) {
	t.Parallel()

	joining := day("2024-03-01")
	from, to := day("2024-01-01"), day("2024-01-31")

	months := BuildCalendar(joining, from, to, nil)

	require.Len(t, months, 1)
	for _, week := range months[0].Weeks {
		for _, cell := range week {
			if !cell.InMonth {
				continue
			}
			assert.Equal(t, report.ClassBeforeJoining, cell.Class)
			assert.Equal(t, "white", cell.Color)
		}
	}
}

func TestBuildCalendar_SpansEveryTouchedMonth(t *testing.T) {
	t.Parallel()

	joining := day("2023-06-01")
	from, to := day("2024-01-20"), day("2024-03-05")

	months := BuildCalendar(joining, from, to, nil)

	require.Len(t, months, 3)
	assert.Equal(t, "January 2024", months[0].Label)
	assert.Equal(t, "February 2024", months[1].Label)
	assert.Equal(t, "March 2024", months[2].Label)
}
