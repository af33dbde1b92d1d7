package report

import (
	"time"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/report"
)

// Classification is the resolved state of a single calendar day. It carries
// no presentation; ColorFor maps it to a display color separately.
type Classification struct {
	Class         string
	OvertimeHours float64
}

// ClassifyDay resolves one date against the joining date, the requested range
// and the recorded attendance. Precedence: out of range, then before joining,
// then the recorded status, then no record.
func ClassifyDay(date time.Time, joining time.Time, from, to time.Time, records map[string]attendance.Attendance) Classification {
	if date.Before(from) || date.After(to) {
		return Classification{Class: report.ClassOutOfRange}
	}
	if !joining.IsZero() && date.Before(joining) {
		return Classification{Class: report.ClassBeforeJoining}
	}
	if record, ok := records[date.Format("2006-01-02")]; ok {
		return Classification{
			Class:         string(record.Status),
			OvertimeHours: record.OvertimeHours,
		}
	}
	return Classification{Class: report.ClassNoRecord}
}

// ColorFor maps a day classification to its display color. Out-of-range and
// before-joining days are white, unrecorded days lightgray, recorded days use
// the status color table.
func ColorFor(class string) string {
	switch class {
	case report.ClassOutOfRange, report.ClassBeforeJoining:
		return attendance.ColorOutOfScope
	case report.ClassNoRecord:
		return attendance.ColorNoRecord
	default:
		return attendance.Status(class).Color()
	}
}

// Aggregate tallies one day in [from, to] at a time. Each calendar day is
// counted exactly once, no matter how many month grids repeat it.
func Aggregate(joining time.Time, from, to time.Time, records map[string]attendance.Attendance) report.Aggregates {
	var agg report.Aggregates

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		c := ClassifyDay(date, joining, from, to, records)
		for _, bucket := range attendance.Status(c.Class).Buckets() {
			switch bucket {
			case attendance.BucketPresent:
				agg.PresentDays++
			case attendance.BucketAbsent:
				agg.AbsentDays++
			case attendance.BucketLeave:
				agg.LeaveDays++
			case attendance.BucketHalfDay:
				agg.HalfDays++
			}
		}
		if attendance.Status(c.Class) == attendance.StatusOvertime {
			agg.OvertimeHours += c.OvertimeHours
		}
	}

	return agg
}

// BuildCalendar lays out every month touched by [from, to] as Monday-first
// week grids. Edge weeks carry adjacent-month days so each row has seven
// cells; those cells are classified like any other day but flagged InMonth
// false.
func BuildCalendar(joining time.Time, from, to time.Time, records map[string]attendance.Attendance) []report.MonthGrid {
	var months []report.MonthGrid

	for first := firstOfMonth(from); !first.After(to); first = first.AddDate(0, 1, 0) {
		grid := report.MonthGrid{
			Year:  first.Year(),
			Month: int(first.Month()),
			Label: first.Format("January 2006"),
		}

		for _, week := range monthWeeks(first) {
			cells := make([]report.DayCell, 0, 7)
			for _, date := range week {
				c := ClassifyDay(date, joining, from, to, records)
				cells = append(cells, report.DayCell{
					Date:          date.Format("2006-01-02"),
					Day:           date.Day(),
					InMonth:       date.Month() == first.Month(),
					Class:         c.Class,
					Color:         ColorFor(c.Class),
					OvertimeHours: c.OvertimeHours,
				})
			}
			grid.Weeks = append(grid.Weeks, cells)
		}

		months = append(months, grid)
	}

	return months
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthWeeks returns the days of the month grouped into full Monday-to-Sunday
// weeks, padded with days from the neighbouring months.
func monthWeeks(first time.Time) [][]time.Time {
	start := first
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}

	lastDay := first.AddDate(0, 1, -1)

	var weeks [][]time.Time
	for weekStart := start; !weekStart.After(lastDay); weekStart = weekStart.AddDate(0, 0, 7) {
		week := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			week = append(week, weekStart.AddDate(0, 0, i))
		}
		weeks = append(weeks, week)
	}
	return weeks
}
