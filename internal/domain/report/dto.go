package report

import (
	"github.com/bizdash/bizops-backend-go/internal/pkg/validator"
)

type AttendanceSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (r *AttendanceSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	// An inverted range is not an error; the summary reports it as an empty
	// range instead.

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceSummary is the calendar report for one employee over a date
// range: per-day cells grouped into month grids plus the aggregate counts.
type AttendanceSummary struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name,omitempty"`
	From         string       `json:"from"`
	To           string       `json:"to"`
	Message      string       `json:"message,omitempty"`
	Aggregates   Aggregates   `json:"aggregates"`
	Wage         *WageSummary `json:"wage,omitempty"`
	Months       []MonthGrid  `json:"months"`
}

// WageSummary applies the employee's daily wage to the aggregate counts.
// Present and overtime days earn the daily wage; overtime hours pay the
// wage spread over an eight hour day, and the bonus accrues on the total.
type WageSummary struct {
	DailyWage    string `json:"daily_wage"`
	BasePay      string `json:"base_pay"`
	OvertimePay  string `json:"overtime_pay"`
	TotalEarned  string `json:"total_earned"`
	BonusAccrued string `json:"bonus_accrued"`
}

type Aggregates struct {
	PresentDays   int     `json:"present_days"`
	AbsentDays    int     `json:"absent_days"`
	LeaveDays     int     `json:"leave_days"`
	HalfDays      int     `json:"half_days"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// MonthGrid is one calendar month laid out in Monday-first weeks. Weeks at
// the edges carry cells from the adjacent months so every row has seven days.
type MonthGrid struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Label string      `json:"label"`
	Weeks [][]DayCell `json:"weeks"`
}

type DayCell struct {
	Date          string  `json:"date"`
	Day           int     `json:"day"`
	InMonth       bool    `json:"in_month"`
	Class         string  `json:"class"`
	Color         string  `json:"color"`
	OvertimeHours float64 `json:"overtime_hours,omitempty"`
}

// Day classifications beyond the plain attendance statuses.
const (
	ClassBeforeJoining = "before_joining"
	ClassOutOfRange    = "out_of_range"
	ClassNoRecord      = "no_record"
)

type PurchaseReportRequest struct {
	ItemName string `json:"item_name,omitempty"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func (r *PurchaseReportRequest) Validate() error {
	summary := AttendanceSummaryRequest{EmployeeID: "-", From: r.From, To: r.To}
	return summary.Validate()
}

// PurchaseReport aggregates purchase activity over a date range.
type PurchaseReport struct {
	From         string              `json:"from"`
	To           string              `json:"to"`
	DailyCounts  []DailyCount        `json:"daily_counts,omitempty"`
	ItemTotals   []ItemTotal         `json:"item_totals"`
	TopItems     []ItemTotal         `json:"top_items"`
	MonthlyTrend []MonthlyTrendPoint `json:"monthly_trend"`
}

type DailyCount struct {
	Date     string `json:"date"`
	Quantity string `json:"quantity"`
}

type ItemTotal struct {
	ItemName string `json:"item_name"`
	Quantity string `json:"quantity"`
	Total    string `json:"total"`
}

type MonthlyTrendPoint struct {
	Month string `json:"month"`
	Total string `json:"total"`
}
