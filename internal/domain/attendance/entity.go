package attendance

import "time"

type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        Status
	OvertimeHours float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Status is the closed set of attendance markings. Anything outside this set
// is rejected at the edge.
type Status string

const (
	StatusPresent    Status = "Present"
	StatusAbsent     Status = "Absent"
	StatusLeave      Status = "Leave"
	StatusHalfDay    Status = "Half Day"
	StatusOvertime   Status = "Overtime"
	StatusLate       Status = "Late"
	StatusRemoteWork Status = "Remote Work"
)

// AllStatuses lists every valid status, in display order.
var AllStatuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusLeave,
	StatusHalfDay,
	StatusOvertime,
	StatusLate,
	StatusRemoteWork,
}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Color returns the calendar cell color for the status. Statuses without an
// explicit entry (Late, Remote Work) render as lightgray, same as days with
// no record.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorNoRecord
}

// Calendar cell colors.
const (
	ColorNoRecord   = "lightgray"
	ColorOutOfScope = "white"
)

var statusColors = map[Status]string{
	StatusPresent:  "green",
	StatusOvertime: "darkgreen",
	StatusHalfDay:  "lightgreen",
	StatusAbsent:   "red",
	StatusLeave:    "yellow",
}

// Bucket is the summary aggregate a status counts toward.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketPresent
	BucketAbsent
	BucketLeave
	BucketHalfDay
)

// Buckets returns the aggregate buckets the status contributes to. An
// Overtime day counts as a present day on top of its overtime hours; Late and
// Remote Work days count toward no aggregate.
func (s Status) Buckets() []Bucket {
	switch s {
	case StatusPresent, StatusOvertime:
		return []Bucket{BucketPresent}
	case StatusAbsent:
		return []Bucket{BucketAbsent}
	case StatusLeave:
		return []Bucket{BucketLeave}
	case StatusHalfDay:
		return []Bucket{BucketHalfDay}
	default:
		return nil
	}
}
