package excel

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func attendanceFromRow(row []string) attendance.Attendance {
	return attendance.Attendance{
		ID:            row[0],
		EmployeeID:    row[1],
		Date:          parseDate(row[2]),
		Status:        attendance.Status(row[3]),
		OvertimeHours: parseFloat(row[4]),
		CreatedAt:     parseTimestamp(row[5]),
		UpdatedAt:     parseTimestamp(row[6]),
	}
}

func attendanceToRow(a attendance.Attendance) []interface{} {
	return []interface{}{
		a.ID,
		a.EmployeeID,
		formatDate(a.Date),
		string(a.Status),
		strconv.FormatFloat(a.OvertimeHours, 'f', -1, 64),
		formatTimestamp(a.CreatedAt),
		formatTimestamp(a.UpdatedAt),
	}
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	err := r.store.write(ctx, func() error {
		dup, err := r.findByEmployeeAndDate(record.EmployeeID, record.Date)
		if err != nil {
			return err
		}
		if dup != 0 {
			return attendance.ErrDuplicateAttendance
		}

		record.ID = uuid.NewString()
		return r.store.appendRow(sheetAttendance, attendanceToRow(record))
	})
	if err != nil {
		return attendance.Attendance{}, err
	}
	return record, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	var result attendance.Attendance
	err := r.store.read(ctx, func() error {
		rowNum, row, err := r.store.findRow(sheetAttendance, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return attendance.ErrAttendanceNotFound
		}
		result = attendanceFromRow(row)
		return nil
	})
	return result, err
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	var result *attendance.Attendance
	err := r.store.read(ctx, func() error {
		rows, err := r.store.rows(sheetAttendance)
		if err != nil {
			return err
		}
		dateStr := formatDate(date)
		for _, row := range rows {
			if row[1] == employeeID && row[2] == dateStr {
				record := attendanceFromRow(row)
				result = &record
				return nil
			}
		}
		return nil
	})
	return result, err
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetAttendance, 0, record.ID)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return attendance.ErrAttendanceNotFound
		}

		dup, err := r.findByEmployeeAndDate(record.EmployeeID, record.Date)
		if err != nil {
			return err
		}
		if dup != 0 && dup != rowNum {
			return attendance.ErrDuplicateAttendance
		}

		return r.store.setRow(sheetAttendance, rowNum, attendanceToRow(record))
	})
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetAttendance, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return attendance.ErrAttendanceNotFound
		}
		return r.store.removeRow(sheetAttendance, rowNum)
	})
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	err := r.store.read(ctx, func() error {
		rows, err := r.store.rows(sheetAttendance)
		if err != nil {
			return err
		}
		for _, row := range rows {
			record := attendanceFromRow(row)
			if filter.EmployeeID != "" && record.EmployeeID != filter.EmployeeID {
				continue
			}
			if filter.Status != "" && string(record.Status) != filter.Status {
				continue
			}
			if filter.From != nil && record.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && record.Date.After(*filter.To) {
				continue
			}
			records = append(records, record)
		}
		return nil
	})
	return records, err
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	filter := attendance.AttendanceFilter{
		EmployeeID: employeeID,
		From:       &from,
		To:         &to,
	}
	return r.List(ctx, filter)
}

// findByEmployeeAndDate returns the worksheet row number of the record for
// (employeeID, date), or 0. Caller holds the store lock.
func (r *attendanceRepository) findByEmployeeAndDate(employeeID string, date time.Time) (int, error) {
	rows, err := r.store.rows(sheetAttendance)
	if err != nil {
		return 0, err
	}
	dateStr := formatDate(date)
	for i, row := range rows {
		if row[1] == employeeID && row[2] == dateStr {
			return i + 2, nil
		}
	}
	return 0, nil
}
