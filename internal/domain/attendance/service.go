package attendance

import "context"

// AttendanceService defines business logic for attendance records
type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
