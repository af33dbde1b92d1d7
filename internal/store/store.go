package store

import (
	"context"
	"errors"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/domain/user"
)

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("record store unavailable")

// Stats describes the storage footprint of the store.
type Stats struct {
	DataSizeBytes    int64
	StorageSizeBytes int64
	Collections      int64
	Objects          int64
}

// Store is a record store handle: one spreadsheet workbook or one document
// database, exposing a typed repository per table. Implementations are
// injected at startup; nothing holds a global instance.
type Store interface {
	Employees() employee.EmployeeRepository
	Attendance() attendance.AttendanceRepository
	Stock() inventory.StockRepository
	Purchases() inventory.PurchaseRepository
	Sales() inventory.SaleRepository
	Users() user.UserRepository

	// Atomic runs fn so that all writes inside it are persisted together.
	// The document store uses a session transaction where the deployment
	// supports one, the spreadsheet store defers the workbook save until fn
	// returns.
	Atomic(ctx context.Context, fn func(ctx context.Context) error) error

	Ping(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
	Close(ctx context.Context) error
}
