package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/domain/user"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

// Sheet names, one worksheet per table.
const (
	sheetEmployees  = "Employees"
	sheetAttendance = "Attendance"
	sheetStock      = "Stock"
	sheetPurchases  = "Purchases"
	sheetSales      = "Sales"
	sheetUsers      = "Users"
)

var sheetHeaders = map[string][]string{
	sheetEmployees:  {"id", "employee_id", "name", "email", "phone", "department", "position", "joining_date", "daily_wage", "created_at", "updated_at"},
	sheetAttendance: {"id", "employee_id", "date", "status", "overtime_hours", "created_at", "updated_at"},
	sheetStock:      {"id", "item_name", "category", "current_quantity", "unit_cost_average", "minimum_stock", "created_at", "updated_at"},
	sheetPurchases:  {"id", "date", "item_name", "category", "quantity", "unit_price", "total", "created_at"},
	sheetSales:      {"id", "date", "item_name", "category", "quantity", "unit_price", "total", "customer_name", "customer_phone", "created_at"},
	sheetUsers:      {"id", "email", "name", "password_hash", "role", "created_at", "updated_at"},
}

// Store is the spreadsheet record store: one workbook, one worksheet per
// table, every cell held as a string. All access is serialized through one
// mutex; a write outside Atomic saves the workbook immediately.
type Store struct {
	mu   sync.Mutex
	path string
	file *excelize.File
}

func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.createWorkbook(); err != nil {
			return nil, err
		}
		return s, nil
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	s.file = file

	// Older workbooks may be missing newer sheets.
	if err := s.ensureSheets(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) createWorkbook() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create workbook directory: %w", err)
		}
	}

	s.file = excelize.NewFile()
	if err := s.ensureSheets(); err != nil {
		return err
	}
	if err := s.file.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	return s.save()
}

func (s *Store) ensureSheets() error {
	for sheet, headers := range sheetHeaders {
		idx, err := s.file.GetSheetIndex(sheet)
		if err != nil {
			return fmt.Errorf("failed to look up sheet %s: %w", sheet, err)
		}
		if idx >= 0 {
			continue
		}
		if _, err := s.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
		for col, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := s.file.SetCellValue(sheet, cell, header); err != nil {
				return fmt.Errorf("failed to write header for %s: %w", sheet, err)
			}
		}
	}
	return nil
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepository{store: s}
}

func (s *Store) Attendance() attendance.AttendanceRepository {
	return &attendanceRepository{store: s}
}

func (s *Store) Stock() inventory.StockRepository {
	return &stockRepository{store: s}
}

func (s *Store) Purchases() inventory.PurchaseRepository {
	return &purchaseRepository{store: s}
}

func (s *Store) Sales() inventory.SaleRepository {
	return &saleRepository{store: s}
}

func (s *Store) Users() user.UserRepository {
	return &userRepository{store: s}
}

type batchKey struct{}

func inBatch(ctx context.Context) bool {
	_, ok := ctx.Value(batchKey{}).(bool)
	return ok
}

// Atomic holds the workbook lock for the whole of fn and saves once at the
// end, so a purchase or sale and its stock adjustment land in the file
// together. If fn fails the in-memory workbook is reloaded from disk, which
// discards every change fn buffered.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = context.WithValue(ctx, batchKey{}, true)
	if err := fn(ctx); err != nil {
		if reloadErr := s.reload(); reloadErr != nil {
			return fmt.Errorf("failed to discard changes after %v: %w", err, reloadErr)
		}
		return err
	}
	return s.save()
}

// write runs fn under the workbook lock and saves, unless the call is inside
// Atomic, which already holds the lock and saves at the end.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if inBatch(ctx) {
		return fn()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(); err != nil {
		return err
	}
	return s.save()
}

// read runs fn under the workbook lock unless inside Atomic.
func (s *Store) read(ctx context.Context, fn func() error) error {
	if inBatch(ctx) {
		return fn()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) save() error {
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (s *Store) reload() error {
	file, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to reload workbook: %w", err)
	}
	s.file = file
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Stats(ctx context.Context) (store.Stats, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return store.Stats{}, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var objects int64
	for sheet := range sheetHeaders {
		rows, err := s.file.GetRows(sheet)
		if err != nil {
			continue
		}
		if len(rows) > 1 {
			objects += int64(len(rows) - 1)
		}
	}

	return store.Stats{
		DataSizeBytes:    info.Size(),
		StorageSizeBytes: info.Size(),
		Collections:      int64(len(sheetHeaders)),
		Objects:          objects,
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// rows returns all data rows of a sheet, padded to the header width so row
// codecs can index columns without bounds checks.
func (s *Store) rows(sheet string) ([][]string, error) {
	rows, err := s.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	width := len(sheetHeaders[sheet])
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		for len(row) < width {
			row = append(row, "")
		}
		data = append(data, row)
	}
	return data, nil
}

func (s *Store) appendRow(sheet string, values []interface{}) error {
	rows, err := s.file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	rowNum := len(rows) + 1
	return s.setRow(sheet, rowNum, values)
}

func (s *Store) setRow(sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", rowNum, err)
	}
	if err := s.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row in %s: %w", sheet, err)
	}
	return nil
}

func (s *Store) removeRow(sheet string, rowNum int) error {
	if err := s.file.RemoveRow(sheet, rowNum); err != nil {
		return fmt.Errorf("failed to remove row in %s: %w", sheet, err)
	}
	return nil
}

// findRow scans a sheet for the first data row whose column col (zero-based)
// equals value. It returns the 1-based worksheet row number, or 0 when no row
// matches.
func (s *Store) findRow(sheet string, col int, value string) (int, []string, error) {
	rows, err := s.rows(sheet)
	if err != nil {
		return 0, nil, err
	}
	for i, row := range rows {
		if row[col] == value {
			return i + 2, row, nil
		}
	}
	return 0, nil, nil
}
