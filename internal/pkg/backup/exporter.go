package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

// Export writes every table of the store into a timestamped workbook under
// dir and returns the file path and size. The workbook layout matches the
// spreadsheet store, so an export doubles as a seed file for it.
func Export(ctx context.Context, recordStore store.Store, dir string) (string, int64, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create backup directory: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := writeEmployees(ctx, file, recordStore); err != nil {
		return "", 0, err
	}
	if err := writeAttendance(ctx, file, recordStore); err != nil {
		return "", 0, err
	}
	if err := writeStock(ctx, file, recordStore); err != nil {
		return "", 0, err
	}
	if err := writeMovements(ctx, file, recordStore); err != nil {
		return "", 0, err
	}

	if err := file.DeleteSheet("Sheet1"); err != nil {
		return "", 0, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("backup_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := file.SaveAs(path); err != nil {
		return "", 0, fmt.Errorf("failed to save backup workbook: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat backup workbook: %w", err)
	}
	return path, info.Size(), nil
}

func writeSheet(file *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}

	all := append([][]interface{}{headerRow}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row: %w", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row in %s: %w", sheet, err)
		}
	}
	return nil
}

func writeEmployees(ctx context.Context, file *excelize.File, recordStore store.Store) error {
	employees, err := recordStore.Employees().List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return fmt.Errorf("failed to export employees: %w", err)
	}

	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		joining := ""
		if !e.JoiningDate.IsZero() {
			joining = e.JoiningDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			e.EmployeeID, e.Name, e.Email, e.Phone, e.Department, e.Position, joining, e.DailyWage.String(),
		})
	}
	return writeSheet(file, "Employees",
		[]string{"employee_id", "name", "email", "phone", "department", "position", "joining_date", "daily_wage"},
		rows)
}

func writeAttendance(ctx context.Context, file *excelize.File, recordStore store.Store) error {
	records, err := recordStore.Attendance().List(ctx, attendance.AttendanceFilter{})
	if err != nil {
		return fmt.Errorf("failed to export attendance: %w", err)
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.EmployeeID, r.Date.Format("2006-01-02"), string(r.Status), r.OvertimeHours,
		})
	}
	return writeSheet(file, "Attendance",
		[]string{"employee_id", "date", "status", "overtime_hours"},
		rows)
}

func writeStock(ctx context.Context, file *excelize.File, recordStore store.Store) error {
	items, err := recordStore.Stock().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to export stock: %w", err)
	}

	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		rows = append(rows, []interface{}{
			item.ItemName, item.Category, item.CurrentQuantity.String(), item.UnitCostAverage.String(), item.MinimumStock.String(),
		})
	}
	return writeSheet(file, "Stock",
		[]string{"item_name", "category", "current_quantity", "unit_cost_average", "minimum_stock"},
		rows)
}

func writeMovements(ctx context.Context, file *excelize.File, recordStore store.Store) error {
	purchases, err := recordStore.Purchases().List(ctx, inventory.MovementFilter{})
	if err != nil {
		return fmt.Errorf("failed to export purchases: %w", err)
	}

	purchaseRows := make([][]interface{}, 0, len(purchases))
	for _, p := range purchases {
		purchaseRows = append(purchaseRows, []interface{}{
			p.Date.Format("2006-01-02"), p.ItemName, p.Category, p.Quantity.String(), p.UnitPrice.String(), p.Total.String(),
		})
	}
	if err := writeSheet(file, "Purchases",
		[]string{"date", "item_name", "category", "quantity", "unit_price", "total"},
		purchaseRows); err != nil {
		return err
	}

	sales, err := recordStore.Sales().List(ctx, inventory.MovementFilter{})
	if err != nil {
		return fmt.Errorf("failed to export sales: %w", err)
	}

	saleRows := make([][]interface{}, 0, len(sales))
	for _, s := range sales {
		saleRows = append(saleRows, []interface{}{
			s.Date.Format("2006-01-02"), s.ItemName, s.Category, s.Quantity.String(), s.UnitPrice.String(), s.Total.String(), s.CustomerName, s.CustomerPhone,
		})
	}
	return writeSheet(file, "Sales",
		[]string{"date", "item_name", "category", "quantity", "unit_price", "total", "customer_name", "customer_phone"},
		saleRows)
}
