// Command migrate copies every business table from a spreadsheet workbook
// into MongoDB, for installs that outgrow the file-backed store. User
// accounts are not copied; the admin account is provisioned from config on
// the next API start.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/bizdash/bizops-backend-go/internal/config"
	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
	"github.com/bizdash/bizops-backend-go/internal/repository/mongodb"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	source, err := excel.NewStore(cfg.Store.ExcelPath)
	if err != nil {
		log.Fatal("Failed to open workbook:", err)
	}
	defer source.Close(ctx)

	dest, err := mongodb.NewStore(ctx, cfg.Store.MongoURI, cfg.Store.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer dest.Close(ctx)

	if err := migrate(ctx, source, dest); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("migration complete")
}

func migrate(ctx context.Context, source, dest store.Store) error {
	if err := copyEmployees(ctx, source, dest); err != nil {
		return fmt.Errorf("failed to copy employees: %w", err)
	}
	if err := copyAttendance(ctx, source, dest); err != nil {
		return fmt.Errorf("failed to copy attendance: %w", err)
	}
	if err := copyStock(ctx, source, dest); err != nil {
		return fmt.Errorf("failed to copy stock: %w", err)
	}
	if err := copyMovements(ctx, source, dest); err != nil {
		return fmt.Errorf("failed to copy purchases and sales: %w", err)
	}
	return nil
}

func copyEmployees(ctx context.Context, source, dest store.Store) error {
	employees, err := source.Employees().List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return err
	}
	for _, emp := range employees {
		emp.ID = ""
		if _, err := dest.Employees().Create(ctx, emp); err != nil {
			return fmt.Errorf("employee %s: %w", emp.EmployeeID, err)
		}
	}
	log.Printf("copied %d employees", len(employees))
	return nil
}

func copyAttendance(ctx context.Context, source, dest store.Store) error {
	records, err := source.Attendance().List(ctx, attendance.AttendanceFilter{})
	if err != nil {
		return err
	}
	for _, record := range records {
		record.ID = ""
		if _, err := dest.Attendance().Create(ctx, record); err != nil {
			return fmt.Errorf("attendance %s on %s: %w", record.EmployeeID, record.Date.Format("2006-01-02"), err)
		}
	}
	log.Printf("copied %d attendance records", len(records))
	return nil
}

func copyStock(ctx context.Context, source, dest store.Store) error {
	items, err := source.Stock().List(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		item.ID = ""
		if _, err := dest.Stock().Create(ctx, item); err != nil {
			return fmt.Errorf("stock item %s: %w", item.ItemName, err)
		}
	}
	log.Printf("copied %d stock items", len(items))
	return nil
}

func copyMovements(ctx context.Context, source, dest store.Store) error {
	purchases, err := source.Purchases().List(ctx, inventory.MovementFilter{})
	if err != nil {
		return err
	}
	for _, purchase := range purchases {
		purchase.ID = ""
		if _, err := dest.Purchases().Create(ctx, purchase); err != nil {
			return fmt.Errorf("purchase of %s: %w", purchase.ItemName, err)
		}
	}
	log.Printf("copied %d purchases", len(purchases))

	sales, err := source.Sales().List(ctx, inventory.MovementFilter{})
	if err != nil {
		return err
	}
	for _, sale := range sales {
		sale.ID = ""
		if _, err := dest.Sales().Create(ctx, sale); err != nil {
			return fmt.Errorf("sale of %s: %w", sale.ItemName, err)
		}
	}
	log.Printf("copied %d sales", len(sales))
	return nil
}
