// Command seed fills the configured record store with sample data so the
// dashboard has something to show on a fresh install.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bizdash/bizops-backend-go/internal/config"
	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	employeeDomain "github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
	"github.com/bizdash/bizops-backend-go/internal/repository/mongodb"
	attendanceService "github.com/bizdash/bizops-backend-go/internal/service/attendance"
	employeeService "github.com/bizdash/bizops-backend-go/internal/service/employee"
	inventoryService "github.com/bizdash/bizops-backend-go/internal/service/inventory"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

var sampleEmployees = []employeeDomain.CreateEmployeeRequest{
	{EmployeeID: "EMP001", Name: "Asha Verma", Email: "asha.verma@example.com", Phone: "+919812345001", Department: "Operations", Position: "Manager", JoiningDate: "2024-01-15", DailyWage: "900.00"},
	{EmployeeID: "EMP002", Name: "Rohan Mehta", Email: "rohan.mehta@example.com", Phone: "+919812345002", Department: "Sales", Position: "Executive", JoiningDate: "2024-03-01", DailyWage: "650.00"},
	{EmployeeID: "EMP003", Name: "Priya Nair", Email: "priya.nair@example.com", Phone: "+919812345003", Department: "Inventory", Position: "Clerk", JoiningDate: "2024-06-10", DailyWage: "550.00"},
}

var sampleItems = []struct {
	Name     string
	Category string
	Price    string
}{
	{"Basmati Rice 5kg", "Grocery", "420.00"},
	{"Sunflower Oil 1L", "Grocery", "145.50"},
	{"Detergent Powder 2kg", "Household", "230.00"},
	{"LED Bulb 9W", "Electrical", "85.00"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	var recordStore store.Store
	switch cfg.Store.Driver {
	case "mongo":
		recordStore, err = mongodb.NewStore(ctx, cfg.Store.MongoURI, cfg.Store.MongoDB)
	case "excel":
		recordStore, err = excel.NewStore(cfg.Store.ExcelPath)
	default:
		log.Fatalf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		log.Fatal("Failed to open record store:", err)
	}
	defer recordStore.Close(ctx)

	employeeSvc := employeeService.NewEmployeeService(recordStore.Employees())
	attendanceSvc := attendanceService.NewAttendanceService(recordStore.Attendance(), recordStore.Employees())
	inventorySvc := inventoryService.NewInventoryService(recordStore, inventoryService.NewCostCalculator())

	rng := rand.New(rand.NewSource(42))

	for _, req := range sampleEmployees {
		if _, err := employeeSvc.CreateEmployee(ctx, req); err != nil {
			log.Printf("skip employee %s: %v", req.EmployeeID, err)
		}
	}

	seedAttendance(ctx, attendanceSvc, rng)
	seedMovements(ctx, inventorySvc, rng)

	log.Println("seeding complete")
}

func seedAttendance(ctx context.Context, svc attendance.AttendanceService, rng *rand.Rand) {
	statuses := attendance.AllStatuses
	today := time.Now()

	for dayOffset := 30; dayOffset >= 1; dayOffset-- {
		date := today.AddDate(0, 0, -dayOffset)
		if date.Weekday() == time.Sunday {
			continue
		}
		for _, emp := range sampleEmployees {
			joining, _ := time.Parse("2006-01-02", emp.JoiningDate)
			if date.Before(joining) {
				continue
			}
			status := statuses[rng.Intn(len(statuses))]
			req := attendance.MarkAttendanceRequest{
				EmployeeID: emp.EmployeeID,
				Date:       date.Format("2006-01-02"),
				Status:     string(status),
			}
			if status == attendance.StatusOvertime {
				req.OvertimeHours = float64(1 + rng.Intn(4))
			}
			if _, err := svc.Mark(ctx, req); err != nil {
				log.Printf("skip attendance %s %s: %v", req.EmployeeID, req.Date, err)
			}
		}
	}
}

func seedMovements(ctx context.Context, svc inventory.InventoryService, rng *rand.Rand) {
	today := time.Now()

	for _, item := range sampleItems {
		for i := 0; i < 3; i++ {
			date := today.AddDate(0, 0, -(7*i + rng.Intn(5)))
			req := inventory.RecordPurchaseRequest{
				Date:      date.Format("2006-01-02"),
				ItemName:  item.Name,
				Category:  item.Category,
				Quantity:  fmt.Sprintf("%d", 10+rng.Intn(40)),
				UnitPrice: item.Price,
			}
			if _, err := svc.RecordPurchase(ctx, req); err != nil {
				log.Printf("skip purchase %s: %v", item.Name, err)
			}
		}

		for i := 0; i < 2; i++ {
			date := today.AddDate(0, 0, -rng.Intn(7))
			req := inventory.RecordSaleRequest{
				Date:      date.Format("2006-01-02"),
				ItemName:  item.Name,
				Category:  item.Category,
				Quantity:  fmt.Sprintf("%d", 1+rng.Intn(5)),
				UnitPrice: item.Price,
			}
			if _, err := svc.RecordSale(ctx, req); err != nil {
				log.Printf("skip sale %s: %v", item.Name, err)
			}
		}
	}
}
