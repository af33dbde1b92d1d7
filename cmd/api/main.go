package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/bizdash/bizops-backend-go/internal/config"
	appHTTP "github.com/bizdash/bizops-backend-go/internal/handler/http"
	"github.com/bizdash/bizops-backend-go/internal/pkg/cron"
	"github.com/bizdash/bizops-backend-go/internal/pkg/github"
	"github.com/bizdash/bizops-backend-go/internal/pkg/jwt"
	"github.com/bizdash/bizops-backend-go/internal/repository/excel"
	"github.com/bizdash/bizops-backend-go/internal/repository/mongodb"
	attendanceService "github.com/bizdash/bizops-backend-go/internal/service/attendance"
	authService "github.com/bizdash/bizops-backend-go/internal/service/auth"
	employeeService "github.com/bizdash/bizops-backend-go/internal/service/employee"
	inventoryService "github.com/bizdash/bizops-backend-go/internal/service/inventory"
	reportService "github.com/bizdash/bizops-backend-go/internal/service/report"
	settingsService "github.com/bizdash/bizops-backend-go/internal/service/settings"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

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

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	githubClient := github.NewClient("")

	employeeSvc := employeeService.NewEmployeeService(recordStore.Employees())
	attendanceSvc := attendanceService.NewAttendanceService(recordStore.Attendance(), recordStore.Employees())
	inventorySvc := inventoryService.NewInventoryService(recordStore, inventoryService.NewCostCalculator())
	reportSvc := reportService.NewReportService(recordStore.Attendance(), recordStore.Employees(), recordStore.Purchases())
	authSvc := authService.NewAuthService(recordStore.Users(), JWTService)
	settingsSvc := settingsService.NewSettingsService(recordStore, githubClient, cfg.Store.Driver, cfg.Backup.Dir, cfg.Update.Repo, cfg.App.Version)

	if err := authSvc.EnsureAdminUser(ctx, cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to provision admin user:", err)
	}

	scheduler := cron.NewScheduler()
	scheduler.AddJob(cron.NewBackupJob(settingsSvc))
	scheduler.AddJob(cron.NewLowStockJob(recordStore.Stock()))
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Inventory:  appHTTP.NewInventoryHandler(inventorySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("listening on %s (store driver: %s)", addr, cfg.Store.Driver)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
