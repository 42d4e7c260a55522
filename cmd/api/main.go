package main

import (
	"fmt"
	"net/http"

	"github.com/sathish136/mo-sub000/internal/config"
	appHTTP "github.com/sathish136/mo-sub000/internal/handler/http"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
	"github.com/sathish136/mo-sub000/internal/repository/postgresql"
	attendanceService "github.com/sathish136/mo-sub000/internal/service/attendance"
	employeeService "github.com/sathish136/mo-sub000/internal/service/employee"
	holidayService "github.com/sathish136/mo-sub000/internal/service/holiday"
	leaveService "github.com/sathish136/mo-sub000/internal/service/leave"
	overtimeService "github.com/sathish136/mo-sub000/internal/service/overtime"
	policyService "github.com/sathish136/mo-sub000/internal/service/policy"
	reportService "github.com/sathish136/mo-sub000/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	policySvc := policyService.NewPolicyService(cfg.Policy.FilePath)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	overtimeSvc := overtimeService.NewOvertimeService(db, overtimeRepo, attendanceRepo, policySvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(
		employeeRepo,
		attendanceRepo,
		overtimeRepo,
		leaveSvc,
		holidaySvc,
		policySvc,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		overtimeHandler,
		policyHandler,
		holidayHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
