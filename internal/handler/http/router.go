package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	policyHandler PolicyHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/sync", attendanceHandler.SyncDevicePunches)
			r.Post("/manual", attendanceHandler.CreateManualEntry)
			r.Get("/records", attendanceHandler.ListRecords)
			r.Delete("/records/{id}", attendanceHandler.DeleteRecord)
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Get("/", leaveHandler.ListLeaveRequests)
			r.Post("/", leaveHandler.CreateLeaveRequest)
			r.Put("/{id}/approve", leaveHandler.ApproveLeaveRequest)
			r.Put("/{id}/reject", leaveHandler.RejectLeaveRequest)
		})

		r.Route("/overtime", func(r chi.Router) {
			r.Get("/eligible", overtimeHandler.ListEligible)
			r.Route("/requests", func(r chi.Router) {
				r.Get("/", overtimeHandler.ListOvertimeRequests)
				r.Post("/", overtimeHandler.CreateOvertimeRequest)
				r.Put("/{id}/approve", overtimeHandler.ApproveOvertimeRequest)
				r.Put("/{id}/reject", overtimeHandler.RejectOvertimeRequest)
			})
		})

		r.Route("/settings/working-hours", func(r chi.Router) {
			r.Get("/", policyHandler.GetWorkingHours)
			r.Get("/{group}", policyHandler.GetGroupWorkingHours)
			r.Put("/{group}", policyHandler.UpdateWorkingHours)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.ListHolidays)
			r.Post("/", holidayHandler.CreateHoliday)
			r.Delete("/{id}", holidayHandler.DeleteHoliday)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", reportHandler.DailySheet)
			r.Get("/monthly", reportHandler.MonthlySheet)
			r.Get("/late-arrivals", reportHandler.LateArrivals)
			r.Get("/half-days", reportHandler.HalfDays)
			r.Get("/short-leave-usage", reportHandler.ShortLeaveUsage)
		})
	})
	return r
}
