package http

import (
	"log/slog"
	"net/http"

	"github.com/gajikita/selaras-backend/internal/config"
	"github.com/gajikita/selaras-backend/internal/handler/http/middleware"
	"github.com/gajikita/selaras-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Master     MasterHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Calendar   CalendarHandler
	Payroll    PayrollHandler
	Report     ReportHandler
	Machine    MachineHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Inbound attendance machine; API key, not JWT.
		r.Group(func(r chi.Router) {
			r.Use(middleware.MachineAPIKey(cfg.Machine.APIKey))
			r.Post("/machine", h.Machine.Handle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)
				r.Get("/{id}", h.Master.GetDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", h.Master.ListPositions)
				r.Get("/{id}", h.Master.GetPosition)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreatePosition)
					r.Put("/{id}", h.Master.UpdatePosition)
					r.Delete("/{id}", h.Master.DeletePosition)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Post("/", h.Employee.Create)
				r.Put("/{id}", h.Employee.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)
				r.Post("/", h.Attendance.Create)
				r.Post("/import", h.Attendance.Import)
				r.Post("/sync", h.Attendance.Sync)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.Get("/summary", h.Payroll.Summary)
				r.Get("/{id}", h.Payroll.Get)
				r.Post("/process", h.Payroll.Process)
				r.Post("/sync-calendar", h.Payroll.SyncCalendar)
			})

			r.Get("/calendar/events", h.Calendar.ListEvents)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/attendance", h.Report.ExportAttendance)
				r.Get("/payslip/{id}", h.Report.ExportPayslip)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
