package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/attendly/hrops-backend/internal/handler/http/middleware"
	"github.com/attendly/hrops-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Shift      ShiftHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Request    RequestHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrops-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/employee", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/forgot-password-request", h.Auth.ForgotPasswordRequest)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/register", h.Employee.Register)
			r.Get("/emplist", h.Employee.List)
			r.Get("/employeeinfo/{id}/detail", h.Employee.Detail)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Get("/check", h.Attendance.Check)
				r.Get("/grid-summary", h.Attendance.GridSummary)
				r.Get("/details", h.Attendance.Details)
				r.Get("/advance-report", h.Payroll.Report)
			})

			r.Post("/advance", h.Payroll.CreateAdvance)

			r.Post("/request", h.Request.Create)
			r.Get("/requests", h.Request.Pending)
			r.Get("/all-requests", h.Request.All)
			r.Put("/requests/{id}", h.Request.UpdateStatus)

			r.Route("/salary-components", func(r chi.Router) {
				r.Get("/", h.Payroll.ListComponents)
				r.Post("/", h.Payroll.SaveComponents)
				r.Put("/{id}", h.Payroll.UpdateComponent)
				r.Delete("/{id}", h.Payroll.DeleteComponent)
			})
			r.Post("/salary-report", h.Payroll.SaveReport)

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.UpsertLeave)
				r.Post("/take", h.Leave.TakeLeave)
				r.Get("/summary/{employeeId}", h.Leave.LeaveSummary)
				r.Post("/summary", h.Leave.SaveLeaveSummary)
			})

			r.Route("/workhours", func(r chi.Router) {
				r.Post("/", h.Leave.UpsertWorkHours)
				r.Post("/increment", h.Leave.IncrementWorkedHours)
				r.Get("/summary/{employeeId}", h.Leave.WorkSummary)
				r.Post("/summary", h.Leave.SaveWorkSummary)
			})
			r.Get("/all-leave-work-summary", h.Leave.AllLedgers)

			r.Route("/shift", func(r chi.Router) {
				r.Post("/", h.Shift.Add)
				r.Get("/", h.Shift.List)
				r.Get("/check", h.Shift.Check)
				r.Put("/{id}", h.Shift.Update)
				r.Delete("/{id}", h.Shift.Delete)
			})

			r.Get("/dashboard", h.Dashboard.Stats)
			r.Get("/owndashboard", h.Dashboard.OwnerStats)
		})
	})
	return r
}
