package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/attendly/hrops-backend/internal/config"
	appHTTP "github.com/attendly/hrops-backend/internal/handler/http"
	"github.com/attendly/hrops-backend/internal/pkg/cron"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/attendly/hrops-backend/internal/pkg/jwt"
	"github.com/attendly/hrops-backend/internal/repository/postgresql"
	attendanceService "github.com/attendly/hrops-backend/internal/service/attendance"
	serviceAuth "github.com/attendly/hrops-backend/internal/service/auth"
	dashboardService "github.com/attendly/hrops-backend/internal/service/dashboard"
	employeeService "github.com/attendly/hrops-backend/internal/service/employee"
	leaveService "github.com/attendly/hrops-backend/internal/service/leave"
	payrollService "github.com/attendly/hrops-backend/internal/service/payroll"
	requestService "github.com/attendly/hrops-backend/internal/service/request"
	shiftService "github.com/attendly/hrops-backend/internal/service/shift"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	hoursLedgerRepo := postgresql.NewHoursLedgerRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveSummaryRepo := postgresql.NewLeaveSummaryRepository(db)
	workSummaryRepo := postgresql.NewWorkSummaryRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, advanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		hoursLedgerRepo,
		employeeRepo,
		shiftRepo,
		workSummaryRepo,
	)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	ledgerSvc := leaveService.NewLedgerService(leaveSummaryRepo, workSummaryRepo, attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		componentRepo,
		advanceRepo,
		reportRepo,
		employeeRepo,
		shiftRepo,
		attendanceRepo,
		hoursLedgerRepo,
		leaveSummaryRepo,
	)
	trackerSvc := requestService.NewTrackerService(requestRepo, advanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Leave:      appHTTP.NewLeaveHandler(ledgerSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Request:    appHTTP.NewRequestHandler(trackerSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
	db.Pool.Close()
}
