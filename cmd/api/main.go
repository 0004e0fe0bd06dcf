package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gajikita/selaras-backend/internal/config"
	appHTTP "github.com/gajikita/selaras-backend/internal/handler/http"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/gajikita/selaras-backend/internal/pkg/jwt"
	"github.com/gajikita/selaras-backend/internal/pkg/machine"
	"github.com/gajikita/selaras-backend/internal/repository/postgresql"
	attendanceService "github.com/gajikita/selaras-backend/internal/service/attendance"
	authService "github.com/gajikita/selaras-backend/internal/service/auth"
	calendarService "github.com/gajikita/selaras-backend/internal/service/calendar"
	employeeService "github.com/gajikita/selaras-backend/internal/service/employee"
	"github.com/gajikita/selaras-backend/internal/service/master"
	payrollService "github.com/gajikita/selaras-backend/internal/service/payroll"
	reportService "github.com/gajikita/selaras-backend/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gaji-kita-selaras"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	machineClient := machine.NewClient(cfg.Machine)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	departmentSvc := master.NewDepartmentService(departmentRepo)
	positionSvc := master.NewPositionService(positionRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, positionRepo, machineClient, logger)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, absenceRepo, employeeRepo, eventRepo, machineClient)
	calendarSvc := calendarService.NewCalendarService(eventRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, eventRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, payrollRepo)

	router := appHTTP.NewRouter(cfg, logger, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Master:     appHTTP.NewMasterHandler(departmentSvc, positionSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Calendar:   appHTTP.NewCalendarHandler(calendarSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Machine:    appHTTP.NewMachineHandler(attendanceSvc, employeeSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
