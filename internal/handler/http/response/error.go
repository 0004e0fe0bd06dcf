package response

import (
	"errors"
	"net/http"

	"github.com/gajikita/selaras-backend/internal/domain/attendance"
	"github.com/gajikita/selaras-backend/internal/domain/auth"
	"github.com/gajikita/selaras-backend/internal/domain/calendar"
	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/domain/master/department"
	"github.com/gajikita/selaras-backend/internal/domain/master/position"
	"github.com/gajikita/selaras-backend/internal/domain/payroll"
	"github.com/gajikita/selaras-backend/internal/domain/user"
	"github.com/gajikita/selaras-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var noSalaryErr *payroll.NoBaseSalaryError
	if errors.As(err, &noSalaryErr) {
		BadRequest(w, noSalaryErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionNameExists):
		Conflict(w, "Position name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyRecorded):
		Conflict(w, "Attendance already recorded for this employee and date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyProcessed):
		Conflict(w, "Payroll for this period has already been processed")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrEventNotFound):
		NotFound(w, "Calendar event not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
