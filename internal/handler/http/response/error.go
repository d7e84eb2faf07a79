package response

import (
	"errors"
	"net/http"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/domain/auth"
	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCompleted),
		errors.Is(err, attendance.ErrOutTimeRequired),
		errors.Is(err, attendance.ErrTimeConversionFailed),
		errors.Is(err, attendance.ErrNegativeWorkedHours):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrNoAttendanceForDate):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrIncompleteTimes):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrComponentNotFound):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
