package attendance

import (
	"github.com/attendly/hrops-backend/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeName string  `json:"employeeName"`
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"`
	InTime       *string `json:"inTime"`
	OutTime      *string `json:"outTime"`
	Status       string  `json:"status"`
}

var validStatuses = []string{
	StatusPresent, StatusAbsent, StatusLeave, StatusLate, StatusHalfDay, StatusOvertime,
}

func (r MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"})
	}
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAttendanceResponse struct {
	Message     string `json:"message"`
	WorkedHours string `json:"workedHours,omitempty"`
	LessHours   string `json:"lessHours,omitempty"`
	ExtraHours  string `json:"extraHours,omitempty"`

	// Created is true when a new record was inserted rather than closed.
	Created bool `json:"-"`
}

type CheckResponse struct {
	ID      int64   `json:"id"`
	Status  string  `json:"status"`
	InTime  *string `json:"in_time"`
	OutTime *string `json:"out_time"`
}

// GridRow is one employee's month of day → status cells.
type GridRow struct {
	EmployeeID   int64             `json:"employeeId"`
	EmployeeName string            `json:"employeeName"`
	Days         map[string]string `json:"days"`
}

// DetailRow is one attendance day with derived hours merged in.
type DetailRow struct {
	EmployeeID    int64   `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	Date          string  `json:"date"`
	Shift         string  `json:"shift"`
	Status        string  `json:"status"`
	InTime        string  `json:"inTime"`
	OutTime       string  `json:"outTime"`
	WorkedHours   *string `json:"workedHours"`
	OvertimeHours string  `json:"overtimeHours"`
	LessHours     string  `json:"lessHours"`
}
