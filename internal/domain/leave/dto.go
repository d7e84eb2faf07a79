package leave

import (
	"github.com/attendly/hrops-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertLeaveRequest struct {
	EmployeeID       int64           `json:"employeeId"`
	LeaveType        string          `json:"leaveType"`
	Year             int             `json:"year"`
	TotalEntitlement decimal.Decimal `json:"totalEntitlement"`
	CarryForward     decimal.Decimal `json:"carryForward"`
}

func (r UpsertLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType is required"})
	}
	if r.Year == 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TakeLeaveRequest struct {
	EmployeeID int64           `json:"employeeId"`
	LeaveType  string          `json:"leaveType"`
	Year       int             `json:"year"`
	Days       decimal.Decimal `json:"days"`
}

func (r TakeLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType is required"})
	}
	if r.Year == 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}
	if r.Days.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "days is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertWorkHoursRequest struct {
	EmployeeID    int64           `json:"employeeId"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	RequiredHours decimal.Decimal `json:"requiredHours"`
	WorkedHours   decimal.Decimal `json:"workedHours"`
}

func (r UpsertWorkHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if r.Year == 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be 1-12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IncrementWorkedHoursRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`
}

func (r IncrementWorkedHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveWorkSummaryRequest seeds the required hours for a month without
// touching the worked total.
type SaveWorkSummaryRequest struct {
	EmployeeID    int64           `json:"employeeId"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	RequiredHours decimal.Decimal `json:"required_hours"`
}

type LeaveSummaryResponse struct {
	ID               int64  `json:"id,omitempty"`
	LeaveType        string `json:"leave_type"`
	Year             int    `json:"year"`
	TotalEntitlement string `json:"total_entitlement"`
	LeaveTaken       string `json:"leave_taken"`
	CarryForward     string `json:"carry_forward"`
	AvailableLeave   string `json:"available_leave"`
}

type WorkSummaryResponse struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	RequiredHours string `json:"required_hours"`
	WorkedHours   string `json:"worked_hours"`
}

// EmployeeLedger combines one employee's leave and work summaries.
type EmployeeLedger struct {
	EmployeeID   int64                  `json:"employee_id"`
	FullName     string                 `json:"full_name"`
	Department   string                 `json:"department"`
	LeaveSummary []LeaveSummaryResponse `json:"leave_summary"`
	WorkSummary  []WorkSummaryResponse  `json:"work_summary"`
}

type IncrementWorkedHoursResponse struct {
	Message    string `json:"message"`
	AddedHours string `json:"added_hours"`
}
