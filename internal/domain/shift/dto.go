package shift

import (
	"github.com/attendly/hrops-backend/internal/pkg/validator"
)

type AddShiftRequest struct {
	EmployeeID int64  `json:"employeeId"`
	ShiftName  string `json:"shiftName"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	ShiftType  string `json:"shiftType"`
}

func (r AddShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	errs = append(errs, validateShiftFields(r.ShiftName, r.StartTime, r.EndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ShiftName string `json:"shiftName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ShiftType string `json:"shiftType"`
}

func (r UpdateShiftRequest) Validate() error {
	errs := validateShiftFields(r.ShiftName, r.StartTime, r.EndTime)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateShiftFields(name, start, end string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{Field: "shiftName", Message: "shiftName is required"})
	}
	if validator.IsEmpty(start) {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "startTime is required"})
	}
	if validator.IsEmpty(end) {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "endTime is required"})
	}
	return errs
}

type ShiftResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	FullName     string `json:"full_name,omitempty"`
	ShiftName    string `json:"shift_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	ShiftType    string `json:"shift_type"`
}
