package employee

import (
	"github.com/attendly/hrops-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RegisterEmployeeRequest struct {
	FullName                 string          `json:"fullName"`
	Email                    string          `json:"email"`
	Phone                    *string         `json:"phone"`
	Password                 string          `json:"password"`
	DOB                      *string         `json:"dob"`
	Gender                   *string         `json:"gender"`
	BloodGroup               *string         `json:"bloodGroup"`
	JoinDate                 *string         `json:"joinDate"`
	Department               string          `json:"department"`
	Designation              *string         `json:"designation"`
	Experience               *string         `json:"experience"`
	BasicSalary              decimal.Decimal `json:"basicSalary"`
	WorkType                 *string         `json:"workType"`
	Address                  *string         `json:"address"`
	City                     *string         `json:"city"`
	State                    *string         `json:"state"`
	Zip                      *string         `json:"zip"`
	EmergencyContactName     *string         `json:"emergencyContactName"`
	EmergencyContactNumber   *string         `json:"emergencyContactNumber"`
	AnnualLeaveEntitlement   decimal.Decimal `json:"annualLeaveEntitlement"`
	RequiredWorkHoursDaily   decimal.Decimal `json:"requiredWorkHoursDaily"`
	RequiredWorkHoursMonthly decimal.Decimal `json:"requiredWorkHoursMonthly"`
}

func (r RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "full name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "expected YYYY-MM-DD"})
		}
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joinDate", Message: "expected YYYY-MM-DD"})
		}
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterEmployeeResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// ListItem is one row of the directory listing, carrying the employee's
// attendance status for the current day ("Not Marked" when absent).
type ListItem struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// DetailResponse mirrors the consolidated employee view: basic profile,
// attendance roll-up, advances and overtime/half-day records.
type DetailResponse struct {
	ID                int64             `json:"id"`
	FullName          string            `json:"full_name"`
	BasicSalary       string            `json:"basic_salary"`
	AttendanceSummary AttendanceSummary `json:"attendance_summary"`
	Advances          []AdvanceItem     `json:"advances"`
	ExtraHours        []ExtraHoursItem  `json:"extra_hours"`
}

type AttendanceSummary struct {
	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	LeaveDays   int `json:"leave_days"`
}

type AdvanceItem struct {
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

type ExtraHoursItem struct {
	Date  string `json:"date"`
	Type  string `json:"type"`
	Hours string `json:"hours"`
}
