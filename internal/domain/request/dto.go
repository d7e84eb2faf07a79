package request

import (
	"github.com/attendly/hrops-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	EmployeeID  int64            `json:"employeeId"`
	Type        string           `json:"type"`
	Reason      *string          `json:"reason"`
	Date        string           `json:"date"`
	Status      string           `json:"status"`
	FromDate    *string          `json:"fromDate"`
	ToDate      *string          `json:"toDate"`
	LeaveType   *string          `json:"leaveType"`
	HowManyDays *decimal.Decimal `json:"howManyDays"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"})
	}
	for field, v := range map[string]*string{"fromDate": r.FromDate, "toDate": r.ToDate} {
		if v != nil {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "expected YYYY-MM-DD"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status      string `json:"status"`
	RequestType string `json:"request_type"`
}

func (r UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{StatusPending, StatusApproved, StatusRejected}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Pending, Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
