package payroll

import (
	"time"

	"github.com/attendly/hrops-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	EmployeeName string          `json:"employeeName"`
	EmployeeID   int64           `json:"employee_id"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentMode  *string         `json:"paymentMode"`
	Remarks      *string         `json:"remarks"`
	Status       string          `json:"status"`
}

func (r CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComponentInput struct {
	Name               string          `json:"name"`
	ComponentType      string          `json:"component_type"`
	EmployeePercentage decimal.Decimal `json:"employee_percentage"`
	EmployerPercentage decimal.Decimal `json:"employer_percentage"`
	Remarks            *string         `json:"remarks"`
	Active             *bool           `json:"active"`
}

type SaveComponentsRequest struct {
	Components []ComponentInput `json:"components"`
}

// ComponentError reports one rejected item of a bulk component save; valid
// items are still committed.
type ComponentError struct {
	Message   string         `json:"message"`
	Component ComponentInput `json:"comp"`
}

type ComponentResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	ComponentType      string  `json:"component_type"`
	EmployeePercentage string  `json:"employee_percentage"`
	EmployerPercentage string  `json:"employer_percentage"`
	Remarks            *string `json:"remarks"`
	Active             bool    `json:"active"`
}

// ReportRow is one employee's payroll line for the requested range.
type ReportRow struct {
	EmployeeID             int64                 `json:"employee_id"`
	FullName               string                `json:"full_name"`
	Department             string                `json:"department"`
	BasicSalary            string                `json:"basic_salary"`
	ShiftHoursPerDay       string                `json:"shift_hours_per_day"`
	TotalPresent           int                   `json:"total_present"`
	TotalAbsent            int                   `json:"total_absent"`
	TotalLeave             int                   `json:"total_leave"`
	TotalOvertimeHours     string                `json:"total_overtime_hours"`
	OvertimeAddition       string                `json:"overtime_addition"`
	TotalLateHours         string                `json:"total_late_hours"`
	LateDeduction          string                `json:"late_deduction"`
	TotalAdvance           string                `json:"total_advance"`
	AbsentDeduction        string                `json:"absent_deduction"`
	LeaveDeduction         string                `json:"leave_deduction"`
	TotalDeduction         string                `json:"total_deduction"`
	GrossSalary            string                `json:"gross_salary"`
	NetSalary              string                `json:"net_salary"`
	Paid                   bool                  `json:"paid"`
	PaidDate               *time.Time            `json:"paid_date"`
	ComponentsBreakup      []ComponentBreakup    `json:"components_breakup"`
	LeaveAdjustmentDetails []LeaveAdjustment     `json:"leave_adjustment_details"`
}

type ComponentBreakup struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Percentage string `json:"percentage"`
	Amount     string `json:"amount"`
}

type LeaveAdjustment struct {
	TotalEntitlement string `json:"total_entitlement"`
	CarryForward     string `json:"carry_forward"`
	LeaveTaken       int    `json:"leave_taken"`
	UnpaidLeave      string `json:"unpaid_leave"`
	LeavePending     string `json:"leave_pending"`
}

// Report bundles the rows with the component list so the exporter can lay
// out one column pair per active component.
type Report struct {
	Rows       []ReportRow
	Components []SalaryComponent
	Year       int
	Month      int
}

type SaveReportRequest struct {
	EmployeeID       int64           `json:"employeeId"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	AbsentDeduction  decimal.Decimal `json:"absent_deduction"`
	LeaveDeduction   decimal.Decimal `json:"leave_deduction"`
	LateDeduction    decimal.Decimal `json:"late_deduction"`
	OvertimeAddition decimal.Decimal `json:"overtime_addition"`
	TotalAdvance     decimal.Decimal `json:"total_advance"`
	Paid             bool            `json:"paid"`
}

func (r SaveReportRequest) Validate() error {
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
