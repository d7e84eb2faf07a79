package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryComponent is a named percentage rule applied to the running gross
// salary: Allowance adds, Deduction subtracts. Components compound in listed
// order; each percentage applies to the gross accumulated so far, not to the
// basic salary.
type SalaryComponent struct {
	ID                 int64
	Name               string
	ComponentType      string
	EmployeePercentage decimal.Decimal
	EmployerPercentage decimal.Decimal
	Remarks            *string
	Active             bool
}

const (
	ComponentAllowance = "Allowance"
	ComponentDeduction = "Deduction"
)

// SalaryAdvance is a cash advance pending approval.
type SalaryAdvance struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	Amount       decimal.Decimal
	PaymentMode  *string
	Remarks      *string
	Status       string
}

// SalaryReport is the cached snapshot of one computed payroll result for
// (employee, year, month), carrying the paid flag so payroll can be marked
// paid without recomputation.
type SalaryReport struct {
	ID              int64
	EmployeeID      int64
	Year            int
	Month           int
	BasicSalary     decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	AbsentDeduction decimal.Decimal
	LeaveDeduction  decimal.Decimal
	LateDeduction   decimal.Decimal
	OvertimeAddition decimal.Decimal
	TotalAdvance    decimal.Decimal
	Paid            bool
	PaidDate        *time.Time
}

// PaidStatus is the slice of the snapshot the aggregator merges in.
type PaidStatus struct {
	Paid     bool
	PaidDate *time.Time
}
