package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/domain/payroll"
	attendancesvc "github.com/attendly/hrops-backend/internal/service/attendance"
)

var (
	defaultShiftHours = decimal.NewFromInt(8)
	hundred           = decimal.NewFromInt(100)
	twentyFour        = decimal.NewFromInt(24)
)

// shiftHoursPerDay derives the required daily hours from a shift's start and
// end times. Overnight shifts wrap forward by 24 hours. Missing, malformed
// or zero-length shifts fall back to eight hours.
func shiftHoursPerDay(startTime, endTime string) decimal.Decimal {
	start24, err := attendancesvc.To24Hour(startTime)
	if err != nil {
		return defaultShiftHours
	}
	end24, err := attendancesvc.To24Hour(endTime)
	if err != nil {
		return defaultShiftHours
	}

	diff, err := attendancesvc.WorkedHoursBetween(start24, end24)
	if err != nil {
		return defaultShiftHours
	}
	if diff.IsNegative() {
		diff = diff.Add(twentyFour)
	}
	if diff.IsZero() {
		return defaultShiftHours
	}
	return diff
}

// rowInputs carries everything needed to compute one employee's payroll
// line, already scoped to the requested range.
type rowInputs struct {
	BasicSalary    decimal.Decimal
	ShiftHours     decimal.Decimal
	Present        int
	Absent         int
	LeaveDays      int
	OvertimeHours  decimal.Decimal
	LateHours      decimal.Decimal
	Advance        decimal.Decimal
	LeaveSummaries []leave.LeaveSummary
	Components     []payroll.SalaryComponent
	DaysInMonth    int
}

type computedRow struct {
	BasicSalary      decimal.Decimal
	ShiftHours       decimal.Decimal
	OvertimeAddition decimal.Decimal
	LateDeduction    decimal.Decimal
	AbsentDeduction  decimal.Decimal
	LeaveDeduction   decimal.Decimal
	TotalDeduction   decimal.Decimal
	GrossSalary      decimal.Decimal
	NetSalary        decimal.Decimal
	Components       []payroll.ComponentBreakup
	LeaveAdjustment  payroll.LeaveAdjustment
	UnpaidLeave      decimal.Decimal
}

// computeRow applies the payroll math for one employee: components compound
// in order on the running gross, absences and unpaid leave deduct whole
// days, and late or overtime hours settle at the per-hour rate.
func computeRow(in rowInputs) computedRow {
	perDay := in.BasicSalary.Div(decimal.NewFromInt(int64(in.DaysInMonth)))
	perHour := perDay.Div(in.ShiftHours)

	totalEntitlement := decimal.Zero
	carryForward := decimal.Zero
	for _, s := range in.LeaveSummaries {
		totalEntitlement = totalEntitlement.Add(s.TotalEntitlement)
		carryForward = carryForward.Add(s.CarryForward)
	}
	available := totalEntitlement.Add(carryForward)

	taken := decimal.NewFromInt(int64(in.LeaveDays))
	unpaid := taken.Sub(available)
	if unpaid.IsNegative() {
		unpaid = decimal.Zero
	}
	pending := available.Sub(taken)
	if pending.IsNegative() {
		pending = decimal.Zero
	}

	gross := in.BasicSalary
	breakup := make([]payroll.ComponentBreakup, 0, len(in.Components))
	for _, c := range in.Components {
		amount := gross.Mul(c.EmployeePercentage).Div(hundred)
		if c.ComponentType == payroll.ComponentAllowance {
			gross = gross.Add(amount)
		} else {
			gross = gross.Sub(amount)
		}
		breakup = append(breakup, payroll.ComponentBreakup{
			Name:       c.Name,
			Type:       c.ComponentType,
			Percentage: c.EmployeePercentage.StringFixed(2),
			Amount:     amount.StringFixed(2),
		})
	}

	absentDeduction := perDay.Mul(decimal.NewFromInt(int64(in.Absent)))
	leaveDeduction := perDay.Mul(unpaid)
	lateDeduction := in.LateHours.Mul(perHour)
	totalDeduction := absentDeduction.Add(leaveDeduction).Add(lateDeduction)

	overtimeAddition := in.OvertimeHours.Mul(perHour)
	net := gross.Sub(totalDeduction).Sub(in.Advance).Add(overtimeAddition)

	return computedRow{
		BasicSalary:      in.BasicSalary,
		ShiftHours:       in.ShiftHours,
		OvertimeAddition: overtimeAddition,
		LateDeduction:    lateDeduction,
		AbsentDeduction:  absentDeduction,
		LeaveDeduction:   leaveDeduction,
		TotalDeduction:   totalDeduction,
		GrossSalary:      gross,
		NetSalary:        net,
		Components:       breakup,
		UnpaidLeave:      unpaid,
		LeaveAdjustment: payroll.LeaveAdjustment{
			TotalEntitlement: totalEntitlement.StringFixed(2),
			CarryForward:     carryForward.StringFixed(2),
			LeaveTaken:       in.LeaveDays,
			UnpaidLeave:      unpaid.StringFixed(2),
			LeavePending:     pending.StringFixed(2),
		},
	}
}
