package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/domain/payroll"
)

func baseInputs() rowInputs {
	return rowInputs{
		BasicSalary: decimal.NewFromInt(30000),
		ShiftHours:  decimal.NewFromInt(8),
		DaysInMonth: 30,
	}
}

func TestComputeRowAbsentDeduction(t *testing.T) {
	in := baseInputs()
	in.Absent = 2

	row := computeRow(in)

	// Two absent days at 30000/30 per day.
	assert.Equal(t, "2000.00", row.AbsentDeduction.StringFixed(2))
	assert.Equal(t, "2000.00", row.TotalDeduction.StringFixed(2))
	assert.Equal(t, "28000.00", row.NetSalary.StringFixed(2))
}

func TestComputeRowComponentsCompound(t *testing.T) {
	in := rowInputs{
		BasicSalary: decimal.NewFromInt(10000),
		ShiftHours:  decimal.NewFromInt(8),
		DaysInMonth: 30,
		Components: []payroll.SalaryComponent{
			{Name: "HRA", ComponentType: payroll.ComponentAllowance, EmployeePercentage: decimal.NewFromInt(10)},
			{Name: "PF", ComponentType: payroll.ComponentDeduction, EmployeePercentage: decimal.NewFromInt(5)},
		},
	}

	row := computeRow(in)

	// 10000 +10% = 11000, then -5% of 11000 = 10450.
	assert.Equal(t, "10450.00", row.GrossSalary.StringFixed(2))
	require.Len(t, row.Components, 2)
	assert.Equal(t, "1000.00", row.Components[0].Amount)
	assert.Equal(t, "550.00", row.Components[1].Amount)
	assert.Equal(t, "10450.00", row.NetSalary.StringFixed(2))
}

func TestComputeRowUnpaidLeave(t *testing.T) {
	in := baseInputs()
	in.LeaveDays = 15
	in.LeaveSummaries = []leave.LeaveSummary{
		{TotalEntitlement: decimal.NewFromInt(10), CarryForward: decimal.NewFromInt(2)},
	}

	row := computeRow(in)

	// 15 taken against 12 available leaves 3 unpaid days.
	assert.Equal(t, "3.00", row.UnpaidLeave.StringFixed(2))
	assert.Equal(t, "3000.00", row.LeaveDeduction.StringFixed(2))
	assert.Equal(t, 15, row.LeaveAdjustment.LeaveTaken)
	assert.Equal(t, "0.00", row.LeaveAdjustment.LeavePending)
}

func TestComputeRowLeavePending(t *testing.T) {
	in := baseInputs()
	in.LeaveDays = 4
	in.LeaveSummaries = []leave.LeaveSummary{
		{TotalEntitlement: decimal.NewFromInt(10), CarryForward: decimal.Zero},
	}

	row := computeRow(in)

	assert.Equal(t, "0.00", row.UnpaidLeave.StringFixed(2))
	assert.Equal(t, "0.00", row.LeaveDeduction.StringFixed(2))
	assert.Equal(t, "6.00", row.LeaveAdjustment.LeavePending)
}

func TestComputeRowOvertimeAndLate(t *testing.T) {
	in := baseInputs()
	in.OvertimeHours = decimal.NewFromInt(4)
	in.LateHours = decimal.NewFromInt(2)

	row := computeRow(in)

	// Per hour rate: 30000/30/8 = 125.
	assert.Equal(t, "500.00", row.OvertimeAddition.StringFixed(2))
	assert.Equal(t, "250.00", row.LateDeduction.StringFixed(2))
	assert.Equal(t, "30250.00", row.NetSalary.StringFixed(2))
}

func TestComputeRowAdvanceSubtracted(t *testing.T) {
	in := baseInputs()
	in.Advance = decimal.NewFromInt(5000)

	row := computeRow(in)

	assert.Equal(t, "25000.00", row.NetSalary.StringFixed(2))
}

func TestShiftHoursPerDay(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"09:00", "17:30", "8.5"},
		{"9:00 AM", "6:00 PM", "9"},
		{"22:00", "06:00", "8"},
		{"", "", "8"},
		{"bogus", "17:00", "8"},
		{"09:00", "09:00", "8"},
	}
	for _, c := range cases {
		got := shiftHoursPerDay(c.start, c.end)
		assert.Equal(t, c.want, got.String(), "shiftHoursPerDay(%q, %q)", c.start, c.end)
	}
}
