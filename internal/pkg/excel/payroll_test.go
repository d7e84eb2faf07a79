package excel

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
)

func TestPayrollFilename(t *testing.T) {
	assert.Equal(t, "attendance_2026_3.xlsx", PayrollFilename(2026, 3))
}

func TestWritePayrollReport(t *testing.T) {
	report := payroll.Report{
		Year:  2026,
		Month: 8,
		Components: []payroll.SalaryComponent{
			{Name: "HRA", ComponentType: payroll.ComponentAllowance, EmployeePercentage: decimal.NewFromInt(10)},
		},
		Rows: []payroll.ReportRow{
			{
				EmployeeID:         7,
				FullName:           "Maya Iyer",
				Department:         "Engineering",
				BasicSalary:        "30000.00",
				ShiftHoursPerDay:   "8.00",
				TotalPresent:       20,
				TotalAbsent:        1,
				TotalLeave:         2,
				TotalOvertimeHours: "4.00",
				OvertimeAddition:   "500.00",
				TotalLateHours:     "0.00",
				LateDeduction:      "0.00",
				TotalAdvance:       "0.00",
				AbsentDeduction:    "1000.00",
				LeaveDeduction:     "0.00",
				TotalDeduction:     "1000.00",
				GrossSalary:        "33000.00",
				NetSalary:          "32500.00",
				ComponentsBreakup: []payroll.ComponentBreakup{
					{Name: "HRA", Type: payroll.ComponentAllowance, Percentage: "10.00", Amount: "3000.00"},
				},
				LeaveAdjustmentDetails: []payroll.LeaveAdjustment{
					{TotalEntitlement: "10.00", CarryForward: "0.00", LeaveTaken: 2, UnpaidLeave: "0.00", LeavePending: "8.00"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePayrollReport(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "2026-08"
	assert.Contains(t, f.GetSheetList(), sheet)

	first, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee ID", first)

	// Component column pair sits after the 20 base columns.
	hraPct, err := f.GetCellValue(sheet, "U1")
	require.NoError(t, err)
	assert.Equal(t, "HRA %", hraPct)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Maya Iyer", name)

	net, err := f.GetCellValue(sheet, "R2")
	require.NoError(t, err)
	assert.Equal(t, "32500.00", net)

	hraAmt, err := f.GetCellValue(sheet, "V2")
	require.NoError(t, err)
	assert.Equal(t, "3000.00", hraAmt)

	pending, err := f.GetCellValue(sheet, "AA2")
	require.NoError(t, err)
	assert.Equal(t, "8.00", pending)
}
