package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
)

// ContentType is the MIME type for .xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PayrollFilename names the exported workbook after the report period.
func PayrollFilename(year, month int) string {
	return fmt.Sprintf("attendance_%d_%d.xlsx", year, month)
}

var baseHeaders = []string{
	"Employee ID", "Name", "Department", "Basic Salary", "Shift Hrs/Day",
	"Present", "Absent", "Leave", "Overtime Hrs", "Overtime Addition",
	"Late Hrs", "Late Deduction", "Total Advance", "Absent Deduction",
	"Leave Deduction", "Total Deduction", "Gross Salary", "Net Salary",
	"Paid", "Paid Date",
}

var leaveHeaders = []string{
	"Entitlement", "Carry Forward", "Leave Taken", "Unpaid Leave", "Leave Pending",
}

// WritePayrollReport lays the report out as one worksheet: the fixed base
// columns, then a percentage/amount column pair per active component, then
// the leave adjustment columns.
func WritePayrollReport(w io.Writer, report payroll.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%d-%02d", report.Year, report.Month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := make([]string, 0, len(baseHeaders)+2*len(report.Components)+len(leaveHeaders))
	headers = append(headers, baseHeaders...)
	for _, c := range report.Components {
		headers = append(headers, c.Name+" %", c.Name+" Amt")
	}
	headers = append(headers, leaveHeaders...)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for rowIdx, row := range report.Rows {
		values := make([]interface{}, 0, len(headers))
		values = append(values,
			row.EmployeeID, row.FullName, row.Department, row.BasicSalary,
			row.ShiftHoursPerDay, row.TotalPresent, row.TotalAbsent, row.TotalLeave,
			row.TotalOvertimeHours, row.OvertimeAddition, row.TotalLateHours,
			row.LateDeduction, row.TotalAdvance, row.AbsentDeduction,
			row.LeaveDeduction, row.TotalDeduction, row.GrossSalary, row.NetSalary,
			row.Paid,
		)
		if row.PaidDate != nil {
			values = append(values, row.PaidDate.Format("2006-01-02"))
		} else {
			values = append(values, "")
		}

		breakupByName := make(map[string]payroll.ComponentBreakup, len(row.ComponentsBreakup))
		for _, b := range row.ComponentsBreakup {
			breakupByName[b.Name] = b
		}
		for _, c := range report.Components {
			b := breakupByName[c.Name]
			values = append(values, b.Percentage, b.Amount)
		}

		if len(row.LeaveAdjustmentDetails) > 0 {
			la := row.LeaveAdjustmentDetails[0]
			values = append(values, la.TotalEntitlement, la.CarryForward, la.LeaveTaken, la.UnpaidLeave, la.LeavePending)
		} else {
			values = append(values, 0, 0, 0, 0, 0)
		}

		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
