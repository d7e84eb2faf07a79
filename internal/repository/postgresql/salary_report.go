package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) payroll.ReportRepository {
	return &reportRepository{db: db}
}

// Upsert implements payroll.ReportRepository. One snapshot per
// (employee, year, month); a re-save overwrites the whole breakdown.
func (r *reportRepository) Upsert(ctx context.Context, rep payroll.SalaryReport) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO employee_salary_reports (
			employee_id, year, month,
			basic_salary, gross_salary, net_salary,
			total_allowances, total_deductions,
			absent_deduction, leave_deduction, late_deduction,
			overtime_addition, total_advance, paid, paid_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET basic_salary = EXCLUDED.basic_salary,
					  gross_salary = EXCLUDED.gross_salary,
					  net_salary = EXCLUDED.net_salary,
					  total_allowances = EXCLUDED.total_allowances,
					  total_deductions = EXCLUDED.total_deductions,
					  absent_deduction = EXCLUDED.absent_deduction,
					  leave_deduction = EXCLUDED.leave_deduction,
					  late_deduction = EXCLUDED.late_deduction,
					  overtime_addition = EXCLUDED.overtime_addition,
					  total_advance = EXCLUDED.total_advance,
					  paid = EXCLUDED.paid,
					  paid_date = EXCLUDED.paid_date
	`,
		rep.EmployeeID, rep.Year, rep.Month,
		rep.BasicSalary, rep.GrossSalary, rep.NetSalary,
		rep.TotalAllowances, rep.TotalDeductions,
		rep.AbsentDeduction, rep.LeaveDeduction, rep.LateDeduction,
		rep.OvertimeAddition, rep.TotalAdvance, rep.Paid, rep.PaidDate,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert salary report: %w", err)
	}

	return nil
}

// PaidStatuses implements payroll.ReportRepository.
func (r *reportRepository) PaidStatuses(ctx context.Context, year, month int) (map[int64]payroll.PaidStatus, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id, paid, paid_date
		FROM employee_salary_reports
		WHERE year = $1 AND month = $2
	`, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid statuses: %w", err)
	}
	defer rows.Close()

	statuses := make(map[int64]payroll.PaidStatus)
	for rows.Next() {
		var employeeID int64
		var st payroll.PaidStatus
		if err := rows.Scan(&employeeID, &st.Paid, &st.PaidDate); err != nil {
			return nil, fmt.Errorf("failed to scan paid status: %w", err)
		}
		statuses[employeeID] = st
	}

	return statuses, rows.Err()
}
