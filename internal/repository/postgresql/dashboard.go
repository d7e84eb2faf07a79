package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/attendly/hrops-backend/internal/domain/dashboard"
	"github.com/attendly/hrops-backend/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// Stats implements dashboard.DashboardRepository.
func (r *dashboardRepository) Stats(ctx context.Context, period string) (dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	dateCond := `a.date = CURRENT_DATE`
	advCond := `date = CURRENT_DATE`
	otCond := `date = CURRENT_DATE`
	if period == dashboard.PeriodMonthly {
		dateCond = `EXTRACT(YEAR FROM a.date) = EXTRACT(YEAR FROM CURRENT_DATE)
			AND EXTRACT(MONTH FROM a.date) = EXTRACT(MONTH FROM CURRENT_DATE)`
		advCond = `EXTRACT(YEAR FROM date) = EXTRACT(YEAR FROM CURRENT_DATE)
			AND EXTRACT(MONTH FROM date) = EXTRACT(MONTH FROM CURRENT_DATE)`
		otCond = advCond
	}

	var stats dashboard.Stats

	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&stats.TotalEmployees)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE a.status IN ('Present', 'Late', 'Half Day', 'Overtime')),
			COUNT(*) FILTER (WHERE a.status = 'Absent'),
			COUNT(*) FILTER (WHERE a.status = 'Leave'),
			COUNT(*) FILTER (WHERE a.status = 'Late')
		FROM attendance a
		WHERE %s
	`, dateCond)

	err = q.QueryRow(ctx, query).Scan(&stats.Present, &stats.Absent, &stats.Leave, &stats.Late)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to aggregate attendance stats: %w", err)
	}

	var overtime decimal.Decimal
	err = q.QueryRow(ctx, fmt.Sprintf(
		`SELECT COALESCE(SUM(extra_hours), 0) FROM employee_overtime WHERE %s`, otCond,
	)).Scan(&overtime)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to sum overtime: %w", err)
	}

	var advance decimal.Decimal
	err = q.QueryRow(ctx, fmt.Sprintf(
		`SELECT COALESCE(SUM(amount), 0) FROM salary_advances WHERE %s`, advCond,
	)).Scan(&advance)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to sum advances: %w", err)
	}

	stats.Overtime = overtime.StringFixed(2)
	stats.Advance = advance.StringFixed(2)

	return stats, nil
}

// OwnerStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) OwnerStats(ctx context.Context) (dashboard.OwnerStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats dashboard.OwnerStats

	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&stats.TotalEmployees)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to count employees: %w", err)
	}

	err = q.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('Present', 'Late', 'Half Day', 'Overtime')),
			COUNT(*) FILTER (WHERE status = 'Absent'),
			COUNT(*) FILTER (WHERE status = 'Leave'),
			COUNT(*) FILTER (WHERE status = 'Late')
		FROM attendance
		WHERE date = CURRENT_DATE
	`).Scan(&stats.PresentToday, &stats.AbsentToday, &stats.LeaveToday, &stats.TotalLateToday)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to aggregate today's attendance: %w", err)
	}

	var salary decimal.Decimal
	err = q.QueryRow(ctx, `SELECT COALESCE(SUM(basic_salary), 0) FROM employees`).Scan(&salary)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to sum salaries: %w", err)
	}

	var advance decimal.Decimal
	err = q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM salary_advances
		WHERE EXTRACT(YEAR FROM date) = EXTRACT(YEAR FROM CURRENT_DATE)
		  AND EXTRACT(MONTH FROM date) = EXTRACT(MONTH FROM CURRENT_DATE)
	`).Scan(&advance)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to sum this month's advances: %w", err)
	}

	var overtime decimal.Decimal
	err = q.QueryRow(ctx, `
		SELECT COALESCE(SUM(extra_hours), 0) FROM employee_overtime
		WHERE EXTRACT(YEAR FROM date) = EXTRACT(YEAR FROM CURRENT_DATE)
		  AND EXTRACT(MONTH FROM date) = EXTRACT(MONTH FROM CURRENT_DATE)
	`).Scan(&overtime)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to sum this month's overtime: %w", err)
	}

	stats.TotalSalaryThisMonth = salary.StringFixed(2)
	stats.TotalAdvanceThisMonth = advance.StringFixed(2)
	stats.TotalOvertimeThisMonth = overtime.StringFixed(2)

	rows, err := q.Query(ctx, `
		SELECT id, full_name, COALESCE(department, ''), COALESCE(TO_CHAR(join_date, 'YYYY-MM-DD'), '')
		FROM employees
		ORDER BY id DESC
		LIMIT 5
	`)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to list recent employees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var re dashboard.RecentEmployee
		if err := rows.Scan(&re.ID, &re.FullName, &re.Department, &re.JoinDate); err != nil {
			return dashboard.OwnerStats{}, fmt.Errorf("failed to scan recent employee: %w", err)
		}
		stats.RecentEmployees = append(stats.RecentEmployees, re)
	}
	if err := rows.Err(); err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to read recent employees: %w", err)
	}

	advRows, err := q.Query(ctx, `
		SELECT e.full_name, a.amount, COALESCE(a.payment_mode, ''), TO_CHAR(a.date, 'YYYY-MM-DD')
		FROM salary_advances a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC
		LIMIT 5
	`)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to list recent advances: %w", err)
	}
	defer advRows.Close()

	for advRows.Next() {
		var ra dashboard.RecentAdvance
		var amount decimal.Decimal
		if err := advRows.Scan(&ra.EmployeeName, &amount, &ra.PaymentMode, &ra.Date); err != nil {
			return dashboard.OwnerStats{}, fmt.Errorf("failed to scan recent advance: %w", err)
		}
		ra.Amount = amount.StringFixed(2)
		stats.RecentAdvances = append(stats.RecentAdvances, ra)
	}

	return stats, advRows.Err()
}
