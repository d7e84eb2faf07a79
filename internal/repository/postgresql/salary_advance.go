package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) payroll.AdvanceRepository {
	return &advanceRepository{db: db}
}

// Create implements payroll.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, adv payroll.SalaryAdvance) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_advances (employee_name, date, amount, payment_mode, remarks, status, employee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		adv.EmployeeName, adv.Date, adv.Amount, adv.PaymentMode, adv.Remarks, adv.Status, adv.EmployeeID,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create salary advance: %w", err)
	}

	return id, nil
}

// SumInRange implements payroll.AdvanceRepository.
func (r *advanceRepository) SumInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id, COALESCE(SUM(amount), 0)
		FROM salary_advances
		WHERE date BETWEEN $1 AND $2
		GROUP BY employee_id
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum advances: %w", err)
	}
	defer rows.Close()

	sums := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var employeeID int64
		var total decimal.Decimal
		if err := rows.Scan(&employeeID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan advance sum: %w", err)
		}
		sums[employeeID] = total
	}

	return sums, rows.Err()
}

// ByEmployee implements payroll.AdvanceRepository.
func (r *advanceRepository) ByEmployee(ctx context.Context, employeeID int64) ([]payroll.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, COALESCE(employee_name, ''), date, amount, payment_mode, remarks, status
		FROM salary_advances
		WHERE employee_id = $1
		ORDER BY date DESC
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []payroll.SalaryAdvance
	for rows.Next() {
		var adv payroll.SalaryAdvance
		if err := rows.Scan(&adv.ID, &adv.EmployeeID, &adv.EmployeeName, &adv.Date, &adv.Amount, &adv.PaymentMode, &adv.Remarks, &adv.Status); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, adv)
	}

	return advances, rows.Err()
}

// UpdateStatus implements payroll.AdvanceRepository.
func (r *advanceRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE salary_advances SET status = $1 WHERE id = $2`, status, id); err != nil {
		return fmt.Errorf("failed to update advance status: %w", err)
	}

	return nil
}

// ListByStatus implements payroll.AdvanceRepository.
func (r *advanceRepository) ListByStatus(ctx context.Context, status *string) ([]payroll.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, e.full_name, sa.date, sa.amount, sa.payment_mode, sa.remarks, sa.status
		FROM salary_advances sa
		JOIN employees e ON e.id = sa.employee_id
	`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE sa.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY sa.date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances by status: %w", err)
	}
	defer rows.Close()

	var advances []payroll.SalaryAdvance
	for rows.Next() {
		var adv payroll.SalaryAdvance
		if err := rows.Scan(&adv.ID, &adv.EmployeeID, &adv.EmployeeName, &adv.Date, &adv.Amount, &adv.PaymentMode, &adv.Remarks, &adv.Status); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, adv)
	}

	return advances, rows.Err()
}
