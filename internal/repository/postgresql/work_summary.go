package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type workSummaryRepository struct {
	db *database.DB
}

func NewWorkSummaryRepository(db *database.DB) leave.WorkSummaryRepository {
	return &workSummaryRepository{db: db}
}

// Upsert implements leave.WorkSummaryRepository. Single conditional upsert
// over the (employee_id, year, month) unique constraint; no check-then-act
// race window.
func (r *workSummaryRepository) Upsert(ctx context.Context, s leave.WorkSummary) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_work_summary (employee_id, year, month, required_hours, worked_hours)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET required_hours = EXCLUDED.required_hours,
					  worked_hours = EXCLUDED.worked_hours
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.Year, s.Month, s.RequiredHours, s.WorkedHours,
	).Scan(&inserted)

	if err != nil {
		return false, fmt.Errorf("failed to upsert work summary: %w", err)
	}

	return inserted, nil
}

// AddWorkedHours implements leave.WorkSummaryRepository.
func (r *workSummaryRepository) AddWorkedHours(ctx context.Context, employeeID int64, year, month int, hours decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO employee_work_summary (employee_id, year, month, worked_hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET worked_hours = employee_work_summary.worked_hours + EXCLUDED.worked_hours
	`, employeeID, year, month, hours)

	if err != nil {
		return fmt.Errorf("failed to add worked hours: %w", err)
	}

	return nil
}

// SetRequiredHours implements leave.WorkSummaryRepository.
func (r *workSummaryRepository) SetRequiredHours(ctx context.Context, employeeID int64, year, month int, hours decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO employee_work_summary (employee_id, year, month, required_hours, worked_hours)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (employee_id, year, month)
		DO UPDATE SET required_hours = EXCLUDED.required_hours
	`, employeeID, year, month, hours)

	if err != nil {
		return fmt.Errorf("failed to set required hours: %w", err)
	}

	return nil
}

// ListByEmployee implements leave.WorkSummaryRepository.
func (r *workSummaryRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.WorkSummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, year, month, required_hours, worked_hours
		FROM employee_work_summary
		WHERE employee_id = $1
		ORDER BY year DESC, month DESC
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work summaries: %w", err)
	}
	defer rows.Close()

	var summaries []leave.WorkSummary
	for rows.Next() {
		var s leave.WorkSummary
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Year, &s.Month, &s.RequiredHours, &s.WorkedHours); err != nil {
			return nil, fmt.Errorf("failed to scan work summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
