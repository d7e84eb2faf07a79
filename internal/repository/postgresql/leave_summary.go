package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type leaveSummaryRepository struct {
	db *database.DB
}

func NewLeaveSummaryRepository(db *database.DB) leave.LeaveSummaryRepository {
	return &leaveSummaryRepository{db: db}
}

// Upsert implements leave.LeaveSummaryRepository. Relies on the unique
// constraint over (employee_id, leave_type, year); (xmax = 0) distinguishes
// a fresh insert from a conflict update.
func (r *leaveSummaryRepository) Upsert(ctx context.Context, s leave.LeaveSummary) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_leave_summary (employee_id, leave_type, year, total_entitlement, carry_forward)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, leave_type, year)
		DO UPDATE SET total_entitlement = EXCLUDED.total_entitlement,
					  carry_forward = EXCLUDED.carry_forward
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.LeaveType, s.Year, s.TotalEntitlement, s.CarryForward,
	).Scan(&inserted)

	if err != nil {
		return false, fmt.Errorf("failed to upsert leave summary: %w", err)
	}

	return inserted, nil
}

// AddTaken implements leave.LeaveSummaryRepository.
//
// The predicate intentionally omits leave_type: every type row for the year
// is incremented, matching long-standing observed behaviour. Do not narrow
// it without product sign-off.
func (r *leaveSummaryRepository) AddTaken(ctx context.Context, employeeID int64, year int, days decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE employee_leave_summary
		SET leave_taken = leave_taken + $1
		WHERE employee_id = $2 AND year = $3
	`, days, employeeID, year)

	if err != nil {
		return fmt.Errorf("failed to add leave taken: %w", err)
	}

	return nil
}

// ListByEmployee implements leave.LeaveSummaryRepository.
func (r *leaveSummaryRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveSummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, leave_type, year, total_entitlement, leave_taken, carry_forward
		FROM employee_leave_summary
		WHERE employee_id = $1
		ORDER BY year DESC, leave_type
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave summaries: %w", err)
	}
	defer rows.Close()

	var summaries []leave.LeaveSummary
	for rows.Next() {
		var s leave.LeaveSummary
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.LeaveType, &s.Year, &s.TotalEntitlement, &s.LeaveTaken, &s.CarryForward); err != nil {
			return nil, fmt.Errorf("failed to scan leave summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// ListByYear implements leave.LeaveSummaryRepository.
func (r *leaveSummaryRepository) ListByYear(ctx context.Context, year int) (map[int64][]leave.LeaveSummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, leave_type, year, total_entitlement, leave_taken, carry_forward
		FROM employee_leave_summary
		WHERE year = $1
	`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave summaries by year: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[int64][]leave.LeaveSummary)
	for rows.Next() {
		var s leave.LeaveSummary
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.LeaveType, &s.Year, &s.TotalEntitlement, &s.LeaveTaken, &s.CarryForward); err != nil {
			return nil, fmt.Errorf("failed to scan leave summary: %w", err)
		}
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}

	return byEmployee, rows.Err()
}
