package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type hoursLedgerRepository struct {
	db *database.DB
}

func NewHoursLedgerRepository(db *database.DB) attendance.HoursLedgerRepository {
	return &hoursLedgerRepository{db: db}
}

// CreateOvertime implements attendance.HoursLedgerRepository.
func (r *hoursLedgerRepository) CreateOvertime(ctx context.Context, entry attendance.OvertimeEntry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO employee_overtime (employee_id, date, extra_hours)
		VALUES ($1, $2, $3)
	`, entry.EmployeeID, entry.Date, entry.ExtraHours)

	if err != nil {
		return fmt.Errorf("failed to create overtime entry: %w", err)
	}

	return nil
}

// CreateShortfall implements attendance.HoursLedgerRepository.
func (r *hoursLedgerRepository) CreateShortfall(ctx context.Context, entry attendance.ShortfallEntry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO employee_less_hours (employee_id, date, required_hours, worked_hours, less_hours)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.EmployeeID, entry.Date, entry.RequiredHours, entry.WorkedHours, entry.LessHours)

	if err != nil {
		return fmt.Errorf("failed to create shortfall entry: %w", err)
	}

	return nil
}

// OvertimeByEmployeeInRange implements attendance.HoursLedgerRepository.
func (r *hoursLedgerRepository) OvertimeByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.OvertimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, date, extra_hours
		FROM employee_overtime
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.OvertimeEntry
	for rows.Next() {
		var e attendance.OvertimeEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.ExtraHours); err != nil {
			return nil, fmt.Errorf("failed to scan overtime entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ShortfallByEmployeeInRange implements attendance.HoursLedgerRepository.
func (r *hoursLedgerRepository) ShortfallByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.ShortfallEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, date, required_hours, worked_hours, less_hours
		FROM employee_less_hours
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortfall entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.ShortfallEntry
	for rows.Next() {
		var e attendance.ShortfallEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.RequiredHours, &e.WorkedHours, &e.LessHours); err != nil {
			return nil, fmt.Errorf("failed to scan shortfall entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// SumOvertimeInRange implements attendance.HoursLedgerRepository.
func (r *hoursLedgerRepository) SumOvertimeInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error) {
	return r.sumInRange(ctx, `
		SELECT employee_id, COALESCE(SUM(extra_hours), 0)
		FROM employee_overtime
		WHERE date BETWEEN $1 AND $2
		GROUP BY employee_id
	`, start, end)
}

// SumShortfallInRange implements attendance.HoursLedgerRepository.
func (r *hoursLedgerRepository) SumShortfallInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error) {
	return r.sumInRange(ctx, `
		SELECT employee_id, COALESCE(SUM(less_hours), 0)
		FROM employee_less_hours
		WHERE date BETWEEN $1 AND $2
		GROUP BY employee_id
	`, start, end)
}

func (r *hoursLedgerRepository) sumInRange(ctx context.Context, query string, start, end time.Time) (map[int64]decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum hours in range: %w", err)
	}
	defer rows.Close()

	sums := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var employeeID int64
		var total decimal.Decimal
		if err := rows.Scan(&employeeID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan hours sum: %w", err)
		}
		sums[employeeID] = total
	}

	return sums, rows.Err()
}
