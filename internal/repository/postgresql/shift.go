package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/shift"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO employee_shifts (employee_id, shift_name, start_time, end_time, shift_type)
		VALUES ($1, $2, $3, $4, $5)
	`, s.EmployeeID, s.ShiftName, s.StartTime, s.EndTime, s.ShiftType)

	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	return nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, id int64, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE employee_shifts
		SET shift_name = $1, start_time = $2, end_time = $3, shift_type = $4
		WHERE id = $5
	`, s.ShiftName, s.StartTime, s.EndTime, s.ShiftType, id)

	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_shifts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT s.id, s.employee_id, e.full_name, s.shift_name, s.start_time, s.end_time, s.shift_type
		FROM employee_shifts s
		JOIN employees e ON s.employee_id = e.id
		ORDER BY s.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.EmployeeName, &s.ShiftName, &s.StartTime, &s.EndTime, &s.ShiftType); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// GetByEmployee implements shift.ShiftRepository.
func (r *shiftRepository) GetByEmployee(ctx context.Context, employeeID int64) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	var s shift.Shift
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, shift_name, start_time, end_time, shift_type
		FROM employee_shifts
		WHERE employee_id = $1
		LIMIT 1
	`, employeeID).Scan(&s.ID, &s.EmployeeID, &s.ShiftName, &s.StartTime, &s.EndTime, &s.ShiftType)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return &s, nil
}

// All implements shift.ShiftRepository.
func (r *shiftRepository) All(ctx context.Context) (map[int64]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, shift_name, start_time, end_time, shift_type
		FROM employee_shifts
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	shifts := make(map[int64]shift.Shift)
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.ShiftName, &s.StartTime, &s.EndTime, &s.ShiftType); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts[s.EmployeeID] = s
	}

	return shifts, rows.Err()
}
