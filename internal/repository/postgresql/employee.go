package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			full_name, email, phone, dob, gender, blood_group,
			join_date, department, designation, experience, basic_salary,
			work_type, address, city, state, zip,
			emergency_contact_name, emergency_contact_number,
			annual_leave_entitlement, required_work_hours_daily, required_work_hours_monthly
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		) RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		e.FullName, e.Email, e.Phone, e.DOB, e.Gender, e.BloodGroup,
		e.JoinDate, e.Department, e.Designation, e.Experience, e.BasicSalary,
		e.WorkType, e.Address, e.City, e.State, e.Zip,
		e.EmergencyContactName, e.EmergencyContactNumber,
		e.AnnualLeaveEntitlement, e.RequiredWorkHoursDaily, e.RequiredWorkHoursMonthly,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	return id, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, phone, dob, gender, blood_group,
			   join_date, department, designation, experience, basic_salary,
			   work_type, address, city, state, zip,
			   emergency_contact_name, emergency_contact_number,
			   annual_leave_entitlement, required_work_hours_daily, required_work_hours_monthly
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FullName, &e.Email, &e.Phone, &e.DOB, &e.Gender, &e.BloodGroup,
		&e.JoinDate, &e.Department, &e.Designation, &e.Experience, &e.BasicSalary,
		&e.WorkType, &e.Address, &e.City, &e.State, &e.Zip,
		&e.EmergencyContactName, &e.EmergencyContactNumber,
		&e.AnnualLeaveEntitlement, &e.RequiredWorkHoursDaily, &e.RequiredWorkHoursMonthly,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, department, basic_salary,
			   annual_leave_entitlement, required_work_hours_daily, required_work_hours_monthly
		FROM employees
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.FullName, &e.Department, &e.BasicSalary,
			&e.AnnualLeaveEntitlement, &e.RequiredWorkHoursDaily, &e.RequiredWorkHoursMonthly,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// GetRequiredDailyHours implements employee.EmployeeRepository.
func (r *employeeRepository) GetRequiredDailyHours(ctx context.Context, id int64) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var hours float64
	err := q.QueryRow(ctx,
		`SELECT COALESCE(required_work_hours_daily, 0) FROM employees WHERE id = $1`,
		id,
	).Scan(&hours)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, employee.ErrEmployeeNotFound
		}
		return 0, fmt.Errorf("failed to get required daily hours: %w", err)
	}

	return hours, nil
}

// ListWithTodayStatus implements employee.EmployeeRepository.
func (r *employeeRepository) ListWithTodayStatus(ctx context.Context) ([]employee.ListItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, COALESCE(e.department, ''),
			   COALESCE(a.status, 'Not Marked') AS status
		FROM employees e
		LEFT JOIN LATERAL (
			SELECT status
			FROM attendance
			WHERE employee_id = e.id AND date = CURRENT_DATE
			LIMIT 1
		) a ON TRUE
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with status: %w", err)
	}
	defer rows.Close()

	var items []employee.ListItem
	for rows.Next() {
		var item employee.ListItem
		if err := rows.Scan(&item.ID, &item.FullName, &item.Department, &item.Status); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// AttendanceCounts implements employee.EmployeeRepository.
func (r *employeeRepository) AttendanceCounts(ctx context.Context, id int64) (employee.AttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Present'),
			COUNT(*) FILTER (WHERE status = 'Absent'),
			COUNT(*) FILTER (WHERE status = 'Leave'),
			COUNT(*)
		FROM attendance
		WHERE employee_id = $1
	`

	var s employee.AttendanceSummary
	err := q.QueryRow(ctx, query, id).Scan(&s.PresentDays, &s.AbsentDays, &s.LeaveDays, &s.TotalDays)
	if err != nil {
		return employee.AttendanceSummary{}, fmt.Errorf("failed to aggregate attendance counts: %w", err)
	}

	return s, nil
}

// ExtraHourRecords implements employee.EmployeeRepository.
func (r *employeeRepository) ExtraHourRecords(ctx context.Context, id int64) ([]employee.ExtraHoursItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT TO_CHAR(date, 'YYYY-MM-DD'), status,
			   EXTRACT(EPOCH FROM (CAST(out_time AS TIME) - CAST(in_time AS TIME))) / 3600
		FROM attendance
		WHERE employee_id = $1
		  AND in_time IS NOT NULL
		  AND out_time IS NOT NULL
		  AND status IN ('Overtime', 'Half Day')
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra hour records: %w", err)
	}
	defer rows.Close()

	var items []employee.ExtraHoursItem
	for rows.Next() {
		var item employee.ExtraHoursItem
		var hours float64
		if err := rows.Scan(&item.Date, &item.Type, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan extra hour record: %w", err)
		}
		item.Hours = fmt.Sprintf("%.1f", hours)
		items = append(items, item)
	}

	return items, rows.Err()
}
