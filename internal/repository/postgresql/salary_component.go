package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/pkg/database"
)

type componentRepository struct {
	db *database.DB
}

func NewComponentRepository(db *database.DB) payroll.ComponentRepository {
	return &componentRepository{db: db}
}

const componentColumns = `id, name, component_type, employee_percentage, employer_percentage, remarks, active`

// List implements payroll.ComponentRepository.
func (r *componentRepository) List(ctx context.Context) ([]payroll.SalaryComponent, error) {
	return r.list(ctx, `SELECT `+componentColumns+` FROM salary_components ORDER BY name`)
}

// ListActive implements payroll.ComponentRepository. Order matters: the
// aggregator compounds percentages in this order.
func (r *componentRepository) ListActive(ctx context.Context) ([]payroll.SalaryComponent, error) {
	return r.list(ctx, `SELECT `+componentColumns+` FROM salary_components WHERE active = true ORDER BY id`)
}

func (r *componentRepository) list(ctx context.Context, query string) ([]payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		var c payroll.SalaryComponent
		if err := rows.Scan(&c.ID, &c.Name, &c.ComponentType, &c.EmployeePercentage, &c.EmployerPercentage, &c.Remarks, &c.Active); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

// Upsert implements payroll.ComponentRepository. Components are keyed by
// case-insensitive name.
func (r *componentRepository) Upsert(ctx context.Context, c payroll.SalaryComponent) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO salary_components (name, component_type, employee_percentage, employer_percentage, remarks, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (LOWER(name))
		DO UPDATE SET component_type = EXCLUDED.component_type,
					  employee_percentage = EXCLUDED.employee_percentage,
					  employer_percentage = EXCLUDED.employer_percentage,
					  remarks = EXCLUDED.remarks,
					  active = EXCLUDED.active,
					  updated_at = now()
	`, c.Name, c.ComponentType, c.EmployeePercentage, c.EmployerPercentage, c.Remarks, c.Active)

	if err != nil {
		return fmt.Errorf("failed to upsert salary component: %w", err)
	}

	return nil
}

// Update implements payroll.ComponentRepository.
func (r *componentRepository) Update(ctx context.Context, id int64, c payroll.SalaryComponent) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE salary_components
		SET name = $1,
			component_type = $2,
			employee_percentage = $3,
			employer_percentage = $4,
			remarks = $5,
			active = $6,
			updated_at = now()
		WHERE id = $7
	`, c.Name, c.ComponentType, c.EmployeePercentage, c.EmployerPercentage, c.Remarks, c.Active, id)

	if err != nil {
		return fmt.Errorf("failed to update salary component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrComponentNotFound
	}

	return nil
}

// Delete implements payroll.ComponentRepository.
func (r *componentRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM salary_components WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete salary component: %w", err)
	}

	return nil
}
