package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) error
	Update(ctx context.Context, id int64, s Shift) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Shift, error)
	// GetByEmployee returns the employee's shift, or nil when none is assigned.
	GetByEmployee(ctx context.Context, employeeID int64) (*Shift, error)
	// All returns every shift keyed by employee for the payroll aggregator.
	All(ctx context.Context) (map[int64]Shift, error)
}
