package leave

import (
	"context"

	"github.com/shopspring/decimal"
)

type LeaveSummaryRepository interface {
	// Upsert writes entitlement and carry-forward for the natural key
	// (employee, leave_type, year) atomically. Returns true when a new row
	// was inserted.
	Upsert(ctx context.Context, s LeaveSummary) (bool, error)

	// AddTaken increments leave_taken for (employee, year).
	// Note: deliberately not scoped by leave_type; see DESIGN.md.
	AddTaken(ctx context.Context, employeeID int64, year int, days decimal.Decimal) error

	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveSummary, error)

	// ListByYear returns all rows for a year, grouped by employee, for the
	// payroll aggregator.
	ListByYear(ctx context.Context, year int) (map[int64][]LeaveSummary, error)
}

type WorkSummaryRepository interface {
	// Upsert writes required and worked hours for (employee, year, month).
	// Returns true when a new row was inserted.
	Upsert(ctx context.Context, s WorkSummary) (bool, error)

	// AddWorkedHours adds hours to the monthly total, creating the row when
	// absent.
	AddWorkedHours(ctx context.Context, employeeID int64, year, month int, hours decimal.Decimal) error

	// SetRequiredHours writes required hours only, creating the row with
	// zero worked hours when absent.
	SetRequiredHours(ctx context.Context, employeeID int64, year, month int, hours decimal.Decimal) error

	ListByEmployee(ctx context.Context, employeeID int64) ([]WorkSummary, error)
}
