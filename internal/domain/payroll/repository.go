package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ComponentRepository interface {
	List(ctx context.Context) ([]SalaryComponent, error)
	ListActive(ctx context.Context) ([]SalaryComponent, error)
	// Upsert inserts or updates by case-insensitive name match.
	Upsert(ctx context.Context, c SalaryComponent) error
	Update(ctx context.Context, id int64, c SalaryComponent) error
	Delete(ctx context.Context, id int64) error
}

type AdvanceRepository interface {
	Create(ctx context.Context, adv SalaryAdvance) (int64, error)
	// SumInRange returns total advance amount per employee over the range.
	SumInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error)
	ByEmployee(ctx context.Context, employeeID int64) ([]SalaryAdvance, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListByStatus(ctx context.Context, status *string) ([]SalaryAdvance, error)
}

type ReportRepository interface {
	// Upsert overwrites the single snapshot per (employee, year, month).
	Upsert(ctx context.Context, r SalaryReport) error
	// PaidStatuses returns the paid flags for a month keyed by employee.
	PaidStatuses(ctx context.Context, year, month int) (map[int64]PaidStatus, error)
}
