package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceRepository interface {
	// Create inserts a new record; partial records (either time absent) are allowed.
	Create(ctx context.Context, att Attendance) (int64, error)

	// GetByEmployeeAndDate enforces the one-record-per-day invariant.
	// Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	// SetOutTime closes an open record.
	SetOutTime(ctx context.Context, id int64, outTime string) error

	// ListMonth returns all records whose date falls in (year, month).
	ListMonth(ctx context.Context, year, month int) ([]Attendance, error)

	// ListRangeByEmployee returns one employee's records over an inclusive range.
	ListRangeByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]Attendance, error)

	// ListRange returns every employee's records over an inclusive range.
	ListRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// MissingForDate lists employee IDs with no attendance row on date.
	MissingForDate(ctx context.Context, date time.Time) ([]int64, error)
}

type HoursLedgerRepository interface {
	CreateOvertime(ctx context.Context, entry OvertimeEntry) error
	CreateShortfall(ctx context.Context, entry ShortfallEntry) error
	OvertimeByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]OvertimeEntry, error)
	ShortfallByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]ShortfallEntry, error)
	// Range sums, grouped by employee, for the payroll aggregator.
	SumOvertimeInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error)
	SumShortfallInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error)
}
