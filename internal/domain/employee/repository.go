package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (int64, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// ListWithTodayStatus returns the directory rows with each employee's
	// attendance status for the current date.
	ListWithTodayStatus(ctx context.Context) ([]ListItem, error)
	GetRequiredDailyHours(ctx context.Context, id int64) (float64, error)
	// AttendanceCounts rolls up the employee's attendance history.
	AttendanceCounts(ctx context.Context, id int64) (AttendanceSummary, error)
	// ExtraHourRecords lists closed Overtime and Half Day attendance days
	// with the hour span between in and out time.
	ExtraHourRecords(ctx context.Context, id int64) ([]ExtraHoursItem, error)
}
