package leave

import "context"

type LedgerService interface {
	UpsertLeave(ctx context.Context, req UpsertLeaveRequest) (created bool, err error)
	TakeLeave(ctx context.Context, req TakeLeaveRequest) error
	LeaveSummary(ctx context.Context, employeeID int64) ([]LeaveSummaryResponse, error)
	SaveLeaveSummary(ctx context.Context, req UpsertLeaveRequest) error
	UpsertWorkHours(ctx context.Context, req UpsertWorkHoursRequest) (created bool, err error)
	IncrementWorkedHours(ctx context.Context, req IncrementWorkedHoursRequest) (IncrementWorkedHoursResponse, error)
	WorkSummary(ctx context.Context, employeeID int64) ([]WorkSummaryResponse, error)
	SaveWorkSummary(ctx context.Context, req SaveWorkSummaryRequest) error
	AllLedgers(ctx context.Context) ([]EmployeeLedger, error)
}
