package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)
	Check(ctx context.Context, employeeID int64, date string) (*CheckResponse, error)
	GridSummary(ctx context.Context, year, month int) ([]GridRow, error)
	Details(ctx context.Context, employeeID int64, startDate, endDate string) ([]DetailRow, error)
}
