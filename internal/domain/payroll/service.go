package payroll

import "context"

type PayrollService interface {
	// ComputeReport derives per-employee payroll rows for the inclusive
	// range. Precision of the paid flag merge follows the month of startDate.
	ComputeReport(ctx context.Context, startDate, endDate string) (Report, error)
	SaveReport(ctx context.Context, req SaveReportRequest) error

	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (int64, error)

	ListComponents(ctx context.Context) ([]ComponentResponse, error)
	SaveComponents(ctx context.Context, req SaveComponentsRequest) ([]ComponentError, error)
	UpdateComponent(ctx context.Context, id int64, req ComponentInput) error
	DeleteComponent(ctx context.Context, id int64) error
}
