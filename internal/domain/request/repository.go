package request

import "context"

type RequestRepository interface {
	Create(ctx context.Context, req EmployeeRequest) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// ListAsApprovalItems returns generic requests joined with employee
	// names, optionally filtered by status.
	ListAsApprovalItems(ctx context.Context, status *string) ([]ApprovalItem, error)
}
