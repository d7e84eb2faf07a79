package request

import "context"

type TrackerService interface {
	Create(ctx context.Context, req CreateRequest) (int64, error)
	// Feed unions generic requests and salary advances, newest first.
	// status == nil means no filter.
	Feed(ctx context.Context, status *string) ([]ApprovalItem, error)
	UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) error
}
