package shift

import "context"

type ShiftService interface {
	Add(ctx context.Context, req AddShiftRequest) error
	Update(ctx context.Context, id int64, req UpdateShiftRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]ShiftResponse, error)
	Check(ctx context.Context, employeeID int64) (*ShiftResponse, error)
}
