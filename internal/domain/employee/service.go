package employee

import "context"

type EmployeeService interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (RegisterEmployeeResponse, error)
	List(ctx context.Context) ([]ListItem, error)
	Detail(ctx context.Context, id int64) (DetailResponse, error)
}
