package payroll

import "errors"

var (
	ErrInvalidDateRange  = errors.New("both startDate and endDate are required as YYYY-MM-DD")
	ErrComponentNotFound = errors.New("salary component not found")
)
