package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the flat approval state shared by employee requests and salary
// advances. Any status may transition to any other; approval has no side
// effect on the leave ledger.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Kind tags the two row shapes unioned into the approval feed.
const (
	KindAdvance = "Advance"
)

type EmployeeRequest struct {
	ID            int64
	EmployeeID    int64
	RequestType   string
	Reason        *string
	Date          *time.Time
	Status        string
	FromDate      *time.Time
	ToDate        *time.Time
	RequestedDate *time.Time
	LeaveType     *string
	HowManyDays   *decimal.Decimal
}

// ApprovalItem is the tagged union row for the combined feed: a generic
// employee request or a salary advance, distinguished by RequestType.
type ApprovalItem struct {
	ID            int64            `json:"id"`
	EmployeeID    int64            `json:"employee_id"`
	EmployeeName  string           `json:"employee_name"`
	RequestType   string           `json:"request_type"`
	Reason        string           `json:"reason"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMode   *string          `json:"payment_mode"`
	Date          *time.Time       `json:"date"`
	Status        string           `json:"status"`
	FromDate      *time.Time       `json:"from_date"`
	ToDate        *time.Time       `json:"to_date"`
	RequestedDate *time.Time       `json:"requested_date"`
	LeaveType     *string          `json:"leave_type"`
	HowManyDays   *decimal.Decimal `json:"how_many_days"`
}
