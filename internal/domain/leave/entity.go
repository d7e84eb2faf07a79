package leave

import "github.com/shopspring/decimal"

// LeaveSummary is the per-employee, per-type, per-year leave ledger row.
// Available leave is always computed as entitlement + carry_forward - taken;
// it is never stored.
type LeaveSummary struct {
	ID               int64
	EmployeeID       int64
	LeaveType        string
	Year             int
	TotalEntitlement decimal.Decimal
	LeaveTaken       decimal.Decimal
	CarryForward     decimal.Decimal
}

func (s LeaveSummary) Available() decimal.Decimal {
	return s.TotalEntitlement.Add(s.CarryForward).Sub(s.LeaveTaken)
}

// WorkSummary is the per-employee monthly required/worked hour ledger row.
type WorkSummary struct {
	ID            int64
	EmployeeID    int64
	Year          int
	Month         int
	RequiredHours decimal.Decimal
	WorkedHours   decimal.Decimal
}
