package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	InTime       *string
	OutTime      *string
	Status       string
}

// Attendance statuses
const (
	StatusPresent  = "Present"
	StatusAbsent   = "Absent"
	StatusLeave    = "Leave"
	StatusLate     = "Late"
	StatusHalfDay  = "Half Day"
	StatusOvertime = "Overtime"
)

// OvertimeEntry records hours worked above the employee's required daily
// hours on a given date. Derived once, when the attendance record closes.
type OvertimeEntry struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	ExtraHours decimal.Decimal
}

// ShortfallEntry records hours worked below the required daily hours.
type ShortfallEntry struct {
	ID            int64
	EmployeeID    int64
	Date          time.Time
	RequiredHours decimal.Decimal
	WorkedHours   decimal.Decimal
	LessHours     decimal.Decimal
}
