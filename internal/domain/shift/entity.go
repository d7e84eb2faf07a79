package shift

type Shift struct {
	ID         int64
	EmployeeID int64
	ShiftName  string
	StartTime  string
	EndTime    string
	ShiftType  string

	// Joined for list views.
	EmployeeName string
}

const (
	TypeDay   = "Day"
	TypeNight = "Night"
)

// DefaultRequiredHours applies when an employee has no shift row.
const DefaultRequiredHours = 8.0
