package dashboard

// Stats is the HR dashboard roll-up for today or the current month.
type Stats struct {
	TotalEmployees int    `json:"totalEmployees"`
	Present        int    `json:"present"`
	Absent         int    `json:"absent"`
	Leave          int    `json:"leave"`
	Late           int    `json:"late"`
	Overtime       string `json:"overtime"`
	Advance        string `json:"advance"`
}

// OwnerStats is the owner dashboard: headcount, today's attendance and the
// current month's salary, advance and overtime totals.
type OwnerStats struct {
	TotalEmployees         int              `json:"totalEmployees"`
	PresentToday           int              `json:"presentToday"`
	AbsentToday            int              `json:"absentToday"`
	LeaveToday             int              `json:"leaveToday"`
	TotalSalaryThisMonth   string           `json:"totalSalaryThisMonth"`
	TotalAdvanceThisMonth  string           `json:"totalAdvanceThisMonth"`
	TotalOvertimeThisMonth string           `json:"totalOvertimeThisMonth"`
	TotalLateToday         int              `json:"totalLateToday"`
	RecentEmployees        []RecentEmployee `json:"recentEmployees"`
	RecentAdvances         []RecentAdvance  `json:"recentAdvances"`
}

type RecentEmployee struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	JoinDate   string `json:"join_date"`
}

type RecentAdvance struct {
	EmployeeName string `json:"employee_name"`
	Amount       string `json:"amount"`
	PaymentMode  string `json:"payment_mode"`
	Date         string `json:"date"`
}
