package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/domain/shift"
	"github.com/attendly/hrops-backend/internal/pkg/database"
	"github.com/attendly/hrops-backend/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.HoursLedgerRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	workSummaryRepo leave.WorkSummaryRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	hoursLedgerRepo attendance.HoursLedgerRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	workSummaryRepo leave.WorkSummaryRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                    db,
		AttendanceRepository:  attendanceRepo,
		HoursLedgerRepository: hoursLedgerRepo,
		EmployeeRepository:    employeeRepo,
		ShiftRepository:       shiftRepo,
		workSummaryRepo:       workSummaryRepo,
	}
}

// Mark implements attendance.AttendanceService. The first call for a day
// opens a record; the second closes it, derives worked hours and writes the
// overtime or shortfall ledger plus the monthly work summary in one
// transaction.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	if existing == nil {
		record := attendance.Attendance{
			EmployeeID:   req.EmployeeID,
			EmployeeName: req.EmployeeName,
			Date:         date,
			InTime:       req.InTime,
			OutTime:      req.OutTime,
			Status:       req.Status,
		}
		if _, err := a.AttendanceRepository.Create(ctx, record); err != nil {
			return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
		}
		return attendance.MarkAttendanceResponse{Message: "Attendance recorded", Created: true}, nil
	}

	if existing.OutTime != nil {
		return attendance.MarkAttendanceResponse{}, attendance.ErrAlreadyCompleted
	}
	if req.OutTime == nil || *req.OutTime == "" {
		return attendance.MarkAttendanceResponse{}, attendance.ErrOutTimeRequired
	}

	if existing.InTime == nil {
		return attendance.MarkAttendanceResponse{}, attendance.ErrTimeConversionFailed
	}
	in24, err := To24Hour(*existing.InTime)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, attendance.ErrTimeConversionFailed
	}
	out24, err := To24Hour(*req.OutTime)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, attendance.ErrTimeConversionFailed
	}

	worked, err := WorkedHoursBetween(in24, out24)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, attendance.ErrTimeConversionFailed
	}
	if worked.IsNegative() {
		return attendance.MarkAttendanceResponse{}, attendance.ErrNegativeWorkedHours
	}

	requiredFloat, err := a.EmployeeRepository.GetRequiredDailyHours(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to get required daily hours: %w", err)
	}
	required := decimal.NewFromFloat(requiredFloat)

	lessHours := decimal.Zero
	extraHours := decimal.Zero

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.AttendanceRepository.SetOutTime(txCtx, existing.ID, *req.OutTime); err != nil {
			return fmt.Errorf("failed to set out time: %w", err)
		}

		switch {
		case worked.LessThan(required):
			lessHours = required.Sub(worked).Round(2)
			entry := attendance.ShortfallEntry{
				EmployeeID:    req.EmployeeID,
				Date:          date,
				RequiredHours: required,
				WorkedHours:   worked,
				LessHours:     lessHours,
			}
			if err := a.HoursLedgerRepository.CreateShortfall(txCtx, entry); err != nil {
				return fmt.Errorf("failed to record shortfall: %w", err)
			}
		case worked.GreaterThan(required):
			extraHours = worked.Sub(required).Round(2)
			entry := attendance.OvertimeEntry{
				EmployeeID: req.EmployeeID,
				Date:       date,
				ExtraHours: extraHours,
			}
			if err := a.HoursLedgerRepository.CreateOvertime(txCtx, entry); err != nil {
				return fmt.Errorf("failed to record overtime: %w", err)
			}
		}

		if err := a.workSummaryRepo.AddWorkedHours(txCtx, req.EmployeeID, date.Year(), int(date.Month()), worked); err != nil {
			return fmt.Errorf("failed to update work summary: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	return attendance.MarkAttendanceResponse{
		Message:     "Out time updated and worked hours processed",
		WorkedHours: worked.StringFixed(2),
		LessHours:   lessHours.StringFixed(2),
		ExtraHours:  extraHours.StringFixed(2),
	}, nil
}

// Check implements attendance.AttendanceService. Returns nil when the
// employee has no record for the day.
func (a *AttendanceServiceImpl) Check(ctx context.Context, employeeID int64, date string) (*attendance.CheckResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	return &attendance.CheckResponse{
		ID:      record.ID,
		Status:  record.Status,
		InTime:  record.InTime,
		OutTime: record.OutTime,
	}, nil
}

// GridSummary implements attendance.AttendanceService. Every employee gets
// a cell for days 1 through 31 regardless of month length; days with no
// record are empty strings.
func (a *AttendanceServiceImpl) GridSummary(ctx context.Context, year, month int) ([]attendance.GridRow, error) {
	employees, err := a.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := a.AttendanceRepository.ListMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	statusByEmployeeDay := make(map[int64]map[string]string)
	for _, rec := range records {
		day := rec.Date.Format("2006-01-02")
		if statusByEmployeeDay[rec.EmployeeID] == nil {
			statusByEmployeeDay[rec.EmployeeID] = make(map[string]string)
		}
		statusByEmployeeDay[rec.EmployeeID][day] = rec.Status
	}

	days := make([]string, 0, 31)
	for d := 1; d <= 31; d++ {
		days = append(days, fmt.Sprintf("%d-%02d-%02d", year, month, d))
	}

	rows := make([]attendance.GridRow, 0, len(employees))
	for _, emp := range employees {
		cells := make(map[string]string, len(days))
		for _, day := range days {
			cells[day] = statusByEmployeeDay[emp.ID][day]
		}
		rows = append(rows, attendance.GridRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Days:         cells,
		})
	}

	return rows, nil
}

// Details implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Details(ctx context.Context, employeeID int64, startDate, endDate string) ([]attendance.DetailRow, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	records, err := a.AttendanceRepository.ListRangeByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	overtime, err := a.HoursLedgerRepository.OvertimeByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime: %w", err)
	}
	shortfalls, err := a.HoursLedgerRepository.ShortfallByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortfalls: %w", err)
	}

	empShift, err := a.ShiftRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	shiftName := "General"
	if empShift != nil && empShift.ShiftName != "" {
		shiftName = empShift.ShiftName
	}

	overtimeByDay := make(map[string]decimal.Decimal, len(overtime))
	for _, entry := range overtime {
		overtimeByDay[entry.Date.Format("2006-01-02")] = entry.ExtraHours
	}
	shortfallByDay := make(map[string]decimal.Decimal, len(shortfalls))
	for _, entry := range shortfalls {
		shortfallByDay[entry.Date.Format("2006-01-02")] = entry.LessHours
	}

	rows := make([]attendance.DetailRow, 0, len(records))
	for _, rec := range records {
		day := rec.Date.Format("2006-01-02")

		var worked *string
		if rec.InTime != nil && rec.OutTime != nil {
			in24, inErr := To24Hour(*rec.InTime)
			out24, outErr := To24Hour(*rec.OutTime)
			if inErr == nil && outErr == nil {
				if hours, err := workedHoursWrapped(in24, out24); err == nil {
					s := hours.StringFixed(2)
					worked = &s
				}
			}
		}

		overtimeHours := "0"
		if v, ok := overtimeByDay[day]; ok {
			overtimeHours = v.StringFixed(2)
		}
		lessHours := "0"
		if v, ok := shortfallByDay[day]; ok {
			lessHours = v.StringFixed(2)
		}

		row := attendance.DetailRow{
			EmployeeID:    rec.EmployeeID,
			EmployeeName:  rec.EmployeeName,
			Date:          day,
			Shift:         shiftName,
			Status:        rec.Status,
			InTime:        derefOrEmpty(rec.InTime),
			OutTime:       derefOrEmpty(rec.OutTime),
			WorkedHours:   worked,
			OvertimeHours: overtimeHours,
			LessHours:     lessHours,
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
