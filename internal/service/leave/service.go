package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/domain/leave"
	attendancesvc "github.com/attendly/hrops-backend/internal/service/attendance"
)

type LedgerServiceImpl struct {
	leave.LeaveSummaryRepository
	leave.WorkSummaryRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewLedgerService(
	leaveRepo leave.LeaveSummaryRepository,
	workRepo leave.WorkSummaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LedgerService {
	return &LedgerServiceImpl{
		LeaveSummaryRepository: leaveRepo,
		WorkSummaryRepository:  workRepo,
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// UpsertLeave implements leave.LedgerService.
func (l *LedgerServiceImpl) UpsertLeave(ctx context.Context, req leave.UpsertLeaveRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}

	created, err := l.LeaveSummaryRepository.Upsert(ctx, leave.LeaveSummary{
		EmployeeID:       req.EmployeeID,
		LeaveType:        req.LeaveType,
		Year:             req.Year,
		TotalEntitlement: req.TotalEntitlement,
		CarryForward:     req.CarryForward,
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert leave summary: %w", err)
	}

	return created, nil
}

// TakeLeave implements leave.LedgerService.
func (l *LedgerServiceImpl) TakeLeave(ctx context.Context, req leave.TakeLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := l.LeaveSummaryRepository.AddTaken(ctx, req.EmployeeID, req.Year, req.Days); err != nil {
		return fmt.Errorf("failed to update leave taken: %w", err)
	}

	return nil
}

// LeaveSummary implements leave.LedgerService.
func (l *LedgerServiceImpl) LeaveSummary(ctx context.Context, employeeID int64) ([]leave.LeaveSummaryResponse, error) {
	rows, err := l.LeaveSummaryRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave summary: %w", err)
	}

	return toLeaveResponses(rows), nil
}

// SaveLeaveSummary implements leave.LedgerService. Same write as UpsertLeave
// behind a snake_case payload; kept as a separate operation because callers
// do not distinguish created from updated here.
func (l *LedgerServiceImpl) SaveLeaveSummary(ctx context.Context, req leave.UpsertLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, err := l.LeaveSummaryRepository.Upsert(ctx, leave.LeaveSummary{
		EmployeeID:       req.EmployeeID,
		LeaveType:        req.LeaveType,
		Year:             req.Year,
		TotalEntitlement: req.TotalEntitlement,
		CarryForward:     req.CarryForward,
	})
	if err != nil {
		return fmt.Errorf("failed to save leave summary: %w", err)
	}

	return nil
}

// UpsertWorkHours implements leave.LedgerService.
func (l *LedgerServiceImpl) UpsertWorkHours(ctx context.Context, req leave.UpsertWorkHoursRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}

	created, err := l.WorkSummaryRepository.Upsert(ctx, leave.WorkSummary{
		EmployeeID:    req.EmployeeID,
		Year:          req.Year,
		Month:         req.Month,
		RequiredHours: req.RequiredHours,
		WorkedHours:   req.WorkedHours,
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert work hours: %w", err)
	}

	return created, nil
}

// IncrementWorkedHours implements leave.LedgerService. Re-derives the day's
// worked hours from the attendance record and adds them to the monthly
// total.
func (l *LedgerServiceImpl) IncrementWorkedHours(ctx context.Context, req leave.IncrementWorkedHoursRequest) (leave.IncrementWorkedHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.IncrementWorkedHoursResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return leave.IncrementWorkedHoursResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	record, err := l.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return leave.IncrementWorkedHoursResponse{}, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	if record == nil {
		return leave.IncrementWorkedHoursResponse{}, leave.ErrNoAttendanceForDate
	}
	if record.InTime == nil || record.OutTime == nil {
		return leave.IncrementWorkedHoursResponse{}, leave.ErrIncompleteTimes
	}

	in24, err := attendancesvc.To24Hour(*record.InTime)
	if err != nil {
		return leave.IncrementWorkedHoursResponse{}, leave.ErrIncompleteTimes
	}
	out24, err := attendancesvc.To24Hour(*record.OutTime)
	if err != nil {
		return leave.IncrementWorkedHoursResponse{}, leave.ErrIncompleteTimes
	}

	hours, err := attendancesvc.WorkedHoursBetween(in24, out24)
	if err != nil {
		return leave.IncrementWorkedHoursResponse{}, leave.ErrIncompleteTimes
	}

	if err := l.WorkSummaryRepository.AddWorkedHours(ctx, req.EmployeeID, date.Year(), int(date.Month()), hours); err != nil {
		return leave.IncrementWorkedHoursResponse{}, fmt.Errorf("failed to increment worked hours: %w", err)
	}

	return leave.IncrementWorkedHoursResponse{
		Message:    "Worked hours incremented",
		AddedHours: hours.StringFixed(2),
	}, nil
}

// WorkSummary implements leave.LedgerService.
func (l *LedgerServiceImpl) WorkSummary(ctx context.Context, employeeID int64) ([]leave.WorkSummaryResponse, error) {
	rows, err := l.WorkSummaryRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work summary: %w", err)
	}

	return toWorkResponses(rows), nil
}

// SaveWorkSummary implements leave.LedgerService.
func (l *LedgerServiceImpl) SaveWorkSummary(ctx context.Context, req leave.SaveWorkSummaryRequest) error {
	if err := l.WorkSummaryRepository.SetRequiredHours(ctx, req.EmployeeID, req.Year, req.Month, req.RequiredHours); err != nil {
		return fmt.Errorf("failed to save work summary: %w", err)
	}

	return nil
}

// AllLedgers implements leave.LedgerService.
func (l *LedgerServiceImpl) AllLedgers(ctx context.Context) ([]leave.EmployeeLedger, error) {
	employees, err := l.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	ledgers := make([]leave.EmployeeLedger, 0, len(employees))
	for _, emp := range employees {
		leaveRows, err := l.LeaveSummaryRepository.ListByEmployee(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch leave summary: %w", err)
		}
		workRows, err := l.WorkSummaryRepository.ListByEmployee(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch work summary: %w", err)
		}

		ledgers = append(ledgers, leave.EmployeeLedger{
			EmployeeID:   emp.ID,
			FullName:     emp.FullName,
			Department:   emp.Department,
			LeaveSummary: toLeaveResponses(leaveRows),
			WorkSummary:  toWorkResponses(workRows),
		})
	}

	return ledgers, nil
}

func toLeaveResponses(rows []leave.LeaveSummary) []leave.LeaveSummaryResponse {
	out := make([]leave.LeaveSummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, leave.LeaveSummaryResponse{
			ID:               row.ID,
			LeaveType:        row.LeaveType,
			Year:             row.Year,
			TotalEntitlement: row.TotalEntitlement.StringFixed(2),
			LeaveTaken:       row.LeaveTaken.StringFixed(2),
			CarryForward:     row.CarryForward.StringFixed(2),
			AvailableLeave:   row.Available().StringFixed(2),
		})
	}
	return out
}

func toWorkResponses(rows []leave.WorkSummary) []leave.WorkSummaryResponse {
	out := make([]leave.WorkSummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, leave.WorkSummaryResponse{
			Year:          row.Year,
			Month:         row.Month,
			RequiredHours: row.RequiredHours.StringFixed(2),
			WorkedHours:   row.WorkedHours.StringFixed(2),
		})
	}
	return out
}
