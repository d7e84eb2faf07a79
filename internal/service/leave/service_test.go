package leave

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/domain/leave"
)

type fakeLeaveSummaryRepo struct {
	summaries  []leave.LeaveSummary
	takenID    int64
	takenYear  int
	takenDays  decimal.Decimal
	upsertedCt int
}

func (f *fakeLeaveSummaryRepo) Upsert(ctx context.Context, s leave.LeaveSummary) (bool, error) {
	f.upsertedCt++
	return true, nil
}

func (f *fakeLeaveSummaryRepo) AddTaken(ctx context.Context, employeeID int64, year int, days decimal.Decimal) error {
	f.takenID = employeeID
	f.takenYear = year
	f.takenDays = days
	return nil
}

func (f *fakeLeaveSummaryRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveSummary, error) {
	return f.summaries, nil
}

func (f *fakeLeaveSummaryRepo) ListByYear(ctx context.Context, year int) (map[int64][]leave.LeaveSummary, error) {
	return nil, nil
}

type fakeWorkSummaryRepo struct {
	addedID    int64
	addedYear  int
	addedMonth int
	addedHours decimal.Decimal
}

func (f *fakeWorkSummaryRepo) Upsert(ctx context.Context, s leave.WorkSummary) (bool, error) {
	return true, nil
}

func (f *fakeWorkSummaryRepo) AddWorkedHours(ctx context.Context, employeeID int64, year, month int, hours decimal.Decimal) error {
	f.addedID = employeeID
	f.addedYear = year
	f.addedMonth = month
	f.addedHours = hours
	return nil
}

func (f *fakeWorkSummaryRepo) SetRequiredHours(ctx context.Context, employeeID int64, year, month int, hours decimal.Decimal) error {
	return nil
}

func (f *fakeWorkSummaryRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.WorkSummary, error) {
	return nil, nil
}

type fakeAttendanceLookup struct {
	record *attendance.Attendance
}

func (f *fakeAttendanceLookup) Create(ctx context.Context, att attendance.Attendance) (int64, error) {
	return 0, nil
}

func (f *fakeAttendanceLookup) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	return f.record, nil
}

func (f *fakeAttendanceLookup) SetOutTime(ctx context.Context, id int64, outTime string) error {
	return nil
}

func (f *fakeAttendanceLookup) ListMonth(ctx context.Context, year, month int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceLookup) ListRangeByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceLookup) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceLookup) MissingForDate(ctx context.Context, date time.Time) ([]int64, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestTakeLeaveAddsDays(t *testing.T) {
	leaveRepo := &fakeLeaveSummaryRepo{}
	svc := NewLedgerService(leaveRepo, &fakeWorkSummaryRepo{}, &fakeAttendanceLookup{}, nil)

	err := svc.TakeLeave(context.Background(), leave.TakeLeaveRequest{
		EmployeeID: 3,
		LeaveType:  "Casual",
		Year:       2026,
		Days:       decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), leaveRepo.takenID)
	assert.Equal(t, 2026, leaveRepo.takenYear)
	assert.Equal(t, "2", leaveRepo.takenDays.String())
}

func TestIncrementWorkedHours(t *testing.T) {
	workRepo := &fakeWorkSummaryRepo{}
	attRepo := &fakeAttendanceLookup{
		record: &attendance.Attendance{
			ID:      21,
			InTime:  strPtr("9:00 AM"),
			OutTime: strPtr("5:30 PM"),
		},
	}
	svc := NewLedgerService(&fakeLeaveSummaryRepo{}, workRepo, attRepo, nil)

	resp, err := svc.IncrementWorkedHours(context.Background(), leave.IncrementWorkedHoursRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
	})
	require.NoError(t, err)
	assert.Equal(t, "Worked hours incremented", resp.Message)
	assert.Equal(t, "8.50", resp.AddedHours)
	assert.Equal(t, int64(3), workRepo.addedID)
	assert.Equal(t, 2026, workRepo.addedYear)
	assert.Equal(t, 8, workRepo.addedMonth)
}

func TestIncrementWorkedHoursNoRecord(t *testing.T) {
	svc := NewLedgerService(&fakeLeaveSummaryRepo{}, &fakeWorkSummaryRepo{}, &fakeAttendanceLookup{}, nil)

	_, err := svc.IncrementWorkedHours(context.Background(), leave.IncrementWorkedHoursRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
	})
	assert.ErrorIs(t, err, leave.ErrNoAttendanceForDate)
}

func TestIncrementWorkedHoursIncompleteTimes(t *testing.T) {
	attRepo := &fakeAttendanceLookup{
		record: &attendance.Attendance{ID: 21, InTime: strPtr("09:00")},
	}
	svc := NewLedgerService(&fakeLeaveSummaryRepo{}, &fakeWorkSummaryRepo{}, attRepo, nil)

	_, err := svc.IncrementWorkedHours(context.Background(), leave.IncrementWorkedHoursRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
	})
	assert.ErrorIs(t, err, leave.ErrIncompleteTimes)
}

func TestLeaveSummaryComputesAvailable(t *testing.T) {
	leaveRepo := &fakeLeaveSummaryRepo{
		summaries: []leave.LeaveSummary{
			{
				ID:               1,
				LeaveType:        "Casual",
				Year:             2026,
				TotalEntitlement: decimal.NewFromInt(10),
				LeaveTaken:       decimal.NewFromInt(3),
				CarryForward:     decimal.NewFromInt(2),
			},
		},
	}
	svc := NewLedgerService(leaveRepo, &fakeWorkSummaryRepo{}, &fakeAttendanceLookup{}, nil)

	rows, err := svc.LeaveSummary(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "9.00", rows[0].AvailableLeave)
	assert.Equal(t, "3.00", rows[0].LeaveTaken)
}
