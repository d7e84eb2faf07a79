package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/domain/shift"
)

type fakeAttendanceRepo struct {
	existing *attendance.Attendance
	created  *attendance.Attendance
	month    []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (int64, error) {
	f.created = &att
	return 21, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	return f.existing, nil
}

func (f *fakeAttendanceRepo) SetOutTime(ctx context.Context, id int64, outTime string) error {
	return nil
}

func (f *fakeAttendanceRepo) ListMonth(ctx context.Context, year, month int) ([]attendance.Attendance, error) {
	return f.month, nil
}

func (f *fakeAttendanceRepo) ListRangeByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) MissingForDate(ctx context.Context, date time.Time) ([]int64, error) {
	return nil, nil
}

type fakeHoursLedgerRepo struct{}

func (f *fakeHoursLedgerRepo) CreateOvertime(ctx context.Context, entry attendance.OvertimeEntry) error {
	return nil
}

func (f *fakeHoursLedgerRepo) CreateShortfall(ctx context.Context, entry attendance.ShortfallEntry) error {
	return nil
}

func (f *fakeHoursLedgerRepo) OvertimeByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.OvertimeEntry, error) {
	return nil, nil
}

func (f *fakeHoursLedgerRepo) ShortfallByEmployeeInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.ShortfallEntry, error) {
	return nil, nil
}

func (f *fakeHoursLedgerRepo) SumOvertimeInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error) {
	return nil, nil
}

func (f *fakeHoursLedgerRepo) SumShortfallInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListWithTodayStatus(ctx context.Context) ([]employee.ListItem, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetRequiredDailyHours(ctx context.Context, id int64) (float64, error) {
	return 8, nil
}

func (f *fakeEmployeeRepo) AttendanceCounts(ctx context.Context, id int64) (employee.AttendanceSummary, error) {
	return employee.AttendanceSummary{}, nil
}

func (f *fakeEmployeeRepo) ExtraHourRecords(ctx context.Context, id int64) ([]employee.ExtraHoursItem, error) {
	return nil, nil
}

type fakeShiftRepo struct{}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) error           { return nil }
func (f *fakeShiftRepo) Update(ctx context.Context, id int64, s shift.Shift) error { return nil }
func (f *fakeShiftRepo) Delete(ctx context.Context, id int64) error                { return nil }
func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error)           { return nil, nil }
func (f *fakeShiftRepo) GetByEmployee(ctx context.Context, employeeID int64) (*shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) All(ctx context.Context) (map[int64]shift.Shift, error) { return nil, nil }

func newTestService(repo *fakeAttendanceRepo, employees *fakeEmployeeRepo) attendance.AttendanceService {
	return NewAttendanceService(nil, repo, &fakeHoursLedgerRepo{}, employees, &fakeShiftRepo{}, nil)
}

func strPtr(s string) *string { return &s }

func TestMarkCreatesFirstRecord(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeEmployeeRepo{})

	resp, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
		InTime:     strPtr("09:00"),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, "Attendance recorded", resp.Message)
	assert.True(t, resp.Created)
	require.NotNil(t, repo.created)
	assert.Equal(t, attendance.StatusPresent, repo.created.Status)
	assert.Nil(t, repo.created.OutTime)
}

func TestMarkRejectsCompletedDay(t *testing.T) {
	repo := &fakeAttendanceRepo{
		existing: &attendance.Attendance{
			ID:      21,
			InTime:  strPtr("09:00"),
			OutTime: strPtr("17:00"),
		},
	}
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
		OutTime:    strPtr("18:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCompleted)
}

func TestMarkRequiresOutTimeOnSecondCall(t *testing.T) {
	repo := &fakeAttendanceRepo{
		existing: &attendance.Attendance{ID: 21, InTime: strPtr("09:00")},
	}
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
	})
	assert.ErrorIs(t, err, attendance.ErrOutTimeRequired)
}

func TestMarkRejectsUnparseableTimes(t *testing.T) {
	repo := &fakeAttendanceRepo{
		existing: &attendance.Attendance{ID: 21, InTime: strPtr("morning")},
	}
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
		OutTime:    strPtr("17:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrTimeConversionFailed)
}

func TestMarkRejectsNegativeWorkedHours(t *testing.T) {
	repo := &fakeAttendanceRepo{
		existing: &attendance.Attendance{ID: 21, InTime: strPtr("17:00")},
	}
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 3,
		Date:       "2026-08-17",
		OutTime:    strPtr("09:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrNegativeWorkedHours)
}

func TestCheckReturnsNilWhenUnmarked(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	resp, err := svc.Check(context.Background(), 3, "2026-08-17")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGridSummaryAlwaysHas31Cells(t *testing.T) {
	repo := &fakeAttendanceRepo{
		month: []attendance.Attendance{
			{EmployeeID: 3, Date: day(t, "2026-02-10"), Status: attendance.StatusPresent},
		},
	}
	employees := &fakeEmployeeRepo{
		employees: []employee.Employee{{ID: 3, FullName: "Ravi"}},
	}
	svc := newTestService(repo, employees)

	rows, err := svc.GridSummary(context.Background(), 2026, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Days run 1 through 31 even for February.
	assert.Len(t, rows[0].Days, 31)
	assert.Equal(t, attendance.StatusPresent, rows[0].Days["2026-02-10"])
	assert.Equal(t, "", rows[0].Days["2026-02-30"])
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
