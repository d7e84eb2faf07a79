package request

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/domain/request"
)

type fakeRequestRepo struct {
	items         []request.ApprovalItem
	created       *request.EmployeeRequest
	updatedID     int64
	updatedStatus string
}

func (f *fakeRequestRepo) Create(ctx context.Context, req request.EmployeeRequest) (int64, error) {
	f.created = &req
	return 11, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeRequestRepo) ListAsApprovalItems(ctx context.Context, status *string) ([]request.ApprovalItem, error) {
	return f.items, nil
}

type fakeAdvanceRepo struct {
	advances      []payroll.SalaryAdvance
	updatedID     int64
	updatedStatus string
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, adv payroll.SalaryAdvance) (int64, error) {
	return 0, nil
}

func (f *fakeAdvanceRepo) SumInRange(ctx context.Context, start, end time.Time) (map[int64]decimal.Decimal, error) {
	return nil, nil
}

func (f *fakeAdvanceRepo) ByEmployee(ctx context.Context, employeeID int64) ([]payroll.SalaryAdvance, error) {
	return nil, nil
}

func (f *fakeAdvanceRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeAdvanceRepo) ListByStatus(ctx context.Context, status *string) ([]payroll.SalaryAdvance, error) {
	return f.advances, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestFeedMergesNewestFirst(t *testing.T) {
	oldDate := day("2026-08-01")
	newDate := day("2026-08-20")
	requestRepo := &fakeRequestRepo{
		items: []request.ApprovalItem{
			{ID: 1, RequestType: "WFH", Date: &oldDate, Status: request.StatusPending},
		},
	}
	advanceRepo := &fakeAdvanceRepo{
		advances: []payroll.SalaryAdvance{
			{ID: 5, EmployeeID: 3, EmployeeName: "Ravi", Date: newDate, Amount: decimal.NewFromInt(2000), Status: request.StatusPending},
		},
	}

	svc := NewTrackerService(requestRepo, advanceRepo)
	items, err := svc.Feed(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, request.KindAdvance, items[0].RequestType)
	assert.Equal(t, int64(5), items[0].ID)
	require.NotNil(t, items[0].Amount)
	assert.Equal(t, "2000", items[0].Amount.String())
	assert.Equal(t, "WFH", items[1].RequestType)
}

func TestCreateDefaultsStatusToPending(t *testing.T) {
	requestRepo := &fakeRequestRepo{}
	svc := NewTrackerService(requestRepo, &fakeAdvanceRepo{})

	id, err := svc.Create(context.Background(), request.CreateRequest{
		EmployeeID: 3,
		Type:       "Leave",
		Date:       "2026-08-15",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.NotNil(t, requestRepo.created)
	assert.Equal(t, request.StatusPending, requestRepo.created.Status)
	require.NotNil(t, requestRepo.created.Date)
	assert.Equal(t, day("2026-08-15"), *requestRepo.created.Date)
}

func TestUpdateStatusRoutesAdvances(t *testing.T) {
	requestRepo := &fakeRequestRepo{}
	advanceRepo := &fakeAdvanceRepo{}
	svc := NewTrackerService(requestRepo, advanceRepo)

	err := svc.UpdateStatus(context.Background(), 9, request.UpdateStatusRequest{
		Status:      request.StatusApproved,
		RequestType: request.KindAdvance,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), advanceRepo.updatedID)
	assert.Equal(t, request.StatusApproved, advanceRepo.updatedStatus)
	assert.Zero(t, requestRepo.updatedID)

	err = svc.UpdateStatus(context.Background(), 4, request.UpdateStatusRequest{
		Status:      request.StatusRejected,
		RequestType: "Leave",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), requestRepo.updatedID)
	assert.Equal(t, request.StatusRejected, requestRepo.updatedStatus)
}
