package request

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/domain/request"
)

type TrackerServiceImpl struct {
	request.RequestRepository
	advanceRepo payroll.AdvanceRepository
}

func NewTrackerService(requestRepo request.RequestRepository, advanceRepo payroll.AdvanceRepository) request.TrackerService {
	return &TrackerServiceImpl{
		RequestRepository: requestRepo,
		advanceRepo:       advanceRepo,
	}
}

// Create implements request.TrackerService.
func (t *TrackerServiceImpl) Create(ctx context.Context, req request.CreateRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	status := req.Status
	if status == "" {
		status = request.StatusPending
	}

	newRequest := request.EmployeeRequest{
		EmployeeID:  req.EmployeeID,
		RequestType: req.Type,
		Reason:      req.Reason,
		Status:      status,
		LeaveType:   req.LeaveType,
		HowManyDays: req.HowManyDays,
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return 0, fmt.Errorf("failed to parse date: %w", err)
	}
	newRequest.Date = &date

	if req.FromDate != nil {
		fromDate, err := time.Parse("2006-01-02", *req.FromDate)
		if err != nil {
			return 0, fmt.Errorf("failed to parse fromDate: %w", err)
		}
		newRequest.FromDate = &fromDate
	}
	if req.ToDate != nil {
		toDate, err := time.Parse("2006-01-02", *req.ToDate)
		if err != nil {
			return 0, fmt.Errorf("failed to parse toDate: %w", err)
		}
		newRequest.ToDate = &toDate
	}

	id, err := t.RequestRepository.Create(ctx, newRequest)
	if err != nil {
		return 0, fmt.Errorf("failed to submit request: %w", err)
	}

	return id, nil
}

// Feed implements request.TrackerService. Generic requests and salary
// advances are fetched separately and merged newest first.
func (t *TrackerServiceImpl) Feed(ctx context.Context, status *string) ([]request.ApprovalItem, error) {
	items, err := t.RequestRepository.ListAsApprovalItems(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	advances, err := t.advanceRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advances: %w", err)
	}

	for _, adv := range advances {
		adv := adv
		reason := ""
		if adv.Remarks != nil {
			reason = *adv.Remarks
		}
		date := adv.Date
		items = append(items, request.ApprovalItem{
			ID:           adv.ID,
			EmployeeID:   adv.EmployeeID,
			EmployeeName: adv.EmployeeName,
			RequestType:  request.KindAdvance,
			Reason:       reason,
			Amount:       &adv.Amount,
			PaymentMode:  adv.PaymentMode,
			Date:         &date,
			Status:       adv.Status,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		var di, dj time.Time
		if items[i].Date != nil {
			di = *items[i].Date
		}
		if items[j].Date != nil {
			dj = *items[j].Date
		}
		return di.After(dj)
	})

	return items, nil
}

// UpdateStatus implements request.TrackerService. The request type routes
// the update to the advances table or the generic requests table.
func (t *TrackerServiceImpl) UpdateStatus(ctx context.Context, id int64, req request.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.RequestType == request.KindAdvance {
		if err := t.advanceRepo.UpdateStatus(ctx, id, req.Status); err != nil {
			return fmt.Errorf("failed to update advance status: %w", err)
		}
		return nil
	}

	if err := t.RequestRepository.UpdateStatus(ctx, id, req.Status); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	return nil
}
