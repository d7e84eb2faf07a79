package shift

import (
	"context"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: shiftRepo}
}

// Add implements shift.ShiftService.
func (s *ShiftServiceImpl) Add(ctx context.Context, req shift.AddShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	shiftType := req.ShiftType
	if shiftType == "" {
		shiftType = shift.TypeDay
	}

	err := s.ShiftRepository.Create(ctx, shift.Shift{
		EmployeeID: req.EmployeeID,
		ShiftName:  req.ShiftName,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ShiftType:  shiftType,
	})
	if err != nil {
		return fmt.Errorf("failed to add shift: %w", err)
	}

	return nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, id int64, req shift.UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	shiftType := req.ShiftType
	if shiftType == "" {
		shiftType = shift.TypeDay
	}

	err := s.ShiftRepository.Update(ctx, id, shift.Shift{
		ShiftName: req.ShiftName,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ShiftType: shiftType,
	})
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	out := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		out = append(out, toResponse(sh))
	}

	return out, nil
}

// Check implements shift.ShiftService. Returns nil when the employee has no
// shift assigned.
func (s *ShiftServiceImpl) Check(ctx context.Context, employeeID int64) (*shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check shift: %w", err)
	}
	if sh == nil {
		return nil, nil
	}

	resp := toResponse(*sh)
	return &resp, nil
}

func toResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:         sh.ID,
		EmployeeID: sh.EmployeeID,
		FullName:   sh.EmployeeName,
		ShiftName:  sh.ShiftName,
		StartTime:  sh.StartTime,
		EndTime:    sh.EndTime,
		ShiftType:  sh.ShiftType,
	}
}
