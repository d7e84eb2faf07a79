package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/domain/payroll"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	advanceRepo payroll.AdvanceRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, advanceRepo payroll.AdvanceRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		advanceRepo:        advanceRepo,
	}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.RegisterEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.RegisterEmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		FullName:                 req.FullName,
		Email:                    req.Email,
		Phone:                    req.Phone,
		Gender:                   req.Gender,
		BloodGroup:               req.BloodGroup,
		Department:               req.Department,
		Designation:              req.Designation,
		Experience:               req.Experience,
		BasicSalary:              req.BasicSalary,
		WorkType:                 req.WorkType,
		Address:                  req.Address,
		City:                     req.City,
		State:                    req.State,
		Zip:                      req.Zip,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactNumber:   req.EmergencyContactNumber,
		AnnualLeaveEntitlement:   req.AnnualLeaveEntitlement,
		RequiredWorkHoursDaily:   req.RequiredWorkHoursDaily,
		RequiredWorkHoursMonthly: req.RequiredWorkHoursMonthly,
	}

	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return employee.RegisterEmployeeResponse{}, fmt.Errorf("failed to parse dob: %w", err)
		}
		newEmployee.DOB = &dob
	}
	if req.JoinDate != nil {
		joinDate, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			return employee.RegisterEmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
		}
		newEmployee.JoinDate = &joinDate
	}

	id, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.RegisterEmployeeResponse{}, fmt.Errorf("failed to register employee: %w", err)
	}

	return employee.RegisterEmployeeResponse{
		Message: "Employee registered",
		UserID:  id,
	}, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.ListItem, error) {
	items, err := s.EmployeeRepository.ListWithTodayStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	return items, nil
}

// Detail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Detail(ctx context.Context, id int64) (employee.DetailResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, err
	}

	summary, err := s.EmployeeRepository.AttendanceCounts(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, err
	}

	advances, err := s.advanceRepo.ByEmployee(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, fmt.Errorf("failed to load advances: %w", err)
	}

	extraHours, err := s.EmployeeRepository.ExtraHourRecords(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, err
	}

	advanceItems := make([]employee.AdvanceItem, 0, len(advances))
	for _, adv := range advances {
		advanceItems = append(advanceItems, employee.AdvanceItem{
			Amount: adv.Amount.StringFixed(2),
			Date:   adv.Date.Format("2006-01-02"),
		})
	}

	return employee.DetailResponse{
		ID:                emp.ID,
		FullName:          emp.FullName,
		BasicSalary:       emp.BasicSalary.StringFixed(2),
		AttendanceSummary: summary,
		Advances:          advanceItems,
		ExtraHours:        extraHours,
	}, nil
}
