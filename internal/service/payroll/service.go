package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/domain/shift"
)

type PayrollServiceImpl struct {
	payroll.ComponentRepository
	payroll.AdvanceRepository
	payroll.ReportRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	attendanceRepo  attendance.AttendanceRepository
	hoursLedgerRepo attendance.HoursLedgerRepository
	leaveRepo       leave.LeaveSummaryRepository
}

func NewPayrollService(
	componentRepo payroll.ComponentRepository,
	advanceRepo payroll.AdvanceRepository,
	reportRepo payroll.ReportRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	hoursLedgerRepo attendance.HoursLedgerRepository,
	leaveRepo leave.LeaveSummaryRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		ComponentRepository: componentRepo,
		AdvanceRepository:   advanceRepo,
		ReportRepository:    reportRepo,
		EmployeeRepository:  employeeRepo,
		ShiftRepository:     shiftRepo,
		attendanceRepo:      attendanceRepo,
		hoursLedgerRepo:     hoursLedgerRepo,
		leaveRepo:           leaveRepo,
	}
}

// ComputeReport implements payroll.PayrollService. Master and ranged data
// are fetched concurrently, then each employee's line is derived in memory.
func (p *PayrollServiceImpl) ComputeReport(ctx context.Context, startDate, endDate string) (payroll.Report, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return payroll.Report{}, payroll.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return payroll.Report{}, payroll.ErrInvalidDateRange
	}

	year := start.Year()
	month := int(start.Month())

	var (
		employees    []employee.Employee
		components   []payroll.SalaryComponent
		shifts       map[int64]shift.Shift
		leaveByEmp   map[int64][]leave.LeaveSummary
		attRecords   []attendance.Attendance
		advanceSums  map[int64]decimal.Decimal
		overtimeSums map[int64]decimal.Decimal
		lateSums     map[int64]decimal.Decimal
		paidStatuses map[int64]payroll.PaidStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		employees, err = p.EmployeeRepository.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		components, err = p.ComponentRepository.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		shifts, err = p.ShiftRepository.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		leaveByEmp, err = p.leaveRepo.ListByYear(gctx, year)
		return err
	})
	g.Go(func() (err error) {
		attRecords, err = p.attendanceRepo.ListRange(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		advanceSums, err = p.AdvanceRepository.SumInRange(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		overtimeSums, err = p.hoursLedgerRepo.SumOvertimeInRange(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		lateSums, err = p.hoursLedgerRepo.SumShortfallInRange(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		paidStatuses, err = p.ReportRepository.PaidStatuses(gctx, year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return payroll.Report{}, fmt.Errorf("failed to fetch payroll inputs: %w", err)
	}

	type statusCounts struct{ present, absent, leaveDays int }
	countsByEmp := make(map[int64]*statusCounts)
	for _, rec := range attRecords {
		counts := countsByEmp[rec.EmployeeID]
		if counts == nil {
			counts = &statusCounts{}
			countsByEmp[rec.EmployeeID] = counts
		}
		switch rec.Status {
		case attendance.StatusPresent:
			counts.present++
		case attendance.StatusAbsent:
			counts.absent++
		case attendance.StatusLeave:
			counts.leaveDays++
		}
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	rows := make([]payroll.ReportRow, 0, len(employees))
	for _, emp := range employees {
		shiftHours := defaultShiftHours
		if s, ok := shifts[emp.ID]; ok {
			shiftHours = shiftHoursPerDay(s.StartTime, s.EndTime)
		}

		counts := countsByEmp[emp.ID]
		if counts == nil {
			counts = &statusCounts{}
		}

		computed := computeRow(rowInputs{
			BasicSalary:    emp.BasicSalary,
			ShiftHours:     shiftHours,
			Present:        counts.present,
			Absent:         counts.absent,
			LeaveDays:      counts.leaveDays,
			OvertimeHours:  overtimeSums[emp.ID],
			LateHours:      lateSums[emp.ID],
			Advance:        advanceSums[emp.ID],
			LeaveSummaries: leaveByEmp[emp.ID],
			Components:     components,
			DaysInMonth:    daysInMonth,
		})

		status := paidStatuses[emp.ID]

		rows = append(rows, payroll.ReportRow{
			EmployeeID:             emp.ID,
			FullName:               emp.FullName,
			Department:             emp.Department,
			BasicSalary:            computed.BasicSalary.StringFixed(2),
			ShiftHoursPerDay:       computed.ShiftHours.StringFixed(2),
			TotalPresent:           counts.present,
			TotalAbsent:            counts.absent,
			TotalLeave:             counts.leaveDays,
			TotalOvertimeHours:     overtimeSums[emp.ID].StringFixed(2),
			OvertimeAddition:       computed.OvertimeAddition.StringFixed(2),
			TotalLateHours:         lateSums[emp.ID].StringFixed(2),
			LateDeduction:          computed.LateDeduction.StringFixed(2),
			TotalAdvance:           advanceSums[emp.ID].StringFixed(2),
			AbsentDeduction:        computed.AbsentDeduction.StringFixed(2),
			LeaveDeduction:         computed.LeaveDeduction.StringFixed(2),
			TotalDeduction:         computed.TotalDeduction.StringFixed(2),
			GrossSalary:            computed.GrossSalary.StringFixed(2),
			NetSalary:              computed.NetSalary.StringFixed(2),
			Paid:                   status.Paid,
			PaidDate:               status.PaidDate,
			ComponentsBreakup:      computed.Components,
			LeaveAdjustmentDetails: []payroll.LeaveAdjustment{computed.LeaveAdjustment},
		})
	}

	return payroll.Report{
		Rows:       rows,
		Components: components,
		Year:       year,
		Month:      month,
	}, nil
}

// SaveReport implements payroll.PayrollService.
func (p *PayrollServiceImpl) SaveReport(ctx context.Context, req payroll.SaveReportRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	report := payroll.SalaryReport{
		EmployeeID:       req.EmployeeID,
		Year:             req.Year,
		Month:            req.Month,
		BasicSalary:      req.BasicSalary,
		GrossSalary:      req.GrossSalary,
		NetSalary:        req.NetSalary,
		TotalAllowances:  req.TotalAllowances,
		TotalDeductions:  req.TotalDeductions,
		AbsentDeduction:  req.AbsentDeduction,
		LeaveDeduction:   req.LeaveDeduction,
		LateDeduction:    req.LateDeduction,
		OvertimeAddition: req.OvertimeAddition,
		TotalAdvance:     req.TotalAdvance,
		Paid:             req.Paid,
	}
	if req.Paid {
		now := time.Now()
		report.PaidDate = &now
	}

	if err := p.ReportRepository.Upsert(ctx, report); err != nil {
		return fmt.Errorf("failed to save salary report: %w", err)
	}

	return nil
}

// CreateAdvance implements payroll.PayrollService.
func (p *PayrollServiceImpl) CreateAdvance(ctx context.Context, req payroll.CreateAdvanceRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return 0, fmt.Errorf("failed to parse date: %w", err)
	}

	status := req.Status
	if status == "" {
		status = "Pending"
	}

	id, err := p.AdvanceRepository.Create(ctx, payroll.SalaryAdvance{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         date,
		Amount:       req.Amount,
		PaymentMode:  req.PaymentMode,
		Remarks:      req.Remarks,
		Status:       status,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record salary advance: %w", err)
	}

	return id, nil
}

// ListComponents implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListComponents(ctx context.Context) ([]payroll.ComponentResponse, error) {
	components, err := p.ComponentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch components: %w", err)
	}

	out := make([]payroll.ComponentResponse, 0, len(components))
	for _, c := range components {
		out = append(out, payroll.ComponentResponse{
			ID:                 c.ID,
			Name:               c.Name,
			ComponentType:      c.ComponentType,
			EmployeePercentage: c.EmployeePercentage.StringFixed(2),
			EmployerPercentage: c.EmployerPercentage.StringFixed(2),
			Remarks:            c.Remarks,
			Active:             c.Active,
		})
	}

	return out, nil
}

// SaveComponents implements payroll.PayrollService. Invalid items are
// reported back without blocking the valid ones.
func (p *PayrollServiceImpl) SaveComponents(ctx context.Context, req payroll.SaveComponentsRequest) ([]payroll.ComponentError, error) {
	var itemErrors []payroll.ComponentError

	for _, input := range req.Components {
		if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.ComponentType) == "" {
			itemErrors = append(itemErrors, payroll.ComponentError{
				Message:   "name and component_type are required",
				Component: input,
			})
			continue
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}

		err := p.ComponentRepository.Upsert(ctx, payroll.SalaryComponent{
			Name:               input.Name,
			ComponentType:      input.ComponentType,
			EmployeePercentage: input.EmployeePercentage,
			EmployerPercentage: input.EmployerPercentage,
			Remarks:            input.Remarks,
			Active:             active,
		})
		if err != nil {
			return itemErrors, fmt.Errorf("failed to save component: %w", err)
		}
	}

	return itemErrors, nil
}

// UpdateComponent implements payroll.PayrollService.
func (p *PayrollServiceImpl) UpdateComponent(ctx context.Context, id int64, req payroll.ComponentInput) error {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	err := p.ComponentRepository.Update(ctx, id, payroll.SalaryComponent{
		Name:               req.Name,
		ComponentType:      req.ComponentType,
		EmployeePercentage: req.EmployeePercentage,
		EmployerPercentage: req.EmployerPercentage,
		Remarks:            req.Remarks,
		Active:             active,
	})
	if err != nil {
		if err == payroll.ErrComponentNotFound {
			return err
		}
		return fmt.Errorf("failed to update component: %w", err)
	}

	return nil
}

// DeleteComponent implements payroll.PayrollService.
func (p *PayrollServiceImpl) DeleteComponent(ctx context.Context, id int64) error {
	if err := p.ComponentRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}

	return nil
}
