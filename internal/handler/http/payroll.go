package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/hrops-backend/internal/domain/payroll"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
	"github.com/attendly/hrops-backend/internal/pkg/excel"
)

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	SaveReport(w http.ResponseWriter, r *http.Request)
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListComponents(w http.ResponseWriter, r *http.Request)
	SaveComponents(w http.ResponseWriter, r *http.Request)
	UpdateComponent(w http.ResponseWriter, r *http.Request)
	DeleteComponent(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

// Report implements PayrollHandler.
func (p *PayrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	report, err := p.payrollService.ComputeReport(r.Context(), startDate, endDate)
	if err != nil {
		slog.Error("Payroll report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "excel" {
		filename := excel.PayrollFilename(report.Year, report.Month)
		w.Header().Set("Content-Type", excel.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if err := excel.WritePayrollReport(w, report); err != nil {
			slog.Error("Payroll report export error", "error", err)
		}
		return
	}

	response.Success(w, report.Rows)
}

// SaveReport implements PayrollHandler.
func (p *PayrollHandlerImpl) SaveReport(w http.ResponseWriter, r *http.Request) {
	var saveReq payroll.SaveReportRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := saveReq.Validate(); err != nil {
		slog.Error("Save report validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := p.payrollService.SaveReport(r.Context(), saveReq); err != nil {
		slog.Error("Save report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary report saved", nil)
}

// CreateAdvance implements PayrollHandler.
func (p *PayrollHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var advanceReq payroll.CreateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&advanceReq); err != nil {
		slog.Error("Create advance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := advanceReq.Validate(); err != nil {
		slog.Error("Create advance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	id, err := p.payrollService.CreateAdvance(r.Context(), advanceReq)
	if err != nil {
		slog.Error("Create advance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary advance created", "id", id, "employeeId", advanceReq.EmployeeID)
	response.Created(w, "Advance request submitted", map[string]int64{"id": id})
}

// ListComponents implements PayrollHandler.
func (p *PayrollHandlerImpl) ListComponents(w http.ResponseWriter, r *http.Request) {
	components, err := p.payrollService.ListComponents(r.Context())
	if err != nil {
		slog.Error("List components service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, components)
}

// SaveComponents implements PayrollHandler.
func (p *PayrollHandlerImpl) SaveComponents(w http.ResponseWriter, r *http.Request) {
	var saveReq payroll.SaveComponentsRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save components decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rejected, err := p.payrollService.SaveComponents(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save components service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if len(rejected) > 0 {
		response.SuccessWithMessage(w, "Some components were rejected", map[string]any{"errors": rejected})
		return
	}
	response.SuccessWithMessage(w, "Salary components saved", nil)
}

// UpdateComponent implements PayrollHandler.
func (p *PayrollHandlerImpl) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid component id", nil)
		return
	}

	var updateReq payroll.ComponentInput
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update component decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := p.payrollService.UpdateComponent(r.Context(), id, updateReq); err != nil {
		slog.Error("Update component service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary component updated", nil)
}

// DeleteComponent implements PayrollHandler.
func (p *PayrollHandlerImpl) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid component id", nil)
		return
	}

	if err := p.payrollService.DeleteComponent(r.Context(), id); err != nil {
		slog.Error("Delete component service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary component deleted", nil)
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}
