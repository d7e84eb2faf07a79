package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/hrops-backend/internal/domain/leave"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
)

type LeaveHandler interface {
	UpsertLeave(w http.ResponseWriter, r *http.Request)
	TakeLeave(w http.ResponseWriter, r *http.Request)
	LeaveSummary(w http.ResponseWriter, r *http.Request)
	SaveLeaveSummary(w http.ResponseWriter, r *http.Request)
	UpsertWorkHours(w http.ResponseWriter, r *http.Request)
	IncrementWorkedHours(w http.ResponseWriter, r *http.Request)
	WorkSummary(w http.ResponseWriter, r *http.Request)
	SaveWorkSummary(w http.ResponseWriter, r *http.Request)
	AllLedgers(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	ledgerService leave.LedgerService
}

// UpsertLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) UpsertLeave(w http.ResponseWriter, r *http.Request) {
	var upsertReq leave.UpsertLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := upsertReq.Validate(); err != nil {
		slog.Error("Upsert leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := l.ledgerService.UpsertLeave(r.Context(), upsertReq)
	if err != nil {
		slog.Error("Upsert leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Leave summary created", nil)
		return
	}
	response.SuccessWithMessage(w, "Leave summary updated", nil)
}

// TakeLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) TakeLeave(w http.ResponseWriter, r *http.Request) {
	var takeReq leave.TakeLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&takeReq); err != nil {
		slog.Error("Take leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := takeReq.Validate(); err != nil {
		slog.Error("Take leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := l.ledgerService.TakeLeave(r.Context(), takeReq); err != nil {
		slog.Error("Take leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave recorded", nil)
}

// LeaveSummary implements LeaveHandler.
func (l *LeaveHandlerImpl) LeaveSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	summaries, err := l.ledgerService.LeaveSummary(r.Context(), employeeID)
	if err != nil {
		slog.Error("Leave summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// SaveLeaveSummary implements LeaveHandler.
func (l *LeaveHandlerImpl) SaveLeaveSummary(w http.ResponseWriter, r *http.Request) {
	var saveReq leave.UpsertLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save leave summary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := saveReq.Validate(); err != nil {
		slog.Error("Save leave summary validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := l.ledgerService.SaveLeaveSummary(r.Context(), saveReq); err != nil {
		slog.Error("Save leave summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave summary saved", nil)
}

// UpsertWorkHours implements LeaveHandler.
func (l *LeaveHandlerImpl) UpsertWorkHours(w http.ResponseWriter, r *http.Request) {
	var upsertReq leave.UpsertWorkHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert work hours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := upsertReq.Validate(); err != nil {
		slog.Error("Upsert work hours validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := l.ledgerService.UpsertWorkHours(r.Context(), upsertReq)
	if err != nil {
		slog.Error("Upsert work hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Work summary created", nil)
		return
	}
	response.SuccessWithMessage(w, "Work summary updated", nil)
}

// IncrementWorkedHours implements LeaveHandler.
func (l *LeaveHandlerImpl) IncrementWorkedHours(w http.ResponseWriter, r *http.Request) {
	var incReq leave.IncrementWorkedHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&incReq); err != nil {
		slog.Error("Increment worked hours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := incReq.Validate(); err != nil {
		slog.Error("Increment worked hours validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	incResp, err := l.ledgerService.IncrementWorkedHours(r.Context(), incReq)
	if err != nil {
		slog.Error("Increment worked hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, incResp.Message, incResp)
}

// WorkSummary implements LeaveHandler.
func (l *LeaveHandlerImpl) WorkSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	summaries, err := l.ledgerService.WorkSummary(r.Context(), employeeID)
	if err != nil {
		slog.Error("Work summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// SaveWorkSummary implements LeaveHandler.
func (l *LeaveHandlerImpl) SaveWorkSummary(w http.ResponseWriter, r *http.Request) {
	var saveReq leave.SaveWorkSummaryRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save work summary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := l.ledgerService.SaveWorkSummary(r.Context(), saveReq); err != nil {
		slog.Error("Save work summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work summary saved", nil)
}

// AllLedgers implements LeaveHandler.
func (l *LeaveHandlerImpl) AllLedgers(w http.ResponseWriter, r *http.Request) {
	ledgers, err := l.ledgerService.AllLedgers(r.Context())
	if err != nil {
		slog.Error("All ledgers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledgers)
}

func NewLeaveHandler(ledgerService leave.LedgerService) LeaveHandler {
	return &LeaveHandlerImpl{
		ledgerService: ledgerService,
	}
}
