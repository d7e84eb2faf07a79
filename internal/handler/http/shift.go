package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/hrops-backend/internal/domain/shift"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
)

type ShiftHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

// Add implements ShiftHandler.
func (s *ShiftHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var addReq shift.AddShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		slog.Error("Add shift validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := s.shiftService.Add(r.Context(), addReq); err != nil {
		slog.Error("Add shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned successfully", nil)
}

// Update implements ShiftHandler.
func (s *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	var updateReq shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update shift validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := s.shiftService.Update(r.Context(), id, updateReq); err != nil {
		slog.Error("Update shift service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", nil)
}

// Delete implements ShiftHandler.
func (s *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	if err := s.shiftService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete shift service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// List implements ShiftHandler.
func (s *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	shifts, err := s.shiftService.List(r.Context())
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Check implements ShiftHandler.
func (s *ShiftHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee_id", nil)
		return
	}

	checkResp, err := s.shiftService.Check(r.Context(), employeeID)
	if err != nil {
		slog.Error("Check shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, checkResp)
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{
		shiftService: shiftService,
	}
}
