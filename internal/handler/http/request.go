package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/hrops-backend/internal/domain/request"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	trackerService request.TrackerService
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq request.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	id, err := h.trackerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee request created", "id", id, "type", createReq.Type)
	response.Created(w, "Request submitted", map[string]int64{"id": id})
}

// Pending implements RequestHandler.
func (h *RequestHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	status := request.StatusPending
	items, err := h.trackerService.Feed(r.Context(), &status)
	if err != nil {
		slog.Error("Pending requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// All implements RequestHandler.
func (h *RequestHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	items, err := h.trackerService.Feed(r.Context(), status)
	if err != nil {
		slog.Error("All requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// UpdateStatus implements RequestHandler.
func (h *RequestHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request id", nil)
		return
	}

	var updateReq request.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update request status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update request status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.trackerService.UpdateStatus(r.Context(), id, updateReq); err != nil {
		slog.Error("Update request status service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request status updated", nil)
}

func NewRequestHandler(trackerService request.TrackerService) RequestHandler {
	return &RequestHandlerImpl{
		trackerService: trackerService,
	}
}
