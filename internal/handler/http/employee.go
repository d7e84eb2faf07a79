package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/attendly/hrops-backend/internal/domain/employee"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
)

type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

// Register implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq employee.RegisterEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		slog.Error("Register employee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	registerResp, err := e.employeeService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee registered successfully", "userId", registerResp.UserID)
	response.Created(w, registerResp.Message, registerResp)
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	items, err := e.employeeService.List(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Detail implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	detail, err := e.employeeService.Detail(r.Context(), id)
	if err != nil {
		slog.Error("Employee detail service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}
