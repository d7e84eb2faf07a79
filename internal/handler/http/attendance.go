package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	GridSummary(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// Mark implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	markResp, err := a.attendanceService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "employeeId", markReq.EmployeeID, "date", markReq.Date, "created", markResp.Created)
	if markResp.Created {
		response.Created(w, markResp.Message, markResp)
		return
	}
	response.SuccessWithMessage(w, markResp.Message, markResp)
}

// Check implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee_id", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	checkResp, err := a.attendanceService.Check(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("Check attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// checkResp is nil when nothing is marked yet; the client reads
	// a null data field as "not marked".
	response.Success(w, checkResp)
}

// GridSummary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GridSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))

	rows, err := a.attendanceService.GridSummary(r.Context(), year, month)
	if err != nil {
		slog.Error("Grid summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Details implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Details(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee_id", nil)
		return
	}
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	rows, err := a.attendanceService.Details(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		slog.Error("Attendance details service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return v
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}
