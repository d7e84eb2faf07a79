package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly/hrops-backend/internal/domain/dashboard"
	"github.com/attendly/hrops-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	OwnerStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

// Stats implements DashboardHandler.
func (d *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	stats, err := d.dashboardService.Stats(r.Context(), period)
	if err != nil {
		slog.Error("Dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// OwnerStats implements DashboardHandler.
func (d *DashboardHandlerImpl) OwnerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := d.dashboardService.OwnerStats(r.Context())
	if err != nil {
		slog.Error("Owner dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}
