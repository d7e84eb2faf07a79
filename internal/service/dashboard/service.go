package dashboard

import (
	"context"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: dashboardRepo}
}

// Stats implements dashboard.DashboardService. Unknown periods fall back to
// daily.
func (d *DashboardServiceImpl) Stats(ctx context.Context, period string) (dashboard.Stats, error) {
	if period != dashboard.PeriodMonthly {
		period = dashboard.PeriodDaily
	}

	stats, err := d.DashboardRepository.Stats(ctx, period)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	return stats, nil
}

// OwnerStats implements dashboard.DashboardService.
func (d *DashboardServiceImpl) OwnerStats(ctx context.Context) (dashboard.OwnerStats, error) {
	stats, err := d.DashboardRepository.OwnerStats(ctx)
	if err != nil {
		return dashboard.OwnerStats{}, fmt.Errorf("failed to load owner dashboard: %w", err)
	}

	return stats, nil
}
