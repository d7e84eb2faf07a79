package dashboard

import "context"

// Period selects the date window for the HR dashboard.
const (
	PeriodDaily   = "daily"
	PeriodMonthly = "monthly"
)

type DashboardRepository interface {
	Stats(ctx context.Context, period string) (Stats, error)
	OwnerStats(ctx context.Context) (OwnerStats, error)
}
