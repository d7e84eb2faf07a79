package dashboard

import "context"

type DashboardService interface {
	Stats(ctx context.Context, period string) (Stats, error)
	OwnerStats(ctx context.Context) (OwnerStats, error)
}
