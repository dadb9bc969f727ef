package domain

import "context"

// ServicePort defines the service contract for stats
type ServicePort interface {
	SlotFill(ctx context.Context, days int) (SlotStatsResp, error)
}
