package module

import (
	"context"

	statsdom "domovoy/internal/services/api/stats/domain"
	statssvc "domovoy/internal/services/api/stats/service"
)

// adaptStatsPort adapts the stats service to the domain port interface
type adaptStatsPort struct{ svc statssvc.Service }

// SlotFill implements the domain ServicePort interface
func (a adaptStatsPort) SlotFill(ctx context.Context, days int) (statsdom.SlotStatsResp, error) {
	return a.svc.SlotFill(ctx, days)
}
