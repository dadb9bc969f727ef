// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"
	"strconv"

	"domovoy/internal/modkit/httpkit"
	svc "domovoy/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/slots", h.slots)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /stats/slots Stats statsSlots
// @Summary Slot fill aggregates over a trailing window
// @Tags Stats
// @Produce json
// @Param days query int false "trailing window in days" default(7)
// @Success 200 {object} domain.SlotStatsResp "ok"
// @Router /stats/slots [get]
func (h *handlers) slots(r *stdhttp.Request) (any, error) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	return h.svc.SlotFill(r.Context(), days)
}
