// Package http provides http transport for nlu
package http

import (
	stdhttp "net/http"

	"domovoy/internal/modkit/httpkit"
	"domovoy/internal/services/api/nlu/domain"
	svc "domovoy/internal/services/api/nlu/service"
)

// Register mounts nlu endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ParseInput](r, "/parse", h.parse)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /nlu/parse NLU nluParse
// @Summary Parse a voice command into intent and slots
// @Tags NLU
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Utterance"
// @Success 200 {object} domain.ParseResponse "ok"
// @Router /nlu/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}
