// Package http provides http transport for the command history
package http

import (
	stdhttp "net/http"
	"strconv"

	"domovoy/internal/modkit/httpkit"
	commandsdom "domovoy/internal/services/commands/domain"
)

// Register mounts command history endpoints on the given router
func Register(r httpkit.Router, reader commandsdom.ReaderPort) {
	h := &handlers{reader: reader}
	httpkit.Get(r, "/", h.recent)
}

type handlers struct{ reader commandsdom.ReaderPort }

// swagger:route GET /commands Commands commandsRecent
// @Summary Recent parsed commands
// @Tags Commands
// @Produce json
// @Param limit query int false "page size" default(50)
// @Param offset query int false "page offset" default(0)
// @Success 200 {array} commandsdom.Command "ok"
// @Router /commands [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return h.reader.Recent(r.Context(), commandsdom.ListInput{Limit: limit, Offset: offset})
}
