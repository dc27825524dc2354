package dashboard

import (
	"net/http"

	"github.com/ceac-fct/placement-management/internal/transport"
)

type ServiceAPI interface {
	GetStats() (*StatsResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to load dashboard stats")
		return
	}
	h.WriteJSON(w, http.StatusOK, stats)
}
