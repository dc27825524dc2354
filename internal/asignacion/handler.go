package asignacion

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/auth"
	"github.com/ceac-fct/placement-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(userID string, dto CreateAsignacionDTO) (*Asignacion, error)
	GetByID(id string) (*Asignacion, error)
	GetAll() ([]*Asignacion, error)
	GetRecent(limit int) ([]*Asignacion, error)
	Update(id string, dto UpdateAsignacionDTO) (*Asignacion, error)
	Delete(id string) error
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	asignaciones, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("List: failed to get asignaciones", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get asignaciones")
		return
	}

	h.WriteJSON(w, http.StatusOK, AsignacionesResponse{Asignaciones: asignaciones})
}

// Recent serves the dashboard's latest-placements card.
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	asignaciones, err := h.Service.GetRecent(limit)
	if err != nil {
		h.Logger.Error("Recent: failed to get asignaciones", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get asignaciones")
		return
	}

	h.WriteJSON(w, http.StatusOK, AsignacionesResponse{Asignaciones: asignaciones})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := h.Service.GetByID(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var dto CreateAsignacionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.Create(user.ID, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateAsignacionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.Update(id, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.Delete(id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
		return
	}
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
