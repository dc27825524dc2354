package estudiante

import (
	"encoding/json"
	"net/http"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/auth"
	"github.com/ceac-fct/placement-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(userID string, dto CreateEstudianteDTO) (*Estudiante, error)
	GetByID(id string) (*Estudiante, error)
	GetAll() ([]*Estudiante, error)
	GetByCiclo(cicloID string) ([]*Estudiante, error)
	Update(id string, dto UpdateEstudianteDTO) (*Estudiante, error)
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
	var (
		estudiantes []*Estudiante
		err         error
	)

	if cicloID := r.URL.Query().Get("cicloFormativoId"); cicloID != "" {
		estudiantes, err = h.Service.GetByCiclo(cicloID)
	} else {
		estudiantes, err = h.Service.GetAll()
	}
	if err != nil {
		h.Logger.Error("List: failed to get estudiantes", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get estudiantes")
		return
	}

	h.WriteJSON(w, http.StatusOK, EstudiantesResponse{Estudiantes: estudiantes})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, err := h.Service.GetByID(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var dto CreateEstudianteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Create(user.ID, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateEstudianteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Update(id, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, e)
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
