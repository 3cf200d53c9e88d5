package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/transport"
	"github.com/furnimed/catalog-admin/pkg/logger"
)

type ServiceAPI interface {
	List(page catalog.Page) ([]Employee, catalog.Meta, error)
	GetByID(id int64) (*Employee, error)
	Create(dto EmployeeDTO) (int64, error)
	Update(id int64, dto EmployeeDTO) error
	Delete(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// List handles GET /api/employees.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := catalog.ParsePage(r.URL.Query())

	rows, meta, err := h.Service.List(page)
	if err != nil {
		h.Logger.Error("List: failed to fetch employees", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to fetch employees")
		return
	}

	h.WriteJSON(w, http.StatusOK, catalog.ListResponse[Employee]{Data: rows, Meta: meta})
}

// Get handles GET /api/employees/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	e, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, e)
}

// Create handles POST /api/employees.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// Update handles PUT /api/employees/{id}. Full-row replace.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("Update: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.Update(id, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "employee updated successfully"})
}

// Delete handles DELETE /api/employees/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "employee deleted successfully"})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.Logger.Warn("invalid employee id", "id", raw)
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return 0, false
	}
	return id, true
}
