package medical

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/transport"
	"github.com/furnimed/catalog-admin/pkg/logger"
)

type ServiceAPI interface {
	Kind() string
	List(page catalog.Page) ([]Good, catalog.Meta, error)
	GetByID(id int64) (*Good, error)
	Create(dto GoodDTO) (int64, error)
	Update(id int64, dto GoodDTO) error
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

// List handles GET for the bound catalog kind.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := catalog.ParsePage(r.URL.Query())

	rows, meta, err := h.Service.List(page)
	if err != nil {
		h.Logger.Error("List: failed to fetch rows", "kind", h.Service.Kind(), "error", err)
		h.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("failed to fetch %s", h.Service.Kind()))
		return
	}

	h.WriteJSON(w, http.StatusOK, catalog.ListResponse[Good]{Data: rows, Meta: meta})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	g, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto GoodDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("Create: invalid request body", "kind", h.Service.Kind(), "error", err)
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

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto GoodDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("Update: invalid request body", "kind", h.Service.Kind(), "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.Update(id, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "record updated successfully"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "record deleted successfully"})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.Logger.Warn("invalid record id", "kind", h.Service.Kind(), "id", raw)
		h.WriteError(w, http.StatusBadRequest, "invalid record id")
		return 0, false
	}
	return id, true
}
