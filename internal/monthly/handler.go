package monthly

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tna-office/backoffice/internal/platform/httpx"
)

// Handler coordinates HTTP requests for monthly services.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the monthly services HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountCatalogRoutes registers catalog endpoints.
func (h *Handler) MountCatalogRoutes(r chi.Router) {
	r.Get("/", h.listCatalog)
	r.Post("/", h.createCatalogItem)
	r.Put("/{id}", h.updateCatalogItem)
	r.Delete("/{id}", h.deleteCatalogItem)
}

// MountServiceRoutes registers contracted service endpoints. List accepts
// ?client_id= to scope results.
func (h *Handler) MountServiceRoutes(r chi.Router) {
	r.Get("/", h.listServices)
	r.Post("/", h.createService)
	r.Get("/{id}", h.getService)
	r.Put("/{id}", h.updateService)
	r.Delete("/{id}", h.deleteService)
}

func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCatalog(r.Context())
	if err != nil {
		h.logger.Error("list catalog", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []CatalogItem{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) createCatalogItem(w http.ResponseWriter, r *http.Request) {
	var req CreateCatalogItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	item, err := h.service.CreateCatalogItem(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) updateCatalogItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCatalogItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	item, err := h.service.UpdateCatalogItem(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) deleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCatalogItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "catalog item deleted"})
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListServices(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		h.logger.Error("list monthly services", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []ClientService{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) getService(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	var req CreateClientServiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	item, err := h.service.CreateService(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	var req UpdateClientServiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	item, err := h.service.UpdateService(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "monthly service deleted"})
}
