package offices

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tna-office/backoffice/internal/auth"
	"github.com/tna-office/backoffice/internal/platform/httpx"
	"github.com/tna-office/backoffice/internal/shared"
)

// Handler coordinates HTTP requests for offices.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the offices HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers office endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// MountFloorPlanRoutes registers floor plan mutations. Reading the plan is
// public and mounted separately; layout changes are admin only.
func (h *Handler) MountFloorPlanRoutes(r chi.Router) {
	r.Use(auth.RequireRole(shared.RoleAdmin))
	r.Post("/", h.replaceFloorPlan)
	r.Put("/{id}", h.updateCoordinate)
	r.Delete("/{id}", h.deleteCoordinate)
}

// PublicList serves the unauthenticated office listing.
func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.PublicList(r.Context())
	if err != nil {
		h.logger.Error("public office list", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []PublicOffice{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list offices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Office{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	office, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, office)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateOfficeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	office, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, office)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateOfficeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	office, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, office)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "office deleted"})
}

// FloorPlan serves the rectangle layout; the public site renders it too.
func (h *Handler) FloorPlan(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.FloorPlan(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []FloorPlanCoordinate{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) replaceFloorPlan(w http.ResponseWriter, r *http.Request) {
	var reqs []SaveCoordinateRequest
	if err := httpx.DecodeJSON(r, &reqs); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	coords, err := h.service.ReplaceFloorPlan(r.Context(), reqs)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if coords == nil {
		coords = []FloorPlanCoordinate{}
	}
	httpx.JSON(w, http.StatusOK, coords)
}

func (h *Handler) updateCoordinate(w http.ResponseWriter, r *http.Request) {
	var req SaveCoordinateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	coord, err := h.service.SaveCoordinate(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, coord)
}

func (h *Handler) deleteCoordinate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCoordinate(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "coordinate deleted"})
}
