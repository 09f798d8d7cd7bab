package bookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tna-office/backoffice/internal/platform/httpx"
	"github.com/tna-office/backoffice/internal/shared"
)

// Handler coordinates HTTP requests for bookings.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the bookings HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers booking endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Post("/{id}/cancel", h.cancel)
	r.Delete("/{id}", h.delete)
}

// MountPublicRoutes registers the unauthenticated availability lookup.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/bookings/{resourceType}/{resourceID}", h.publicSlots)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list bookings", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Booking{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) publicSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.PublicSlots(r.Context(), chi.URLParam(r, "resourceType"), chi.URLParam(r, "resourceID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if slots == nil {
		slots = []PublicSlot{}
	}
	httpx.JSON(w, http.StatusOK, slots)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, booking)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	var createdBy *string
	if identity, ok := shared.IdentityFromContext(r.Context()); ok {
		createdBy = &identity.UserID
	}
	booking, err := h.service.Create(r.Context(), req, createdBy)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, booking)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	booking, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, booking)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "booking cancelled"})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "booking deleted"})
}
