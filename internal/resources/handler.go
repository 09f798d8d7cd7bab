package resources

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tna-office/backoffice/internal/platform/httpx"
)

// Handler coordinates HTTP requests for rooms and booths.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the resources HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoomRoutes registers room endpoints. Delete is a soft deactivate.
func (h *Handler) MountRoomRoutes(r chi.Router) {
	r.Get("/", h.listRooms)
	r.Post("/", h.createRoom)
	r.Get("/{id}", h.getRoom)
	r.Put("/{id}", h.updateRoom)
	r.Delete("/{id}", h.deactivateRoom)
}

// MountBoothRoutes registers booth endpoints.
func (h *Handler) MountBoothRoutes(r chi.Router) {
	r.Get("/", h.listBooths)
	r.Post("/", h.createBooth)
	r.Get("/{id}", h.getBooth)
	r.Put("/{id}", h.updateBooth)
	r.Delete("/{id}", h.deactivateBooth)
}

// MountPublicRoutes registers the unauthenticated listings.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/rooms", h.listPublicRooms)
	r.Get("/booths", h.listPublicBooths)
}

func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListRooms(r.Context())
	if err != nil {
		h.logger.Error("list rooms", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Room{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) listPublicRooms(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListActiveRooms(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Room{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, room)
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	room, err := h.service.CreateRoom(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, room)
}

func (h *Handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoomRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	room, err := h.service.UpdateRoom(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, room)
}

func (h *Handler) deactivateRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeactivateRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "room deactivated"})
}

func (h *Handler) listBooths(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListBooths(r.Context())
	if err != nil {
		h.logger.Error("list booths", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Booth{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) listPublicBooths(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListActiveBooths(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if items == nil {
		items = []Booth{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) getBooth(w http.ResponseWriter, r *http.Request) {
	booth, err := h.service.GetBooth(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, booth)
}

func (h *Handler) createBooth(w http.ResponseWriter, r *http.Request) {
	var req CreateBoothRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	booth, err := h.service.CreateBooth(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, booth)
}

func (h *Handler) updateBooth(w http.ResponseWriter, r *http.Request) {
	var req UpdateBoothRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	booth, err := h.service.UpdateBooth(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, booth)
}

func (h *Handler) deactivateBooth(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeactivateBooth(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "booth deactivated"})
}
