package uf

import (
	"errors"
	"net/http"

	"github.com/tna-office/backoffice/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Current serves the UF indicator document.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.Current(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			httpx.Problem(w, http.StatusBadGateway, "Bad Gateway", "could not fetch the UF value")
			return
		}
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
