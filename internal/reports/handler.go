package reports

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"github.com/tna-office/backoffice/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{reportType}/export", h.export)
}

// DashboardStats serves the landing-page summary.
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.logger.Error("dashboard stats", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

// ExpiringContracts serves the lease and document expiry alert list.
func (h *Handler) ExpiringContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.service.ExpiringContracts(r.Context())
	if err != nil {
		h.logger.Error("expiring contracts", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, contracts)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	var (
		file     *excelize.File
		filename string
		err      error
	)
	switch chi.URLParam(r, "reportType") {
	case "sales":
		file, filename, err = h.service.BuildSalesReport(r.Context())
	case "commissions":
		file, filename, err = h.service.BuildCommissionsReport(r.Context())
	default:
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "unknown report type")
		return
	}
	if err != nil {
		h.logger.Error("build report", "error", err)
		httpx.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	if _, err := file.WriteTo(w); err != nil {
		h.logger.Error("write report", "error", err)
	}
}
