package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tna-office/backoffice/internal/auth"
	"github.com/tna-office/backoffice/internal/bookings"
	"github.com/tna-office/backoffice/internal/clients"
	"github.com/tna-office/backoffice/internal/invoices"
	"github.com/tna-office/backoffice/internal/monthly"
	"github.com/tna-office/backoffice/internal/observability"
	"github.com/tna-office/backoffice/internal/offices"
	"github.com/tna-office/backoffice/internal/parking"
	"github.com/tna-office/backoffice/internal/products"
	"github.com/tna-office/backoffice/internal/profiles"
	"github.com/tna-office/backoffice/internal/quotes"
	"github.com/tna-office/backoffice/internal/reports"
	"github.com/tna-office/backoffice/internal/requests"
	"github.com/tna-office/backoffice/internal/resources"
	"github.com/tna-office/backoffice/internal/sales"
	"github.com/tna-office/backoffice/internal/tickets"
	"github.com/tna-office/backoffice/internal/uf"
	"github.com/tna-office/backoffice/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	TokenManager *auth.TokenManager
	Accounts     auth.AccountSource

	AuthHandler      *auth.Handler
	UsersHandler     *users.Handler
	ProfilesHandler  *profiles.Handler
	ClientsHandler   *clients.Handler
	OfficesHandler   *offices.Handler
	ParkingHandler   *parking.Handler
	ResourcesHandler *resources.Handler
	BookingsHandler  *bookings.Handler
	ProductsHandler  *products.Handler
	MonthlyHandler   *monthly.Handler
	TicketsHandler   *tickets.Handler
	SalesHandler     *sales.Handler
	RequestsHandler  *requests.Handler
	QuotesHandler    *quotes.Handler
	InvoicesHandler  *invoices.Handler
	ReportsHandler   *reports.Handler
	UFHandler        *uf.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		// Unauthenticated surface: login, public catalog and fanpage intake.
		api.Route("/auth", params.AuthHandler.MountPublicRoutes)
		api.Route("/public", func(pub chi.Router) {
			params.ProductsHandler.MountPublicRoutes(pub)
			params.ResourcesHandler.MountPublicRoutes(pub)
			params.BookingsHandler.MountPublicRoutes(pub)
		})
		api.Get("/offices/public/all", params.OfficesHandler.PublicList)
		api.Get("/floor-plan-coordinates", params.OfficesHandler.FloorPlan)
		api.Post("/quotes/public", params.QuotesHandler.CreatePublic)
		api.Post("/requests", params.RequestsHandler.CreatePublic)
		api.Get("/uf", params.UFHandler.Current)

		api.Group(func(priv chi.Router) {
			priv.Use(auth.Middleware(params.TokenManager, params.Accounts))

			priv.Route("/auth/me", params.AuthHandler.MountProtectedRoutes)
			priv.Route("/users", params.UsersHandler.MountRoutes)
			priv.Get("/comisionistas", params.UsersHandler.Comisionistas)
			priv.Route("/profiles", params.ProfilesHandler.MountRoutes)
			priv.Get("/modules", params.ProfilesHandler.Modules)
			priv.Route("/clients", params.ClientsHandler.MountRoutes)
			priv.Route("/offices", params.OfficesHandler.MountRoutes)
			priv.Route("/floor-plan-coordinates", params.OfficesHandler.MountFloorPlanRoutes)
			priv.Route("/parking-storage", params.ParkingHandler.MountRoutes)
			priv.Route("/rooms", params.ResourcesHandler.MountRoomRoutes)
			priv.Route("/booths", params.ResourcesHandler.MountBoothRoutes)
			priv.Route("/bookings", params.BookingsHandler.MountRoutes)
			priv.Route("/products", params.ProductsHandler.MountRoutes)
			priv.Route("/categories", params.ProductsHandler.MountCategoryRoutes)
			priv.Route("/monthly-services-catalog", params.MonthlyHandler.MountCatalogRoutes)
			priv.Route("/monthly-services", params.MonthlyHandler.MountServiceRoutes)
			priv.Route("/tickets", params.TicketsHandler.MountRoutes)
			priv.Route("/sales", params.SalesHandler.MountRoutes)
			priv.Route("/requests", params.RequestsHandler.MountRoutes)
			priv.Route("/quotes", params.QuotesHandler.MountRoutes)
			priv.Route("/quote-templates", params.QuotesHandler.MountTemplateRoutes)
			priv.Route("/invoices", params.InvoicesHandler.MountRoutes)
			priv.Route("/reports", params.ReportsHandler.MountRoutes)
			priv.Get("/dashboard/stats", params.ReportsHandler.DashboardStats)
			// Older front-end builds still call the reversed path.
			priv.Get("/stats/dashboard", params.ReportsHandler.DashboardStats)
			priv.Get("/contracts/expiring-soon", params.ReportsHandler.ExpiringContracts)
		})
	})

	return r
}
