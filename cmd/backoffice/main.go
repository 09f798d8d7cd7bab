package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tna-office/backoffice/internal/app"
	"github.com/tna-office/backoffice/internal/auth"
	"github.com/tna-office/backoffice/internal/bookings"
	"github.com/tna-office/backoffice/internal/clients"
	"github.com/tna-office/backoffice/internal/invoices"
	"github.com/tna-office/backoffice/internal/monthly"
	"github.com/tna-office/backoffice/internal/observability"
	"github.com/tna-office/backoffice/internal/offices"
	"github.com/tna-office/backoffice/internal/parking"
	"github.com/tna-office/backoffice/internal/platform/cache"
	"github.com/tna-office/backoffice/internal/platform/db"
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

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		logger.Error("run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, tokens)
	authHandler := auth.NewHandler(logger, authService)

	usersHandler := users.NewHandler(logger, users.NewService(users.NewRepository(pool)))
	profilesHandler := profiles.NewHandler(logger, profiles.NewService(profiles.NewRepository(pool)))
	clientsHandler := clients.NewHandler(logger, clients.NewService(clients.NewRepository(pool)))
	officesHandler := offices.NewHandler(logger, offices.NewService(offices.NewRepository(pool)))
	parkingHandler := parking.NewHandler(logger, parking.NewService(parking.NewRepository(pool)))

	resourcesService := resources.NewService(resources.NewRepository(pool))
	resourcesHandler := resources.NewHandler(logger, resourcesService)
	bookingsHandler := bookings.NewHandler(logger, bookings.NewService(bookings.NewRepository(pool), resourcesService))

	productsHandler := products.NewHandler(logger, products.NewService(products.NewRepository(pool)))
	monthlyHandler := monthly.NewHandler(logger, monthly.NewService(monthly.NewRepository(pool)))
	ticketsHandler := tickets.NewHandler(logger, tickets.NewService(tickets.NewRepository(pool)))
	salesHandler := sales.NewHandler(logger, sales.NewService(sales.NewRepository(pool)))
	requestsHandler := requests.NewHandler(logger, requests.NewService(requests.NewRepository(pool)))
	quotesHandler := quotes.NewHandler(logger, quotes.NewService(quotes.NewRepository(pool)))
	invoicesHandler := invoices.NewHandler(logger, invoices.NewService(invoices.NewRepository(pool)))
	reportsHandler := reports.NewHandler(logger, reports.NewService(reports.NewRepository(pool)))

	ufService := uf.NewService(nil, redisClient, cfg.UFAPIURL, cfg.UFCacheTTL, logger)
	ufHandler := uf.NewHandler(ufService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		TokenManager:     tokens,
		Accounts:         authRepo,
		AuthHandler:      authHandler,
		UsersHandler:     usersHandler,
		ProfilesHandler:  profilesHandler,
		ClientsHandler:   clientsHandler,
		OfficesHandler:   officesHandler,
		ParkingHandler:   parkingHandler,
		ResourcesHandler: resourcesHandler,
		BookingsHandler:  bookingsHandler,
		ProductsHandler:  productsHandler,
		MonthlyHandler:   monthlyHandler,
		TicketsHandler:   ticketsHandler,
		SalesHandler:     salesHandler,
		RequestsHandler:  requestsHandler,
		QuotesHandler:    quotesHandler,
		InvoicesHandler:  invoicesHandler,
		ReportsHandler:   reportsHandler,
		UFHandler:        ufHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
