package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fireflyapp/firefly-server/internal/api/handlers"
	custommiddleware "github.com/fireflyapp/firefly-server/internal/api/middleware"
	"github.com/fireflyapp/firefly-server/internal/config"
	"github.com/fireflyapp/firefly-server/internal/repository"
	"github.com/fireflyapp/firefly-server/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	quoteService *service.QuoteService,
	snapshotService *service.SnapshotService,
	holdingsService *service.HoldingsService,
	priceCacheService *service.PriceCacheService,
	snapshotRepo *repository.SnapshotRepository,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		quoteHandler := handlers.NewQuoteHandler(quoteService)
		r.Get("/quote", quoteHandler.Quote)

		snapshotHandler := handlers.NewSnapshotHandler(snapshotRepo, snapshotService)
		r.Get("/snapshots", snapshotHandler.Snapshots)
		r.Post("/record-daily", snapshotHandler.RecordDaily)

		holdingsHandler := handlers.NewHoldingsHandler(holdingsService)
		r.Post("/sync-holdings", holdingsHandler.SyncHoldings)

		priceCacheHandler := handlers.NewPriceCacheHandler(priceCacheService)
		r.Get("/cached-prices", priceCacheHandler.CachedPrices)

		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})
	})

	return r
}
