package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fireflyapp/firefly-server/internal/api"
	"github.com/fireflyapp/firefly-server/internal/config"
	"github.com/fireflyapp/firefly-server/internal/database"
	"github.com/fireflyapp/firefly-server/internal/repository"
	"github.com/fireflyapp/firefly-server/internal/scheduler"
	"github.com/fireflyapp/firefly-server/internal/service"
	"github.com/fireflyapp/firefly-server/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	snapshotRepo := repository.NewSnapshotRepository(db)
	holdingsRepo := repository.NewHoldingsRepository(db)
	priceCacheRepo := repository.NewPriceCacheRepository(db)

	// Quote provider client
	quoteClient := yahoo.NewFinanceClient()

	// Create services
	systemService := service.NewSystemService(db)
	quoteService := service.NewQuoteService(quoteClient)
	holdingsService := service.NewHoldingsService(holdingsRepo)
	priceCacheService := service.NewPriceCacheService(priceCacheRepo)
	snapshotService := service.NewSnapshotService(
		holdingsRepo,
		snapshotRepo,
		quoteClient,
		cfg.Jobs.QuoteRequestDelay,
	)
	refreshService := service.NewPriceRefreshService(
		holdingsRepo,
		priceCacheRepo,
		quoteClient,
		cfg.Jobs.QuoteRequestDelay,
	)

	// Start background jobs
	jobScheduler, err := scheduler.New(
		snapshotService,
		refreshService,
		cfg.Jobs.SnapshotTime,
		cfg.Jobs.RefreshInterval,
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := jobScheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Create router
	router := api.NewRouter(systemService, quoteService, snapshotService, holdingsService, priceCacheService, snapshotRepo, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	jobScheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
