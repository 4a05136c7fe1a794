package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/handlers"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/config"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/database"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/quote"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/repository"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
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
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	portfolioRepo := repository.NewPortfolioRepository(db)

	// Create services
	resolver := quote.NewResolver(quote.NewFinanceClient(), cfg.Quote.Timeout)
	valuationService := service.NewValuationService(resolver, cfg.Quote.Concurrency)
	portfolioService := service.NewPortfolioService(portfolioRepo, valuationService)
	goalService := service.NewGoalService(portfolioRepo)
	snapshotService := service.NewSnapshotService(portfolioRepo, valuationService)
	systemService := service.NewSystemService(db)

	// Create router
	router := api.NewRouter(cfg, api.Handlers{
		Portfolio: handlers.NewPortfolioHandler(portfolioService),
		Asset:     handlers.NewAssetHandler(portfolioService),
		Goal:      handlers.NewGoalHandler(goalService),
		Snapshot:  handlers.NewSnapshotHandler(snapshotService),
		Quote:     handlers.NewQuoteHandler(resolver),
		System:    handlers.NewSystemHandler(systemService),
	})

	// Optionally snapshot every portfolio on a schedule
	var scheduler *cron.Cron
	if cfg.Snapshot.Schedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Snapshot.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			if err := snapshotService.SnapshotAllUsers(ctx); err != nil {
				log.Printf("Scheduled snapshot failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid snapshot schedule %q: %v", cfg.Snapshot.Schedule, err)
		}
		scheduler.Start()
		log.Printf("Snapshot scheduler running with schedule %q", cfg.Snapshot.Schedule)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
