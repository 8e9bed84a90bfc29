package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/avdberg/shared-ledger-backend/internal/api"
	"github.com/avdberg/shared-ledger-backend/internal/auth"
	"github.com/avdberg/shared-ledger-backend/internal/config"
	"github.com/avdberg/shared-ledger-backend/internal/database"
	"github.com/avdberg/shared-ledger-backend/internal/geo"
	"github.com/avdberg/shared-ledger-backend/internal/repository"
	"github.com/avdberg/shared-ledger-backend/internal/service"
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

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Access gate and sessions
	gate, err := auth.NewGate(cfg.Parties)
	if err != nil {
		log.Fatalf("Failed to build access gate: %v", err)
	}
	sessions, err := auth.NewSessions(cfg.Session)
	if err != nil {
		log.Fatalf("Failed to build session manager: %v", err)
	}

	// Geolocation side-channel
	var geoClient geo.Client
	if cfg.Geo.Enabled {
		geoClient = geo.NewIPInfoClient(cfg.Geo.Endpoint)
	} else {
		geoClient = geo.Disabled{}
	}

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	transactionService := service.NewTransactionService(transactionRepo, geoClient)
	ledgerService := service.NewLedgerService(transactionRepo)
	exportService := service.NewExportService(transactionRepo, cfg.Backup.Dir)

	// Create router
	router := api.NewRouter(systemService, ledgerService, transactionService, gate, sessions, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Scheduled CSV exports
	if cfg.Backup.Enabled {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.Backup.Schedule, exportService.Run); err != nil {
			log.Fatalf("Failed to schedule ledger export: %v", err)
		}
		scheduler.Start()
		log.Printf("Scheduled ledger export (%s) to %s", cfg.Backup.Schedule, cfg.Backup.Dir)

		group.Go(func() error {
			<-ctx.Done()
			<-scheduler.Stop().Done()
			return nil
		})
	}

	group.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
