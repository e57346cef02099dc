package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stwalsh4118/landregistry/internal/config"
	"github.com/stwalsh4118/landregistry/internal/database"
	"github.com/stwalsh4118/landregistry/internal/fixtures"
	"github.com/stwalsh4118/landregistry/internal/handlers"
	"github.com/stwalsh4118/landregistry/internal/logger"
	"github.com/stwalsh4118/landregistry/internal/middleware"
	"github.com/stwalsh4118/landregistry/internal/repository"
)

const (
	shutdownTimeout = 30 * time.Second
	startupTimeout  = 30 * time.Second
)

// memoryPinger reports the in-process store as always reachable.
type memoryPinger struct{}

func (memoryPinger) Ping(context.Context) error { return nil }

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithOptions(cfg.Server.Env, logger.Options{Level: cfg.Server.LogLevel})
	log.Info("Starting land registry API", map[string]interface{}{
		"version":     "1.0.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
		"store":       cfg.Database.Driver,
	})

	store, pinger, closeStore := openStore(cfg, log)
	defer closeStore()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origin))

	handlers.RegisterRoutes(router, handlers.NewHandlers(store, pinger, log, cfg.Server.Env, cfg.Database.Driver))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}

// openStore builds the configured backing store, applying migrations and
// loading the demo dataset when enabled. Startup failures are fatal.
func openStore(cfg *config.Config, log *logger.Logger) (*repository.Store, handlers.Pinger, func()) {
	if cfg.Database.Driver == config.DriverMemory {
		ds := fixtures.Dataset{}
		if cfg.Database.Seed {
			ds = fixtures.Demo()
		}
		store, err := repository.NewMemoryStore(ds)
		if err != nil {
			log.Fatal("Failed to load in-memory store", err, nil)
		}
		log.Info("In-memory store loaded", map[string]interface{}{
			"parcels": len(ds.Parcels),
			"users":   len(ds.Users),
		})
		return store, memoryPinger{}, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"url": config.RedactDatabaseURL(cfg.Database.URL),
		})
	}

	log.Info("Database connection established", map[string]interface{}{
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		log.Fatal("Failed to apply migrations", err, nil)
	}

	if cfg.Database.Seed {
		result, err := db.SeedIfEmpty(ctx, fixtures.Demo())
		if err != nil {
			db.Close()
			if errors.Is(err, database.ErrConstraintViolation) {
				log.Fatal("Demo data violates a schema constraint", err, nil)
			}
			log.Fatal("Failed to seed demo data", err, nil)
		}
		if result.Seeded {
			log.Info("Demo data loaded", map[string]interface{}{
				"parcels": result.Parcels,
				"users":   result.Users,
			})
		}
	}

	return repository.NewPostgresStore(db), db, db.Close
}
