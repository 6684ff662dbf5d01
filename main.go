package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/budget-tracker/backend/internal/config"
	v1 "github.com/budget-tracker/backend/pkg/controllers/v1"
	"github.com/budget-tracker/backend/pkg/export"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/budget-tracker/backend/pkg/router"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Getenv("BUDGET_CONFIG_FILE"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.Log.Format == "" && gin.IsDebugging()) || cfg.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := cfg.LogLevel(gin.IsDebugging())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	backend, closeBackend, err := openBackend(cfg.Storage)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer closeBackend()

	registry := ledger.NewRegistry(backend, ledger.WithLogger(log.Logger))
	controller := v1.New(registry, export.Exporter{Locale: cfg.Locale()})

	r, err := router.Config(cfg.URL(), cfg.CORS.AllowOrigins)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(controller, backend, r.Group("/"), cfg.Pprof.Enabled, cfg.Metrics.Enabled)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("listen", cfg.Listen).Str("storage", cfg.Storage.Backend).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Server")
		return
	}

	log.Info().Msg("Server stopped")
}

// openBackend opens the configured storage backend. The returned function
// releases it.
func openBackend(cfg config.StorageConfig) (storage.Backend, func(), error) {
	if cfg.Backend == config.BackendMemory {
		log.Warn().Msg("Using in-memory storage, all data is lost on shutdown")
		return storage.NewMemory(), func() {}, nil
	}

	// Create the data directory
	path, _, _ := strings.Cut(cfg.DSN, "?")
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, nil, err
	}

	db, err := storage.OpenSQLite(cfg.DSN)
	if err != nil {
		return nil, nil, err
	}

	return db, func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Closing storage")
		}
	}, nil
}
