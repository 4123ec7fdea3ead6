package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/bootstrap"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/logger"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/observability"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver"
)

// @title Virtual Item Catalog API
// @version 1.0
// @description CRUD, filtering, statistics and CSV import/export for the virtual item catalog
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open virtual item store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("close virtual item store")
		}
	}()

	virtualItemService := domain.NewService(store.Repository, log)

	if err := bootstrap.SeedFromCSV(ctx, virtualItemService, cfg.SeedCSVPath, log); err != nil {
		log.Fatal().Err(err).Str("path", cfg.SeedCSVPath).Msg("seed catalog")
	}

	httpServer, err := httpserver.New(cfg, log, virtualItemService, store.Ready)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize HTTP server")
	}
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
