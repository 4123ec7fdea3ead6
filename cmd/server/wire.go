//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/bootstrap"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/logger"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver"
)

var virtualItemSet = wire.NewSet(
	bootstrap.OpenStore,
	newRepository,
	newReadinessCheck,
	domain.NewService,
)

// BuildApplication assembles the catalog service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		newLogger,
		virtualItemSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

func newRepository(store *bootstrap.Store) domain.Repository {
	return store.Repository
}

func newReadinessCheck(store *bootstrap.Store) httpserver.ReadinessCheck {
	return store.Ready
}
