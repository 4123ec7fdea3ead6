// Package bootstrap opens the configured virtual item store for the server
// and the CLI.
package bootstrap

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/database"
	repo "github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/repository/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/itemcsv"
)

// Store is an opened repository plus the hooks that depend on its backend.
type Store struct {
	Repository domain.Repository
	db         *gorm.DB
}

// DatabaseConfig maps the service configuration onto the database layer.
func DatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        database.ParseLogLevel(cfg.DBLogLevel),
	}
}

// OpenStore selects the backend named by STORE_BACKEND. The database
// backend is connected and migrated before it is returned.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Info().Msg("using in-memory virtual item store")
		return &Store{Repository: repo.NewInMemoryRepository()}, nil
	}

	db, err := database.Connect(DatabaseConfig(cfg), log)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("using database virtual item store")
	return &Store{Repository: repo.NewGormRepository(db), db: db}, nil
}

// Ready pings the database; the in-memory store is always ready.
func (s *Store) Ready(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return database.Ping(ctx, s.db)
}

// Close releases the database connection pool.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedFromCSV imports the file at path when the store holds no items yet.
func SeedFromCSV(ctx context.Context, service domain.Service, path string, log zerolog.Logger) error {
	if path == "" {
		return nil
	}
	existing, err := service.ListPage(ctx, domain.Filter{}, domain.PageRequest{Page: 1, Limit: 1})
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		log.Info().Int64("items", existing.Total).Msg("catalog not empty, skipping seed")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	rows, err := itemcsv.Decode(string(data))
	if err != nil {
		return err
	}
	result, err := service.Import(ctx, itemcsv.ToFieldsList(rows))
	if err != nil {
		return err
	}
	log.Info().
		Str("path", path).
		Int("imported", len(result.Imported)).
		Int("skipped", len(result.Skipped)).
		Msg("seeded catalog from CSV")
	return nil
}
