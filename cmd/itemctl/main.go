package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/bootstrap"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/logger"
)

var version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "itemctl",
	Short: "itemctl - manage the virtual item catalog from the command line",
	Long: `itemctl works directly against the catalog store configured for the
server (STORE_BACKEND, DB_DRIVER, DATABASE_URL and friends, read from the
environment or a .env file).

Examples:
  itemctl import items.csv
  itemctl export -o backup.csv
  itemctl list --platform roblox --search dragon
  itemctl stats`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// session is the service plus the store it must release.
type session struct {
	service domain.Service
	store   *bootstrap.Store
	log     zerolog.Logger
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.log.Error().Err(err).Msg("close virtual item store")
	}
}

func openSession(cmd *cobra.Command) (*session, error) {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	log, err := logger.NewWithWriter(cmd.ErrOrStderr(), level, "console")
	if err != nil {
		return nil, err
	}

	store, err := bootstrap.OpenStore(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &session{
		service: domain.NewService(store.Repository, log),
		store:   store,
		log:     log,
	}, nil
}

func loadEnvFiles() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
