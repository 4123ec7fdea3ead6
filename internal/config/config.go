package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
)

// Config holds the environment driven configuration for the catalog service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"virtual-item-catalog"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTLPInsecure    bool          `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	TraceSampleRate float64       `env:"TRACE_SAMPLE_RATE" envDefault:"1"`
	ServiceVersion  string        `env:"SERVICE_VERSION" envDefault:"dev"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:8080"`

	StoreBackend   string        `env:"STORE_BACKEND" envDefault:"database"`
	DBDriver       string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL    string        `env:"DATABASE_URL" envDefault:"file:catalog.db?_pragma=busy_timeout(5000)"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	DBLogLevel     string        `env:"DB_LOG_LEVEL" envDefault:"warn"`

	DefaultPageSize int    `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int    `env:"MAX_PAGE_SIZE" envDefault:"100"`
	MaxImportBytes  int64  `env:"MAX_IMPORT_BYTES" envDefault:"10485760"`
	SeedCSVPath     string `env:"SEED_CSV_PATH" envDefault:""`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field rules that struct tags cannot express.
func (c *Config) Validate() error {
	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))

	switch c.StoreBackend {
	case BackendMemory:
	case BackendDatabase:
		if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
			return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
		}
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND is database")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be memory or database, got %q", c.StoreBackend)
	}

	if c.MaxPageSize < 1 {
		return fmt.Errorf("MAX_PAGE_SIZE must be positive")
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be between 1 and MAX_PAGE_SIZE")
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("TRACE_SAMPLE_RATE must be between 0 and 1")
	}
	if c.MaxImportBytes < 1 {
		return fmt.Errorf("MAX_IMPORT_BYTES must be positive")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
