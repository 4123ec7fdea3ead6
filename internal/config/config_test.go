package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendDatabase, cfg.StoreBackend)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", " Memory ")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORE_BACKEND": "redis"}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"empty dsn", map[string]string{"DATABASE_URL": " "}},
		{"default above max", map[string]string{"DEFAULT_PAGE_SIZE": "50", "MAX_PAGE_SIZE": "20"}},
		{"zero import limit", map[string]string{"MAX_IMPORT_BYTES": "0"}},
		{"bad port", map[string]string{"HTTP_PORT": "eighty"}},
		{"sample rate above one", map[string]string{"TRACE_SAMPLE_RATE": "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
