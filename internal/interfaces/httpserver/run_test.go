package httpserver_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	repo "github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/repository/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver"
)

// waitForHealth polls /healthz until it answers below 400 or the timeout passes.
func waitForHealth(baseURL string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if err := checkHealth(baseURL); err == nil {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("health check timeout after %v", timeout)
}

func checkHealth(baseURL string) error {
	resp, err := http.Get(baseURL + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unhealthy: %d", resp.StatusCode)
	}
	return nil
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRunShutsDownOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPPort = freePort(t)
	cfg.ShutdownTimeout = 2 * time.Second

	service := domain.NewService(repo.NewInMemoryRepository(), zerolog.Nop())
	server, err := httpserver.New(cfg, zerolog.Nop(), service, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	require.NoError(t, waitForHealth(fmt.Sprintf("http://127.0.0.1:%d", cfg.HTTPPort), 5*time.Second))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
