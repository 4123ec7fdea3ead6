package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

func newEngine(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware...)
	return engine
}

func TestRequestIDPropagatesToContext(t *testing.T) {
	engine := newEngine(RequestID())
	var fromGin, fromCtx string
	engine.GET("/ping", func(c *gin.Context) {
		fromGin = RequestIDFromContext(c)
		fromCtx, _ = c.Request.Context().Value(platformerrors.RequestIDKey{}).(string)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	generated := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, fromGin)
	assert.Equal(t, generated, fromCtx)
}

func TestCORSWildcard(t *testing.T) {
	engine := newEngine(CORSMiddleware([]string{"*"}))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://anywhere.test")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestLoggingMiddlewareRecordsErrors(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	engine := newEngine(RequestID(), LoggingMiddleware(log))
	engine.GET("/v1/virtual-items/:id", func(c *gin.Context) {
		err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute, platformerrors.ErrorTypeNotFound,
			"virtual item not found", nil, "2f0c4a38-9f6e-4b8e-a3a4-5c7b1e2d9f10")
		_ = c.Error(err)
		c.Status(http.StatusNotFound)
	})
	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/v1/virtual-items/abc", nil)
	req.Header.Set("X-Request-Id", "req-42")
	engine.ServeHTTP(httptest.NewRecorder(), req)
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "health checks log at debug level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "abc", entry["item_id"])
	assert.Equal(t, "2f0c4a38-9f6e-4b8e-a3a4-5c7b1e2d9f10", entry["error_code"])
	assert.Equal(t, "/v1/virtual-items/:id", entry["route"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
}

func TestTracingMiddlewareWithoutProvider(t *testing.T) {
	engine := newEngine(TracingMiddleware("catalog-test"))
	var ctx context.Context
	engine.GET("/ping", func(c *gin.Context) {
		ctx = c.Request.Context()
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, ctx)
}
