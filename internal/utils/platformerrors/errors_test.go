package platformerrors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorTypeToHTTPStatus(tt.errorType))
		})
	}
}

func TestAsErrorKeepsTypeAndFields(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-1")
	inner := NewValidationError(ctx, LayerDomain, "missing required fields", []string{"title"}, "code-1")

	wrapped := AsError(ctx, LayerHandler, inner, "failed to create")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeValidation, wrapped.Type)
	assert.Equal(t, []string{"title"}, wrapped.Fields)
	assert.Equal(t, "code-1", wrapped.UUID)
	assert.Equal(t, "req-1", wrapped.RequestID)
	assert.True(t, IsErrorType(wrapped, ErrorTypeValidation))
}

func TestAsErrorPlainErrorBecomesInternal(t *testing.T) {
	wrapped := AsError(context.Background(), LayerRepository, errors.New("boom"), "query failed")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeInternal, wrapped.Type)
	assert.ErrorContains(t, wrapped, "boom")
	assert.Nil(t, AsError(context.Background(), LayerRepository, nil, "unused"))
}

func TestGetPlatformError(t *testing.T) {
	assert.Nil(t, GetPlatformError(errors.New("plain")))

	pe := NewError(context.Background(), LayerDomain, ErrorTypeNotFound, "virtual item not found", nil, "nf")
	got := GetPlatformError(errors.Join(errors.New("outer"), pe))
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type)
}

func TestNewErrorGeneratesCode(t *testing.T) {
	err := NewError(context.Background(), LayerRoute, ErrorTypeInternal, "unexpected", nil, "")
	assert.Len(t, err.UUID, 36)
	assert.Empty(t, err.RequestID)
}

func TestLogErrorLevels(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	LogError(log, NewValidationError(context.Background(), LayerDomain, "missing required fields", []string{"title"}, "v-1"))
	LogError(log, NewError(context.Background(), LayerRepository, ErrorTypeDatabaseError, "insert failed", errors.New("disk full"), "d-1"))
	LogError(log, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "warn", first["level"])
	assert.Equal(t, "v-1", first["error_code"])
	assert.Equal(t, []any{"title"}, first["fields"])
	assert.Equal(t, "error", second["level"])
	assert.Equal(t, "disk full", second["error"])
}
