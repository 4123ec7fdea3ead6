package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
)

func TestSetupDisabled(t *testing.T) {
	for _, cfg := range []*config.Config{
		{EnableTracing: false, OTLPEndpoint: "collector:4318"},
		{EnableTracing: true, OTLPEndpoint: ""},
	} {
		shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	}
}
