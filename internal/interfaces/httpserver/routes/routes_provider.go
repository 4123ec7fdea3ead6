package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/handlers"
	v1 "github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/routes/v1"
)

// Provider registers every API version.
type Provider struct {
	v1 *v1.Routes
}

// NewProvider builds the route provider.
func NewProvider(handlerProvider *handlers.Provider, cfg *config.Config) *Provider {
	return &Provider{
		v1: v1.NewRoutes(handlerProvider, cfg),
	}
}

// Register attaches all versioned routes to the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.v1.Register(engine)
}
