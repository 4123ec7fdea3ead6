package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
	cfg      *config.Config
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider, cfg *config.Config) *Routes {
	return &Routes{
		handlers: handlerProvider,
		cfg:      cfg,
	}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	registerVirtualItemRoutes(group.Group("/virtual-items"), r.handlers.VirtualItem, r.cfg)
}
