package handlers

import (
	"github.com/rs/zerolog"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	VirtualItem *VirtualItemHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(virtualItemService domain.Service, log zerolog.Logger) *Provider {
	return &Provider{
		VirtualItem: NewVirtualItemHandler(virtualItemService, log),
	}
}
