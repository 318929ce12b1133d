package mcp

import (
	"github.com/custodia-labs/style-selector/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Catalog lists and looks up styles.
	Catalog driving.CatalogService

	// Resolver applies styles to prompts.
	Resolver driving.ResolverService

	// History records applied batches. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Resolver == nil {
		return ErrMissingResolverService
	}
	return nil
}
