package mcp

import (
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Resolver answers compatibility and common-reference questions.
	Resolver driving.ResolverService

	// Catalog exposes the declared catalog. Optional; without it the
	// catalog resource reads as empty.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Resolver == nil {
		return ErrMissingResolverService
	}
	return nil
}
