package driving

import (
	"context"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

// CatalogService manages the declared catalog behind the resolver.
type CatalogService interface {
	// List returns the current declarations in declaration order.
	List(ctx context.Context) (domain.CatalogData, error)

	// Replace validates the given declarations, persists them to the
	// primary store, and rebuilds the live registry. On validation
	// failure nothing is persisted and the previous registry stays live.
	Replace(ctx context.Context, data domain.CatalogData) error

	// Reload re-reads the primary store and rebuilds the live registry.
	Reload(ctx context.Context) error

	// Path returns the locator of the primary store.
	Path() string
}
