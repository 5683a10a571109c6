package driven

import (
	"context"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

// CatalogStore provides access to the declared dimensions, kinds, and
// units that seed the algebra. Implementations handle persistence and
// format conversion; validation and interning happen in core.
type CatalogStore interface {
	// Load reads the full set of declarations from storage.
	// Declarations are returned in declaration order, which fixes the
	// canonical ordering of the entities built from them.
	Load(ctx context.Context) (domain.CatalogData, error)

	// Save persists the full set of declarations, replacing any
	// previous content. Stores that are read-only return an error.
	Save(ctx context.Context, data domain.CatalogData) error

	// Path returns a human-readable locator for the backing storage,
	// such as a file path or DSN. Purely informational.
	Path() string
}

// CatalogWatcher is implemented by stores whose backing storage can
// change underneath the process. Watch blocks until the context is
// cancelled, invoking onChange after each external modification.
type CatalogWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}
