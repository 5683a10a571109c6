package driving

import (
	"context"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

// ResolverService answers dimensional-analysis questions about spec and
// unit expressions written in the catalog's vocabulary.
type ResolverService interface {
	// Check parses two quantity-spec expressions and reports whether
	// they are structurally equal and whether they are interconvertible.
	Check(ctx context.Context, left, right string) (domain.Compatibility, error)

	// Common parses two or more bound references ("spec@unit") and
	// resolves the single reference all of them can be represented in.
	Common(ctx context.Context, refs ...string) (domain.ResolvedReference, error)

	// UnitSpec parses a unit expression and reports its associated
	// quantity spec, dimension, and base-unit expansion.
	UnitSpec(ctx context.Context, expr string) (domain.UnitReport, error)
}
