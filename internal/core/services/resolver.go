package services

import (
	"context"
	"fmt"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driving"
	"github.com/veridian-labs/dimens-cli/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driving.ResolverService = (*Resolver)(nil)

// Resolver answers dimensional-analysis questions against the catalog
// manager's live registry.
type Resolver struct {
	catalog *CatalogManager
}

// NewResolver creates a resolver over the given catalog manager.
func NewResolver(catalog *CatalogManager) *Resolver {
	return &Resolver{catalog: catalog}
}

// Check parses two spec expressions (unit names coerce through their
// associated spec) and reports equality and interconvertibility.
func (r *Resolver) Check(ctx context.Context, left, right string) (domain.Compatibility, error) {
	reg := r.catalog.Registry()

	lNode, err := parseExpr(left)
	if err != nil {
		return domain.Compatibility{}, err
	}
	rNode, err := parseExpr(right)
	if err != nil {
		return domain.Compatibility{}, err
	}
	lSpec, err := evalLooseSpec(reg, lNode)
	if err != nil {
		return domain.Compatibility{}, err
	}
	rSpec, err := evalLooseSpec(reg, rNode)
	if err != nil {
		return domain.Compatibility{}, err
	}

	verdict := domain.Compatibility{
		Left:             lSpec.String(),
		Right:            rSpec.String(),
		Equal:            domain.SpecEqual(lSpec, rSpec),
		Interconvertible: domain.Interconvertible(lSpec, rSpec),
	}
	if !verdict.Interconvertible {
		if !lSpec.Dimension().Equal(rSpec.Dimension()) {
			verdict.Reason = fmt.Sprintf("dimensions differ: %s vs %s",
				lSpec.Dimension(), rSpec.Dimension())
		} else {
			verdict.Reason = "same dimension but unrelated kind families"
		}
	}
	logger.Debug("Check %q vs %q: equal=%t interconvertible=%t",
		left, right, verdict.Equal, verdict.Interconvertible)
	return verdict, nil
}

// Common parses two or more references and resolves their common
// reference.
func (r *Resolver) Common(ctx context.Context, refs ...string) (domain.ResolvedReference, error) {
	reg := r.catalog.Registry()

	parsed := make([]domain.Reference, len(refs))
	for i, s := range refs {
		ref, err := ParseReference(reg, s)
		if err != nil {
			return domain.ResolvedReference{}, fmt.Errorf("reference %q: %w", s, err)
		}
		parsed[i] = ref
	}
	common, err := domain.CommonReference(parsed...)
	if err != nil {
		return domain.ResolvedReference{}, err
	}
	return domain.ResolvedReference{
		Spec:      common.Spec().String(),
		Unit:      common.Unit().String(),
		Reference: common.String(),
	}, nil
}

// UnitSpec parses a unit expression and reports the quantity spec it
// measures plus its base-unit expansion.
func (r *Resolver) UnitSpec(ctx context.Context, expr string) (domain.UnitReport, error) {
	reg := r.catalog.Registry()

	unit, err := ParseUnit(reg, expr)
	if err != nil {
		return domain.UnitReport{}, err
	}
	spec, err := domain.AssociatedSpec(unit)
	if err != nil {
		return domain.UnitReport{}, err
	}
	base, factor := domain.BaseExpansion(unit)
	return domain.UnitReport{
		Unit:      unit.String(),
		Spec:      spec.String(),
		Dimension: spec.Dimension().String(),
		Base:      base.String(),
		Factor:    factor,
	}, nil
}
