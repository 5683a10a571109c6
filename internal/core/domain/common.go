package domain

import "fmt"

// CommonQuantitySpec resolves the single spec usable when heterogeneous
// operands must be unified. It is defined only when all inputs are
// mutually interconvertible, and returns the most specific spec every
// input is interconvertible with: the deepest common ancestor over the
// declared kind hierarchy, or the shared root expansion when no named
// spec is involved.
func CommonQuantitySpec(specs ...QuantitySpec) (QuantitySpec, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("%w: common spec needs at least two operands", ErrInvalidInput)
	}
	for i := 0; i < len(specs); i++ {
		for j := i + 1; j < len(specs); j++ {
			if !Interconvertible(specs[i], specs[j]) {
				return nil, fmt.Errorf("%w: %s and %s", ErrNoCommonRepresentation, specs[i], specs[j])
			}
		}
	}

	allEqual := true
	for _, s := range specs[1:] {
		if !SpecEqual(specs[0], s) {
			allEqual = false
			break
		}
	}
	if allEqual {
		return specs[0], nil
	}

	var named []*NamedSpec
	for _, s := range specs {
		if n, ok := s.(*NamedSpec); ok {
			named = append(named, n)
		}
	}
	if len(named) > 0 {
		if common := deepestCommonAncestor(named); common != nil {
			return common, nil
		}
		return nil, fmt.Errorf("%w: %s and %s share no ancestor kind",
			ErrNoCommonRepresentation, named[0], named[len(named)-1])
	}

	// Only structural specs remain; unify on the shared root expansion.
	var terms []exprTerm[*NamedSpec]
	for atom, exp := range rootExpansion(specs[0]) {
		terms = append(terms, exprTerm[*NamedSpec]{atom: atom, exp: exp})
	}
	return normalizeSpec(terms, specs[0].Character()), nil
}

// deepestCommonAncestor walks the first spec's ancestor chain from the
// most specific end and returns the first kind present in every other
// chain, or nil when the specs live in different trees.
func deepestCommonAncestor(named []*NamedSpec) *NamedSpec {
	for _, candidate := range kindChain(named[0]) {
		shared := true
		for _, other := range named[1:] {
			if !chainContains(other, candidate) {
				shared = false
				break
			}
		}
		if shared {
			return candidate
		}
	}
	return nil
}

func chainContains(s, candidate *NamedSpec) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// CommonUnit resolves the single unit usable when heterogeneous
// operands must be unified. It is defined only when all inputs measure
// interconvertible specs and expand to the same base units; it picks
// the finest unit (smallest scale toward the shared base expansion) and
// keeps the left-most operand on an exact scale tie, so the result is
// reproducible across calls.
func CommonUnit(units ...Unit) (Unit, error) {
	if len(units) < 2 {
		return nil, fmt.Errorf("%w: common unit needs at least two operands", ErrInvalidInput)
	}
	for i := 0; i < len(units); i++ {
		for j := i + 1; j < len(units); j++ {
			if !UnitInterconvertible(units[i], units[j]) {
				return nil, fmt.Errorf("%w: %s and %s", ErrNoCommonRepresentation, units[i], units[j])
			}
		}
	}

	baseTerms, bestFactor := baseExpansion(units[0])
	best := units[0]
	for _, u := range units[1:] {
		terms, factor := baseExpansion(u)
		if !termsEqual(terms, baseTerms) {
			return nil, fmt.Errorf("%w: %s and %s have no shared base unit",
				ErrNoCommonRepresentation, units[0], u)
		}
		if factor < bestFactor {
			best, bestFactor = u, factor
		}
	}
	return best, nil
}

// CommonReference combines the two resolvers: the result pairs the
// common spec of the spec sides with the common unit of the unit sides.
// The combination is rejected before any arithmetic proceeds when
// either resolution fails.
func CommonReference(refs ...Reference) (Reference, error) {
	if len(refs) < 2 {
		return Reference{}, fmt.Errorf("%w: common reference needs at least two operands", ErrInvalidInput)
	}
	specs := make([]QuantitySpec, len(refs))
	units := make([]Unit, len(refs))
	for i, r := range refs {
		specs[i] = r.spec
		units[i] = r.unit
	}
	spec, err := CommonQuantitySpec(specs...)
	if err != nil {
		return Reference{}, err
	}
	unit, err := CommonUnit(units...)
	if err != nil {
		return Reference{}, err
	}
	return NewReference(spec, unit)
}
