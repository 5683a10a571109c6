package domain

import "fmt"

// SpecExpr is a constructor-side expression node for building a derived
// quantity spec explicitly. Valid leaf factors are named specs, the
// dimensionless identity, and powers of those; a per node groups two
// products of such leaves. A raw derived spec is a SpecExpr so that it
// can be offered as a factor, but construction rejects it: it must be
// wrapped in a power or per node first.
type SpecExpr interface {
	isSpecExpr()
}

// SpecPower is a (factor, exponent) construction node.
type SpecPower struct {
	// Factor must be a named spec or the dimensionless identity.
	Factor SpecExpr

	// Exp is the rational exponent. A zero exponent removes the factor.
	Exp Exponent
}

// SpecPer is a quotient grouping of numerator and denominator products.
type SpecPer struct {
	Num []SpecExpr
	Den []SpecExpr
}

func (SpecPower) isSpecExpr()    {}
func (SpecPer) isSpecExpr()      {}
func (*NamedSpec) isSpecExpr()   {}
func (*DerivedSpec) isSpecExpr() {}

// NewDerivedQuantitySpec builds and normalizes a derived spec from
// explicit expression nodes. Every leaf factor must be a named spec,
// the dimensionless identity, or a power of one of those; a raw derived
// spec used directly as a factor is rejected with ErrMalformedExpression.
// Factor characters combine under the character lattice; an undefined
// combination is rejected with ErrInvalidCharacter.
func NewDerivedQuantitySpec(factors ...SpecExpr) (QuantitySpec, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("%w: derived quantity spec needs at least one factor", ErrMalformedExpression)
	}
	var terms []exprTerm[*NamedSpec]
	char := CharacterScalar
	for _, f := range factors {
		ts, c, err := expandSpecExpr(f)
		if err != nil {
			return nil, err
		}
		char, err = char.Mul(c)
		if err != nil {
			return nil, err
		}
		terms = append(terms, ts...)
	}
	return normalizeSpec(terms, char), nil
}

// expandSpecExpr turns one construction node into signed factor terms
// plus the node's character contribution.
func expandSpecExpr(f SpecExpr) ([]exprTerm[*NamedSpec], Character, error) {
	switch x := f.(type) {
	case *NamedSpec:
		if x == Dimensionless {
			return nil, CharacterScalar, nil
		}
		return []exprTerm[*NamedSpec]{{atom: x, exp: ExpOne}}, x.char, nil

	case *DerivedSpec:
		return nil, "", fmt.Errorf(
			"%w: derived spec %q used as a raw factor; wrap it in a power or per node",
			ErrMalformedExpression, x)

	case SpecPower:
		named, ok := x.Factor.(*NamedSpec)
		if !ok {
			return nil, "", fmt.Errorf(
				"%w: power factor must be a named spec or dimensionless", ErrMalformedExpression)
		}
		if named == Dimensionless || x.Exp.IsZero() {
			return nil, CharacterScalar, nil
		}
		if named.char != CharacterScalar && !x.Exp.IsOne() {
			return nil, "", fmt.Errorf("%w: %s^%s", ErrInvalidCharacter, named.char, x.Exp)
		}
		return []exprTerm[*NamedSpec]{{atom: named, exp: x.Exp}}, named.char, nil

	case SpecPer:
		var terms []exprTerm[*NamedSpec]
		char := CharacterScalar
		for _, n := range x.Num {
			ts, c, err := expandPerLeaf(n)
			if err != nil {
				return nil, "", err
			}
			if char, err = char.Mul(c); err != nil {
				return nil, "", err
			}
			terms = append(terms, ts...)
		}
		for _, d := range x.Den {
			ts, c, err := expandPerLeaf(d)
			if err != nil {
				return nil, "", err
			}
			if char, err = char.Mul(c); err != nil {
				return nil, "", err
			}
			terms = append(terms, negTerms(ts)...)
		}
		return terms, char, nil

	default:
		return nil, "", fmt.Errorf("%w: unknown spec expression node %T", ErrMalformedExpression, f)
	}
}

// expandPerLeaf expands a per-node element, which may not itself be a
// per node.
func expandPerLeaf(f SpecExpr) ([]exprTerm[*NamedSpec], Character, error) {
	if _, nested := f.(SpecPer); nested {
		return nil, "", fmt.Errorf("%w: per nodes may not nest directly", ErrMalformedExpression)
	}
	return expandSpecExpr(f)
}
