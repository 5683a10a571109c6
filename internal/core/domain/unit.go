package domain

import (
	"fmt"
	"math"
)

// Unit is a unit of measure: either a named unit (base or scaled) or a
// derived unit built structurally as a product of powers of named
// units. The set of implementations is closed.
type Unit interface {
	// String renders the unit's symbol form, e.g. "km / h".
	String() string

	isUnit()
}

// NamedUnit is an atomic unit declaration. A base unit is anchored to
// the quantity kind it measures; a scaled unit names a reference unit
// and a scale factor (e.g. kilometre = 1000 metre). Identity is by
// interned declaration.
type NamedUnit struct {
	name   string
	symbol string
	ord    int64
	kind   *NamedSpec
	ref    Unit
	scale  float64
}

// One is the dimensionless identity unit. An expression whose product
// is empty is exactly this value.
var One = &NamedUnit{name: "one", symbol: "1", scale: 1}

// NewBaseUnit interns a base unit anchored to the quantity kind it
// measures (e.g. metre anchored to length).
func NewBaseUnit(name, symbol string, kind *NamedSpec) (*NamedUnit, error) {
	if name == "" || kind == nil {
		return nil, fmt.Errorf("%w: base unit needs a name and a quantity kind", ErrInvalidInput)
	}
	if symbol == "" {
		symbol = name
	}
	return &NamedUnit{name: name, symbol: symbol, ord: nextOrd(), kind: kind, scale: 1}, nil
}

// NewScaledUnit interns a named unit defined as a positive multiple of
// a reference unit. A scale of 1 declares an alias (e.g. hertz for
// one / second).
func NewScaledUnit(name, symbol string, scale float64, ref Unit) (*NamedUnit, error) {
	if name == "" || ref == nil {
		return nil, fmt.Errorf("%w: scaled unit needs a name and a reference unit", ErrInvalidInput)
	}
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return nil, fmt.Errorf("%w: unit scale must be a positive finite number", ErrInvalidInput)
	}
	if symbol == "" {
		symbol = name
	}
	return &NamedUnit{name: name, symbol: symbol, ord: nextOrd(), ref: ref, scale: scale}, nil
}

// Name returns the declared name.
func (u *NamedUnit) Name() string { return u.name }

// Symbol returns the declared symbol.
func (u *NamedUnit) Symbol() string { return u.symbol }

// ReferenceUnit returns the unit this one is scaled from, or nil for
// base units and the identity.
func (u *NamedUnit) ReferenceUnit() Unit { return u.ref }

// Scale returns the declared multiplier toward the reference unit.
func (u *NamedUnit) Scale() float64 { return u.scale }

// String returns the unit symbol.
func (u *NamedUnit) String() string { return u.symbol }

func (u *NamedUnit) isUnit() {}

// DerivedUnit is a normalized product of powers of named units, split
// into numerator and denominator products. Instances are only produced
// by normalization and are always canonical.
type DerivedUnit struct {
	num []exprTerm[*NamedUnit]
	den []exprTerm[*NamedUnit]
}

// String renders the normalized expression from unit symbols.
func (u *DerivedUnit) String() string {
	return formatTerms(u.num, u.den, (*NamedUnit).Symbol, One.symbol)
}

func (u *DerivedUnit) isUnit() {}

func unitOrd(u *NamedUnit) int64 { return u.ord }

func flattenUnit(u Unit) []exprTerm[*NamedUnit] {
	switch x := u.(type) {
	case *NamedUnit:
		if x == One {
			return nil
		}
		return []exprTerm[*NamedUnit]{{atom: x, exp: ExpOne}}
	case *DerivedUnit:
		return joinSigned(x.num, x.den)
	default:
		return nil
	}
}

func normalizeUnit(ts []exprTerm[*NamedUnit]) Unit {
	kept := ts[:0:0]
	for _, t := range ts {
		if t.atom == One {
			continue
		}
		kept = append(kept, t)
	}
	merged := mergeTerms(kept, unitOrd)
	if len(merged) == 0 {
		return One
	}
	if len(merged) == 1 && merged[0].exp.IsOne() {
		return merged[0].atom
	}
	num, den := splitSigned(merged)
	return &DerivedUnit{num: num, den: den}
}

// MulUnit returns the normalized product of two units. Units carry no
// character, so unit arithmetic is total.
func MulUnit(a, b Unit) Unit {
	return normalizeUnit(append(flattenUnit(a), flattenUnit(b)...))
}

// DivUnit returns the normalized quotient of two units.
func DivUnit(a, b Unit) Unit {
	return normalizeUnit(append(flattenUnit(a), negTerms(flattenUnit(b))...))
}

// PowUnit raises a unit to a rational exponent.
func PowUnit(a Unit, e Exponent) Unit {
	if e.IsZero() {
		return One
	}
	return normalizeUnit(powTerms(flattenUnit(a), e))
}

// UnitEqual reports exact structural equality of two normalized units.
func UnitEqual(a, b Unit) bool {
	switch x := a.(type) {
	case *NamedUnit:
		y, ok := b.(*NamedUnit)
		return ok && x == y
	case *DerivedUnit:
		y, ok := b.(*DerivedUnit)
		return ok && termsEqual(x.num, y.num) && termsEqual(x.den, y.den)
	default:
		return false
	}
}

// AssociatedSpec walks a unit's definition to discover the quantity
// spec it naturally measures: a scaled unit delegates to its reference
// unit, a derived unit resolves each side of its quotient and divides
// the results, and a base unit returns its declared quantity kind.
func AssociatedSpec(u Unit) (QuantitySpec, error) {
	switch x := u.(type) {
	case *NamedUnit:
		if x == One {
			return Dimensionless, nil
		}
		if x.ref != nil {
			return AssociatedSpec(x.ref)
		}
		return x.kind, nil
	case *DerivedUnit:
		spec := QuantitySpec(Dimensionless)
		for _, t := range joinSigned(x.num, x.den) {
			s, err := AssociatedSpec(t.atom)
			if err != nil {
				return nil, err
			}
			p, err := PowSpec(s, t.exp)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", u, err)
			}
			if spec, err = MulSpec(spec, p); err != nil {
				return nil, fmt.Errorf("resolving %s: %w", u, err)
			}
		}
		return spec, nil
	default:
		return nil, fmt.Errorf("%w: unknown unit %T", ErrMalformedExpression, u)
	}
}

// UnitInterconvertible reports whether two units measure
// interconvertible quantity specs (e.g. kilometre and mile).
func UnitInterconvertible(a, b Unit) bool {
	sa, err := AssociatedSpec(a)
	if err != nil {
		return false
	}
	sb, err := AssociatedSpec(b)
	if err != nil {
		return false
	}
	return Interconvertible(sa, sb)
}

// baseExpansion expands a unit into merged base-unit terms plus the
// accumulated scale factor relative to that expansion.
func baseExpansion(u Unit) ([]exprTerm[*NamedUnit], float64) {
	switch x := u.(type) {
	case *NamedUnit:
		if x == One {
			return nil, 1
		}
		if x.ref != nil {
			terms, f := baseExpansion(x.ref)
			return terms, x.scale * f
		}
		return []exprTerm[*NamedUnit]{{atom: x, exp: ExpOne}}, 1
	case *DerivedUnit:
		var terms []exprTerm[*NamedUnit]
		factor := 1.0
		for _, t := range joinSigned(x.num, x.den) {
			sub, f := baseExpansion(t.atom)
			terms = append(terms, powTerms(sub, t.exp)...)
			factor *= math.Pow(f, t.exp.Float())
		}
		return mergeTerms(terms, unitOrd), factor
	default:
		return nil, 1
	}
}

// BaseExpansion returns the normalized base-unit form of a unit and the
// scale factor toward it, e.g. km / h expands to m / s with factor
// 1000/3600. The factor is declaration data used for deterministic
// common-unit selection, never for magnitude conversion.
func BaseExpansion(u Unit) (Unit, float64) {
	terms, factor := baseExpansion(u)
	return normalizeUnit(terms), factor
}
