package domain

import "fmt"

// QuantitySpec is a quantity kind: either a named spec (atomic,
// optionally anchored directly to a base dimension) or a derived spec
// built structurally as a product of powers of named specs. The set of
// implementations is closed.
type QuantitySpec interface {
	// Character is the algebraic nature of the quantity.
	Character() Character

	// Dimension is the normalized dimension of the quantity.
	Dimension() Dimension

	// String renders the spec (name, or normalized expression).
	String() string

	isQuantitySpec()
}

// NamedSpec is an atomic quantity kind. Identity is by interned
// declaration, never by structural content.
type NamedSpec struct {
	name   string
	ord    int64
	char   Character
	base   bool
	dim    Dimension
	parent *NamedSpec
	def    QuantitySpec
}

// Dimensionless is the distinguished multiplicative identity of the
// spec algebra. An expression whose product is empty is exactly this
// value, never an empty-list sentinel with a different identity.
var Dimensionless = &NamedSpec{name: "dimensionless", char: CharacterScalar}

// NewBaseQuantitySpec interns a quantity kind anchored directly to a
// base dimension (e.g. length anchored to L).
func NewBaseQuantitySpec(name string, dim *BaseDimension, char Character) (*NamedSpec, error) {
	if name == "" || dim == nil {
		return nil, fmt.Errorf("%w: base quantity spec needs a name and a base dimension", ErrInvalidInput)
	}
	if char == "" {
		char = CharacterScalar
	}
	if !char.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, char)
	}
	return &NamedSpec{name: name, ord: nextOrd(), char: char, base: true, dim: dim.Dim()}, nil
}

// NewNamedQuantitySpec interns a quantity kind defined by an expression
// of other specs (e.g. speed defined as length / time). The named view
// and the expanded view stay interconvertible.
func NewNamedQuantitySpec(name string, def QuantitySpec, char Character) (*NamedSpec, error) {
	if name == "" || def == nil {
		return nil, fmt.Errorf("%w: named quantity spec needs a name and a definition", ErrInvalidInput)
	}
	if char == "" {
		char = def.Character()
	}
	if !char.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, char)
	}
	return &NamedSpec{name: name, ord: nextOrd(), char: char, dim: def.Dimension(), def: def}, nil
}

// NewKindOf interns a quantity kind declared as a specialisation of an
// existing kind (e.g. distance as a kind of length). An empty character
// inherits the parent's.
func NewKindOf(name string, parent *NamedSpec, char Character) (*NamedSpec, error) {
	if name == "" || parent == nil {
		return nil, fmt.Errorf("%w: kind-of spec needs a name and a parent", ErrInvalidInput)
	}
	if char == "" {
		char = parent.char
	}
	if !char.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, char)
	}
	return &NamedSpec{name: name, ord: nextOrd(), char: char, dim: parent.dim, parent: parent}, nil
}

// Name returns the declared name.
func (s *NamedSpec) Name() string { return s.name }

// Character returns the declared character.
func (s *NamedSpec) Character() Character { return s.char }

// Dimension returns the spec's normalized dimension.
func (s *NamedSpec) Dimension() Dimension { return s.dim }

// IsBase reports whether the spec is anchored directly to a base
// dimension.
func (s *NamedSpec) IsBase() bool { return s.base }

// Parent returns the declared parent kind, or nil for hierarchy roots.
func (s *NamedSpec) Parent() *NamedSpec { return s.parent }

// Definition returns the defining expression of a named derived spec,
// or nil for base specs and plain kind-of specs.
func (s *NamedSpec) Definition() QuantitySpec { return s.def }

// String returns the declared name.
func (s *NamedSpec) String() string { return s.name }

func (s *NamedSpec) isQuantitySpec() {}

// DerivedSpec is a normalized product of powers of named specs, split
// into numerator and denominator products so quotients keep a stable
// per grouping. Instances are only produced by normalization; they are
// always in canonical form.
type DerivedSpec struct {
	num  []exprTerm[*NamedSpec]
	den  []exprTerm[*NamedSpec]
	char Character
	dim  Dimension
}

// Character returns the computed character of the expression.
func (s *DerivedSpec) Character() Character { return s.char }

// Dimension returns the normalized dimension of the expression.
func (s *DerivedSpec) Dimension() Dimension { return s.dim }

// String renders the normalized expression, e.g. "length / time".
func (s *DerivedSpec) String() string {
	return formatTerms(s.num, s.den, (*NamedSpec).Name, Dimensionless.name)
}

func (s *DerivedSpec) isQuantitySpec() {}

func specOrd(s *NamedSpec) int64 { return s.ord }

// flattenSpec renders a spec as signed factor terms over named specs.
// The dimensionless identity contributes nothing.
func flattenSpec(q QuantitySpec) []exprTerm[*NamedSpec] {
	switch s := q.(type) {
	case *NamedSpec:
		if s == Dimensionless {
			return nil
		}
		return []exprTerm[*NamedSpec]{{atom: s, exp: ExpOne}}
	case *DerivedSpec:
		return joinSigned(s.num, s.den)
	default:
		return nil
	}
}

// normalizeSpec applies the canonicalization pass: identity factors are
// eliminated, equal factors merge by summing exponents, zero exponents
// drop their factor, factors re-sort into declaration order, an empty
// product collapses to Dimensionless, and a single remaining
// first-power factor collapses to its own named identity.
func normalizeSpec(ts []exprTerm[*NamedSpec], char Character) QuantitySpec {
	kept := ts[:0:0]
	for _, t := range ts {
		if t.atom == Dimensionless {
			continue
		}
		kept = append(kept, t)
	}
	merged := mergeTerms(kept, specOrd)
	if len(merged) == 0 {
		return Dimensionless
	}
	if len(merged) == 1 && merged[0].exp.IsOne() {
		return merged[0].atom
	}
	dim := DimensionOne
	for _, t := range merged {
		dim = dim.Mul(t.atom.dim.Pow(t.exp))
	}
	num, den := splitSigned(merged)
	return &DerivedSpec{num: num, den: den, char: char, dim: dim}
}

// MulSpec returns the normalized product of two specs. It fails when
// the operand characters have no defined product.
func MulSpec(a, b QuantitySpec) (QuantitySpec, error) {
	char, err := a.Character().Mul(b.Character())
	if err != nil {
		return nil, err
	}
	ts := append(flattenSpec(a), flattenSpec(b)...)
	return normalizeSpec(ts, char), nil
}

// DivSpec returns the normalized quotient of two specs.
func DivSpec(a, b QuantitySpec) (QuantitySpec, error) {
	char, err := a.Character().Mul(b.Character())
	if err != nil {
		return nil, err
	}
	ts := append(flattenSpec(a), negTerms(flattenSpec(b))...)
	return normalizeSpec(ts, char), nil
}

// PowSpec raises a spec to a rational exponent. Non-scalar specs only
// support the first power; any other exponent has no defined character.
func PowSpec(a QuantitySpec, e Exponent) (QuantitySpec, error) {
	if e.IsZero() {
		return Dimensionless, nil
	}
	if e.IsOne() {
		return a, nil
	}
	if a.Character() != CharacterScalar {
		return nil, fmt.Errorf("%w: %s^%s", ErrInvalidCharacter, a.Character(), e)
	}
	return normalizeSpec(powTerms(flattenSpec(a), e), a.Character()), nil
}

// SpecEqual reports exact structural equality of two normalized specs.
// Named specs compare by identity; derived specs compare factor by
// factor. Normalization guarantees a named and a derived spec never
// denote the same canonical form.
func SpecEqual(a, b QuantitySpec) bool {
	switch x := a.(type) {
	case *NamedSpec:
		y, ok := b.(*NamedSpec)
		return ok && x == y
	case *DerivedSpec:
		y, ok := b.(*DerivedSpec)
		return ok && termsEqual(x.num, y.num) && termsEqual(x.den, y.den)
	default:
		return false
	}
}

// kindChain lists a named spec and its ancestors up to the hierarchy
// root, most specific first.
func kindChain(s *NamedSpec) []*NamedSpec {
	var chain []*NamedSpec
	for cur := s; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// kindRoot returns the topmost ancestor of a named spec.
func kindRoot(s *NamedSpec) *NamedSpec {
	cur := s
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// rootExpansion expands a spec to a product of powers of hierarchy-root
// kinds, recursively expanding named definitions. Two specs with equal
// expansions measure the same underlying quantity.
func rootExpansion(q QuantitySpec) map[*NamedSpec]Exponent {
	out := make(map[*NamedSpec]Exponent)
	accumulateExpansion(out, q, ExpOne)
	for k, e := range out {
		if e.IsZero() {
			delete(out, k)
		}
	}
	return out
}

func accumulateExpansion(acc map[*NamedSpec]Exponent, q QuantitySpec, scale Exponent) {
	switch s := q.(type) {
	case *NamedSpec:
		if s == Dimensionless {
			return
		}
		root := kindRoot(s)
		if root.def != nil {
			accumulateExpansion(acc, root.def, scale)
			return
		}
		if cur, ok := acc[root]; ok {
			acc[root] = cur.Add(scale)
		} else {
			acc[root] = scale
		}
	case *DerivedSpec:
		for _, t := range joinSigned(s.num, s.den) {
			accumulateExpansion(acc, t.atom, scale.Mul(t.exp))
		}
	}
}

func expansionsEqual(a, b map[*NamedSpec]Exponent) bool {
	if len(a) != len(b) {
		return false
	}
	for k, e := range a {
		if o, ok := b[k]; !ok || o != e {
			return false
		}
	}
	return true
}

// Interconvertible reports whether two specs may legally interoperate
// even when their identities differ. It is weaker than equality: named
// specs are interconvertible when they share an ancestor in the
// declared kind hierarchy, and a named spec is interconvertible with
// any expression that expands to the same product of root kinds.
func Interconvertible(a, b QuantitySpec) bool {
	if SpecEqual(a, b) {
		return true
	}
	x, xNamed := a.(*NamedSpec)
	y, yNamed := b.(*NamedSpec)
	if xNamed && yNamed && x != Dimensionless && y != Dimensionless {
		return kindRoot(x) == kindRoot(y)
	}
	return expansionsEqual(rootExpansion(a), rootExpansion(b))
}
