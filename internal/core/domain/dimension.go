package domain

// BaseDimension is an atomic, independently declared physical
// dimension. Identity is by interned entity, not by structural content;
// two base dimensions are the same dimension only if they are the same
// declaration.
type BaseDimension struct {
	name   string
	symbol string
	ord    int64
}

// NewBaseDimension interns a new base dimension. The declaration order
// fixes the canonical factor ordering inside derived dimensions.
func NewBaseDimension(name, symbol string) *BaseDimension {
	return &BaseDimension{name: name, symbol: symbol, ord: nextOrd()}
}

// Name returns the declared name.
func (d *BaseDimension) Name() string { return d.name }

// Symbol returns the declared symbol (e.g. "L" for length).
func (d *BaseDimension) Symbol() string { return d.symbol }

// Dimension is a normalized product of powers of base dimensions.
// The zero value is the dimensionless identity. Dimensions always
// combine validly, so the arithmetic never errors.
type Dimension struct {
	terms []exprTerm[*BaseDimension]
}

// DimensionOne is the dimensionless identity.
var DimensionOne = Dimension{}

// Dim returns the dimension consisting of the single base dimension d.
func (d *BaseDimension) Dim() Dimension {
	return Dimension{terms: []exprTerm[*BaseDimension]{{atom: d, exp: ExpOne}}}
}

func dimOrd(d *BaseDimension) int64 { return d.ord }

func normalizeDimension(ts []exprTerm[*BaseDimension]) Dimension {
	return Dimension{terms: mergeTerms(ts, dimOrd)}
}

// Mul returns the normalized product of two dimensions.
func (d Dimension) Mul(o Dimension) Dimension {
	ts := make([]exprTerm[*BaseDimension], 0, len(d.terms)+len(o.terms))
	ts = append(ts, d.terms...)
	ts = append(ts, o.terms...)
	return normalizeDimension(ts)
}

// Div returns the normalized quotient of two dimensions.
func (d Dimension) Div(o Dimension) Dimension {
	ts := make([]exprTerm[*BaseDimension], 0, len(d.terms)+len(o.terms))
	ts = append(ts, d.terms...)
	ts = append(ts, negTerms(o.terms)...)
	return normalizeDimension(ts)
}

// Pow raises the dimension to a rational exponent.
func (d Dimension) Pow(e Exponent) Dimension {
	if e.IsZero() {
		return DimensionOne
	}
	return normalizeDimension(powTerms(d.terms, e))
}

// Equal reports structural equality of the normalized forms.
func (d Dimension) Equal(o Dimension) bool {
	return termsEqual(d.terms, o.terms)
}

// IsOne reports whether the dimension is the dimensionless identity.
func (d Dimension) IsOne() bool { return len(d.terms) == 0 }

// String renders the dimension from its base symbols, e.g. "L / T".
func (d Dimension) String() string {
	num, den := splitSigned(d.terms)
	return formatTerms(num, den, (*BaseDimension).Symbol, "1")
}
