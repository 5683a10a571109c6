package domain

// Compatibility is the verdict of checking two specs, units or
// references against each other.
type Compatibility struct {
	// Left and Right are the normalized renderings of the operands.
	Left, Right string

	// Equal is true when the normalized forms are structurally
	// identical.
	Equal bool

	// Interconvertible is true when the operands may legally
	// interoperate even if not identical.
	Interconvertible bool

	// Reason explains a negative verdict, empty otherwise.
	Reason string
}

// UnitReport describes a unit and the quantity spec it measures.
type UnitReport struct {
	// Unit is the normalized unit rendering.
	Unit string

	// Spec is the associated quantity spec.
	Spec string

	// Dimension is the spec's dimension rendering.
	Dimension string

	// Base is the unit's base-unit expansion.
	Base string

	// Factor is the scale toward the base expansion.
	Factor float64
}

// ResolvedReference is the result of common-reference resolution.
type ResolvedReference struct {
	// Spec is the common quantity spec.
	Spec string

	// Unit is the common unit.
	Unit string

	// Reference is the combined spec[unit] rendering.
	Reference string
}
