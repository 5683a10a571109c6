package domain

import "fmt"

// Reference binds a quantity specification to a unit. It describes all
// the properties of a quantity besides its representation value, and is
// compared and combined pointwise over its two sides.
type Reference struct {
	spec QuantitySpec
	unit Unit
}

// NewReference binds a spec to a unit. The unit's associated spec must
// be interconvertible with the bound spec, so speed[km / h] is valid
// while speed[kg] is rejected.
func NewReference(spec QuantitySpec, unit Unit) (Reference, error) {
	if spec == nil || unit == nil {
		return Reference{}, fmt.Errorf("%w: reference needs a spec and a unit", ErrInvalidInput)
	}
	assoc, err := AssociatedSpec(unit)
	if err != nil {
		return Reference{}, err
	}
	if !Interconvertible(spec, assoc) {
		return Reference{}, fmt.Errorf("%w: %s does not measure %s", ErrIncompatibleUnit, unit, spec)
	}
	return Reference{spec: spec, unit: unit}, nil
}

// ReferenceForUnit lets a bare unit stand in for a full reference by
// resolving the quantity spec it naturally measures.
func ReferenceForUnit(u Unit) (Reference, error) {
	spec, err := AssociatedSpec(u)
	if err != nil {
		return Reference{}, err
	}
	return Reference{spec: spec, unit: u}, nil
}

// Spec returns the bound quantity specification.
func (r Reference) Spec() QuantitySpec { return r.spec }

// Unit returns the bound unit.
func (r Reference) Unit() Unit { return r.unit }

// Equal reports pointwise structural equality of both sides.
func (r Reference) Equal(o Reference) bool {
	return SpecEqual(r.spec, o.spec) && UnitEqual(r.unit, o.unit)
}

// EqualUnit reports whether a bare unit denotes the same reference:
// its associated spec must equal the bound spec and the units must
// match structurally.
func (r Reference) EqualUnit(u Unit) bool {
	assoc, err := AssociatedSpec(u)
	if err != nil {
		return false
	}
	return SpecEqual(r.spec, assoc) && UnitEqual(r.unit, u)
}

// Mul combines two references pointwise: the spec sides multiply under
// the spec algebra and the unit sides under the unit algebra.
func (r Reference) Mul(o Reference) (Reference, error) {
	spec, err := MulSpec(r.spec, o.spec)
	if err != nil {
		return Reference{}, err
	}
	return NewReference(spec, MulUnit(r.unit, o.unit))
}

// Div combines two references pointwise under division.
func (r Reference) Div(o Reference) (Reference, error) {
	spec, err := DivSpec(r.spec, o.spec)
	if err != nil {
		return Reference{}, err
	}
	return NewReference(spec, DivUnit(r.unit, o.unit))
}

// MulUnit multiplies the reference by a bare unit, first resolving the
// unit's associated spec.
func (r Reference) MulUnit(u Unit) (Reference, error) {
	o, err := ReferenceForUnit(u)
	if err != nil {
		return Reference{}, err
	}
	return r.Mul(o)
}

// DivUnit divides the reference by a bare unit.
func (r Reference) DivUnit(u Unit) (Reference, error) {
	o, err := ReferenceForUnit(u)
	if err != nil {
		return Reference{}, err
	}
	return r.Div(o)
}

// Pow raises both sides of the reference to a rational exponent.
func (r Reference) Pow(e Exponent) (Reference, error) {
	spec, err := PowSpec(r.spec, e)
	if err != nil {
		return Reference{}, err
	}
	return NewReference(spec, PowUnit(r.unit, e))
}

// Interconvertible reports whether two references may interoperate:
// both the spec sides and the unit sides must be interconvertible
// independently.
func (r Reference) Interconvertible(o Reference) bool {
	return Interconvertible(r.spec, o.spec) && UnitInterconvertible(r.unit, o.unit)
}

// InterconvertibleUnit reports interconvertibility against a bare unit.
func (r Reference) InterconvertibleUnit(u Unit) bool {
	o, err := ReferenceForUnit(u)
	if err != nil {
		return false
	}
	return r.Interconvertible(o)
}

// Apply binds a representation value to the reference, producing a
// Quantity. The value's character capability must match the spec's
// character. A value that is already a Quantity is rejected: rebind it
// by multiplying with a unit quantity of value one, q * (1 * r), rather
// than applying the reference again.
func (r Reference) Apply(value any) (Quantity, error) {
	if _, bound := value.(Quantity); bound {
		return Quantity{}, fmt.Errorf("%w: use q * (1 * r) to rebind", ErrAlreadyBound)
	}
	char, err := CharacterOf(value)
	if err != nil {
		return Quantity{}, err
	}
	if char != r.spec.Character() {
		return Quantity{}, fmt.Errorf("%w: %s representation bound to %s spec %s",
			ErrInvalidCharacter, char, r.spec.Character(), r.spec)
	}
	return Quantity{ref: r, value: value}, nil
}

// String renders the reference as spec[unit].
func (r Reference) String() string {
	return fmt.Sprintf("%s[%s]", r.spec, r.unit)
}
