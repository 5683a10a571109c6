package domain

import "errors"

// Domain errors represent algebra and catalog failures.
// Every failure is detected at construction time; there are no
// runtime exceptions during normal use of already-built values.
var (
	// ErrMalformedExpression indicates a derived spec or unit was built
	// from a factor that is not a named entity, the dimensionless
	// identity, or a power/per of one of those.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidCharacter indicates two quantity characters have no
	// defined product, or a representation value does not match the
	// character required by a quantity spec.
	ErrInvalidCharacter = errors.New("invalid quantity character")

	// ErrNoCommonRepresentation indicates no common spec, unit or
	// reference exists for the given operands. Callers should guard
	// with Interconvertible before resolving.
	ErrNoCommonRepresentation = errors.New("no common representation")

	// ErrAlreadyBound indicates a reference was applied to a value that
	// is already a Quantity. Rebind with q * (1 * r) instead of q * r.
	ErrAlreadyBound = errors.New("value is already bound to a reference")

	// ErrIncompatibleUnit indicates a unit was bound to a quantity spec
	// it does not measure.
	ErrIncompatibleUnit = errors.New("unit does not measure quantity spec")

	// ErrZeroExponent indicates an exponent with a zero denominator or
	// other unusable rational value.
	ErrZeroExponent = errors.New("invalid rational exponent")

	// ErrNotFound indicates a requested catalog entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCatalog indicates a catalog declaration is internally
	// inconsistent (duplicate name, unknown parent, unknown unit, ...).
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
