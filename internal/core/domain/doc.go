// Package domain implements the quantity-specification and unit algebra
// at the core of dimens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dimension: a normalized product of powers of base dimensions
//   - QuantitySpec: a named or derived quantity kind
//   - Unit: a named, scaled, or derived unit of measure
//   - Reference: a quantity spec bound to a unit
//   - Quantity: a representation value bound to a Reference
//
// Every value in this package is immutable. Arithmetic on specs, units
// and references always produces a new normalized value; two values are
// equal exactly when their normalized forms are structurally identical.
// All operations are pure and safe for unsynchronized concurrent use.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
