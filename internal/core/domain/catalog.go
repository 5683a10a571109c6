package domain

// CatalogData is the declared catalog of base dimensions, quantity
// kinds and units the algebra is built over. These are plain
// declaration records, not algebra values; the registry service interns
// them into entities in declaration order.
type CatalogData struct {
	// Dimensions declares the base dimensions.
	Dimensions []DimensionDecl

	// Kinds declares the quantity kinds, in dependency order:
	// a definition or parent may only name earlier kinds.
	Kinds []KindDecl

	// Units declares the units, in dependency order.
	Units []UnitDecl
}

// DimensionDecl declares one base dimension.
type DimensionDecl struct {
	// Name is the unique dimension name, e.g. "length".
	Name string

	// Symbol is the short dimension symbol, e.g. "L".
	Symbol string
}

// KindDecl declares one quantity kind. Exactly one of Dimension,
// Parent or Definition must be set:
//
//   - Dimension anchors a base kind to a base dimension.
//   - Parent declares a specialisation of an existing kind.
//   - Definition declares a named derived kind by expression,
//     e.g. "length / time".
type KindDecl struct {
	// Name is the unique kind name, e.g. "speed".
	Name string

	// Dimension names the base dimension for base kinds.
	Dimension string

	// Parent names the parent kind for kind-of declarations.
	Parent string

	// Definition is the defining spec expression for derived kinds.
	Definition string

	// Character is "scalar", "vector" or "tensor"; empty inherits
	// (scalar for base kinds, the parent's or definition's otherwise).
	Character string
}

// UnitDecl declares one unit. Exactly one of Kind, Reference or
// Definition must be set:
//
//   - Kind anchors a base unit to the quantity kind it measures.
//   - Reference + Scale declares a scaled unit, e.g. kilometre as
//     1000 metre.
//   - Definition declares a named alias for a unit expression,
//     e.g. "hertz" for "1 / second".
type UnitDecl struct {
	// Name is the unique unit name, e.g. "kilometre".
	Name string

	// Symbol is the printable symbol, e.g. "km". Defaults to Name.
	Symbol string

	// Kind names the measured quantity kind for base units.
	Kind string

	// Reference names the unit this one is scaled from.
	Reference string

	// Scale is the multiplier toward Reference. Defaults to 1.
	Scale float64

	// Definition is a unit expression the name aliases.
	Definition string
}
