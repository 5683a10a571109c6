package services

import (
	"fmt"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

// Registry interns catalog declarations into algebra entities and
// resolves names for the parser. It is built once per catalog load and
// read-only afterwards, so lookups need no synchronization.
type Registry struct {
	data  domain.CatalogData
	dims  map[string]*domain.BaseDimension
	specs map[string]*domain.NamedSpec
	units map[string]domain.Unit
}

// NewRegistry validates and interns the declarations. Declaration order
// is significant: it fixes the canonical ordering of derived
// expressions, and a parent, definition or reference may only name
// entities declared earlier.
func NewRegistry(data domain.CatalogData) (*Registry, error) {
	r := &Registry{
		data:  data,
		dims:  make(map[string]*domain.BaseDimension, len(data.Dimensions)),
		specs: make(map[string]*domain.NamedSpec, len(data.Kinds)+1),
		units: make(map[string]domain.Unit, 2*len(data.Units)+1),
	}
	r.specs[domain.Dimensionless.Name()] = domain.Dimensionless
	r.units[domain.One.Name()] = domain.One

	for _, d := range data.Dimensions {
		if err := r.internDimension(d); err != nil {
			return nil, err
		}
	}
	for _, k := range data.Kinds {
		if err := r.internKind(k); err != nil {
			return nil, err
		}
	}
	for _, u := range data.Units {
		if err := r.internUnit(u); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) internDimension(d domain.DimensionDecl) error {
	if d.Name == "" {
		return fmt.Errorf("%w: dimension with empty name", domain.ErrInvalidCatalog)
	}
	if _, dup := r.dims[d.Name]; dup {
		return fmt.Errorf("%w: duplicate dimension %q", domain.ErrInvalidCatalog, d.Name)
	}
	symbol := d.Symbol
	if symbol == "" {
		symbol = d.Name
	}
	r.dims[d.Name] = domain.NewBaseDimension(d.Name, symbol)
	return nil
}

func (r *Registry) internKind(k domain.KindDecl) error {
	if k.Name == "" {
		return fmt.Errorf("%w: kind with empty name", domain.ErrInvalidCatalog)
	}
	if _, dup := r.specs[k.Name]; dup {
		return fmt.Errorf("%w: duplicate kind %q", domain.ErrInvalidCatalog, k.Name)
	}
	char := domain.Character(k.Character)
	if k.Character != "" && !char.IsValid() {
		return fmt.Errorf("%w: kind %q: invalid character %q",
			domain.ErrInvalidCatalog, k.Name, k.Character)
	}

	set := 0
	for _, field := range []string{k.Dimension, k.Parent, k.Definition} {
		if field != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: kind %q must set exactly one of dimension, parent or definition",
			domain.ErrInvalidCatalog, k.Name)
	}

	var (
		spec *domain.NamedSpec
		err  error
	)
	switch {
	case k.Dimension != "":
		dim, ok := r.dims[k.Dimension]
		if !ok {
			return fmt.Errorf("%w: kind %q: unknown dimension %q",
				domain.ErrInvalidCatalog, k.Name, k.Dimension)
		}
		if char == "" {
			char = domain.CharacterScalar
		}
		spec, err = domain.NewBaseQuantitySpec(k.Name, dim, char)
	case k.Parent != "":
		parent, ok := r.specs[k.Parent]
		if !ok {
			return fmt.Errorf("%w: kind %q: unknown parent kind %q",
				domain.ErrInvalidCatalog, k.Name, k.Parent)
		}
		spec, err = domain.NewKindOf(k.Name, parent, char)
	default:
		def, perr := ParseSpec(r, k.Definition)
		if perr != nil {
			return fmt.Errorf("%w: kind %q: definition %q: %v",
				domain.ErrInvalidCatalog, k.Name, k.Definition, perr)
		}
		spec, err = domain.NewNamedQuantitySpec(k.Name, def, char)
	}
	if err != nil {
		return fmt.Errorf("%w: kind %q: %v", domain.ErrInvalidCatalog, k.Name, err)
	}
	r.specs[k.Name] = spec
	return nil
}

func (r *Registry) internUnit(u domain.UnitDecl) error {
	if u.Name == "" {
		return fmt.Errorf("%w: unit with empty name", domain.ErrInvalidCatalog)
	}
	symbol := u.Symbol
	if symbol == "" {
		symbol = u.Name
	}
	for _, key := range []string{u.Name, symbol} {
		if _, dup := r.units[key]; dup {
			return fmt.Errorf("%w: duplicate unit %q", domain.ErrInvalidCatalog, key)
		}
	}

	set := 0
	for _, field := range []string{u.Kind, u.Reference, u.Definition} {
		if field != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: unit %q must set exactly one of kind, reference or definition",
			domain.ErrInvalidCatalog, u.Name)
	}

	scale := u.Scale
	if scale == 0 {
		scale = 1
	}

	var (
		unit *domain.NamedUnit
		err  error
	)
	switch {
	case u.Kind != "":
		kind, ok := r.specs[u.Kind]
		if !ok {
			return fmt.Errorf("%w: unit %q: unknown kind %q",
				domain.ErrInvalidCatalog, u.Name, u.Kind)
		}
		unit, err = domain.NewBaseUnit(u.Name, symbol, kind)
	case u.Reference != "":
		ref, ok := r.units[u.Reference]
		if !ok {
			return fmt.Errorf("%w: unit %q: unknown reference unit %q",
				domain.ErrInvalidCatalog, u.Name, u.Reference)
		}
		unit, err = domain.NewScaledUnit(u.Name, symbol, scale, ref)
	default:
		def, perr := ParseUnit(r, u.Definition)
		if perr != nil {
			return fmt.Errorf("%w: unit %q: definition %q: %v",
				domain.ErrInvalidCatalog, u.Name, u.Definition, perr)
		}
		unit, err = domain.NewScaledUnit(u.Name, symbol, scale, def)
	}
	if err != nil {
		return fmt.Errorf("%w: unit %q: %v", domain.ErrInvalidCatalog, u.Name, err)
	}
	r.units[u.Name] = unit
	if symbol != u.Name {
		r.units[symbol] = unit
	}
	return nil
}

// Spec resolves a kind by name.
func (r *Registry) Spec(name string) (*domain.NamedSpec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Unit resolves a unit by name or symbol.
func (r *Registry) Unit(name string) (domain.Unit, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Data returns the declarations the registry was built from, in
// declaration order.
func (r *Registry) Data() domain.CatalogData {
	return r.data
}
