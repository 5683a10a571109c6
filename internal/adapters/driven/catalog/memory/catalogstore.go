// Package memory provides an in-memory CatalogStore seeded with the
// builtin SI starter catalog. It backs the zero-config CLI experience
// and the service tests.
package memory

import (
	"context"
	"sync"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CatalogStore = (*Store)(nil)

// Store is an in-memory implementation of driven.CatalogStore.
type Store struct {
	mu   sync.RWMutex
	data domain.CatalogData
}

// New creates a store holding the given declarations.
func New(data domain.CatalogData) *Store {
	return &Store{data: data}
}

// NewBuiltin creates a store seeded with the builtin SI catalog.
func NewBuiltin() *Store {
	return New(Builtin())
}

// Load returns the current declarations.
func (s *Store) Load(ctx context.Context) (domain.CatalogData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, nil
}

// Save replaces the current declarations.
func (s *Store) Save(ctx context.Context, data domain.CatalogData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Path returns the store locator.
func (s *Store) Path() string {
	return "memory://builtin"
}

// Builtin returns the SI starter catalog: the seven base dimensions and
// kinds, a small derived-kind vocabulary, and the coherent units with a
// few everyday scaled ones.
func Builtin() domain.CatalogData {
	return domain.CatalogData{
		Dimensions: []domain.DimensionDecl{
			{Name: "length", Symbol: "L"},
			{Name: "mass", Symbol: "M"},
			{Name: "time", Symbol: "T"},
			{Name: "electric_current", Symbol: "I"},
			{Name: "thermodynamic_temperature", Symbol: "Θ"},
			{Name: "amount_of_substance", Symbol: "N"},
			{Name: "luminous_intensity", Symbol: "J"},
		},
		Kinds: []domain.KindDecl{
			{Name: "length", Dimension: "length"},
			{Name: "mass", Dimension: "mass"},
			{Name: "time", Dimension: "time"},
			{Name: "electric_current", Dimension: "electric_current"},
			{Name: "thermodynamic_temperature", Dimension: "thermodynamic_temperature"},
			{Name: "amount_of_substance", Dimension: "amount_of_substance"},
			{Name: "luminous_intensity", Dimension: "luminous_intensity"},

			{Name: "width", Parent: "length"},
			{Name: "height", Parent: "length"},
			{Name: "distance", Parent: "length"},

			{Name: "area", Definition: "length^2"},
			{Name: "volume", Definition: "length^3"},
			{Name: "frequency", Definition: "1 / time"},
			{Name: "speed", Definition: "length / time"},
			{Name: "acceleration", Definition: "speed / time"},
			{Name: "force", Definition: "mass * acceleration"},
			{Name: "energy", Definition: "force * length"},
			{Name: "power", Definition: "energy / time"},
		},
		Units: []domain.UnitDecl{
			{Name: "metre", Symbol: "m", Kind: "length"},
			{Name: "kilogram", Symbol: "kg", Kind: "mass"},
			{Name: "second", Symbol: "s", Kind: "time"},
			{Name: "ampere", Symbol: "A", Kind: "electric_current"},
			{Name: "kelvin", Symbol: "K", Kind: "thermodynamic_temperature"},
			{Name: "mole", Symbol: "mol", Kind: "amount_of_substance"},
			{Name: "candela", Symbol: "cd", Kind: "luminous_intensity"},

			{Name: "kilometre", Symbol: "km", Reference: "metre", Scale: 1000},
			{Name: "centimetre", Symbol: "cm", Reference: "metre", Scale: 0.01},
			{Name: "mile", Symbol: "mi", Reference: "metre", Scale: 1609.344},
			{Name: "minute", Symbol: "min", Reference: "second", Scale: 60},
			{Name: "hour", Symbol: "h", Reference: "second", Scale: 3600},
			{Name: "gram", Symbol: "g", Reference: "kilogram", Scale: 0.001},

			{Name: "hertz", Symbol: "Hz", Definition: "1 / second"},
			{Name: "newton", Symbol: "N", Definition: "kilogram * metre / second^2"},
			{Name: "joule", Symbol: "J", Definition: "newton * metre"},
			{Name: "watt", Symbol: "W", Definition: "joule / second"},
		},
	}
}
