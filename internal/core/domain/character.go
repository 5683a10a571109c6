package domain

import "fmt"

// Character is the algebraic nature of a quantity. It constrains which
// representation values may be bound to a reference.
type Character string

// Available quantity characters.
const (
	// CharacterScalar is a plain magnitude.
	CharacterScalar Character = "scalar"

	// CharacterVector is a magnitude with direction.
	CharacterVector Character = "vector"

	// CharacterTensor is a rank-2 (or higher) quantity.
	CharacterTensor Character = "tensor"
)

// IsValid returns true if the character is recognised.
func (c Character) IsValid() bool {
	switch c {
	case CharacterScalar, CharacterVector, CharacterTensor:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Character) String() string {
	return string(c)
}

// Mul combines two characters under the multiplication lattice.
// Scalar is the identity; every other pairing has no declared product
// and is rejected with ErrInvalidCharacter.
func (c Character) Mul(o Character) (Character, error) {
	switch {
	case c == CharacterScalar:
		return o, nil
	case o == CharacterScalar:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %s * %s", ErrInvalidCharacter, c, o)
	}
}

// CharacterOf classifies a representation value. Numeric values are
// scalar, numeric slices are vectors, numeric matrices are tensors.
func CharacterOf(value any) (Character, error) {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return CharacterScalar, nil
	case []int, []float32, []float64:
		return CharacterVector, nil
	case [][]int, [][]float32, [][]float64:
		return CharacterTensor, nil
	default:
		return "", fmt.Errorf("%w: unsupported representation %T", ErrInvalidCharacter, value)
	}
}
