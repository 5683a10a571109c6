package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewExponent_Reduces tests that rationals come out reduced with a
// positive denominator.
func TestNewExponent_Reduces(t *testing.T) {
	e, err := NewExponent(4, 6)
	require.NoError(t, err)
	assert.Equal(t, Exponent{Num: 2, Den: 3}, e)

	e, err = NewExponent(3, -6)
	require.NoError(t, err)
	assert.Equal(t, Exponent{Num: -1, Den: 2}, e)

	e, err = NewExponent(-2, -4)
	require.NoError(t, err)
	assert.Equal(t, Exponent{Num: 1, Den: 2}, e)
}

// TestNewExponent_ZeroDenominator tests rejection of n/0.
func TestNewExponent_ZeroDenominator(t *testing.T) {
	_, err := NewExponent(1, 0)
	assert.ErrorIs(t, err, ErrZeroExponent)
}

// TestExponent_Arithmetic tests Add, Neg and Mul stay reduced.
func TestExponent_Arithmetic(t *testing.T) {
	half, err := NewExponent(1, 2)
	require.NoError(t, err)

	assert.Equal(t, ExpInt(1), half.Add(half))
	assert.True(t, half.Add(half.Neg()).IsZero())
	assert.Equal(t, Exponent{Num: 1, Den: 4}, half.Mul(half))
	assert.Equal(t, ExpInt(-3), ExpInt(3).Neg())
}

// TestExponent_String tests integer and rational rendering.
func TestExponent_String(t *testing.T) {
	assert.Equal(t, "2", ExpInt(2).String())

	half, err := NewExponent(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", half.String())
}
