package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReference_New tests binding validation: the unit must measure the
// spec.
func TestReference_New(t *testing.T) {
	w := newTestWorld(t)

	ref, err := NewReference(w.speed, w.kmPerHour)
	require.NoError(t, err)
	assert.True(t, SpecEqual(w.speed, ref.Spec()))
	assert.True(t, UnitEqual(w.kmPerHour, ref.Unit()))

	_, err = NewReference(w.speed, w.kilogram)
	assert.ErrorIs(t, err, ErrIncompatibleUnit)
}

// TestReference_Equal tests pointwise equality and the bare-unit form.
func TestReference_Equal(t *testing.T) {
	w := newTestWorld(t)

	a, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)
	b, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)
	c, err := NewReference(w.length, w.mile)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	// A bare unit equals a reference iff its associated spec and the
	// unit both match.
	assert.True(t, a.EqualUnit(w.kilometre))
	assert.False(t, a.EqualUnit(w.mile))

	d, err := NewReference(w.distance, w.kilometre)
	require.NoError(t, err)
	assert.False(t, d.EqualUnit(w.kilometre), "distance[km] is not plain kilometre")
}

// TestReference_MulDiv tests pointwise combination of both sides.
func TestReference_MulDiv(t *testing.T) {
	w := newTestWorld(t)

	lengthKM, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)
	timeH, err := NewReference(w.time, w.hour)
	require.NoError(t, err)

	speedRef, err := lengthKM.Div(timeH)
	require.NoError(t, err)
	assert.True(t, SpecEqual(w.lengthPerTime, speedRef.Spec()))
	assert.True(t, UnitEqual(w.kmPerHour, speedRef.Unit()))

	// Multiplying back by time recovers the length reference.
	back, err := speedRef.Mul(timeH)
	require.NoError(t, err)
	assert.True(t, back.Equal(lengthKM))
}

// TestReference_BareUnitOperand tests that a bare unit is coerced via
// its associated spec.
func TestReference_BareUnitOperand(t *testing.T) {
	w := newTestWorld(t)

	lengthKM, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)

	speedRef, err := lengthKM.DivUnit(w.hour)
	require.NoError(t, err)
	assert.True(t, SpecEqual(w.lengthPerTime, speedRef.Spec()))
	assert.True(t, UnitEqual(w.kmPerHour, speedRef.Unit()))
}

// TestReference_Interconvertible tests that both sides must be
// interconvertible independently.
func TestReference_Interconvertible(t *testing.T) {
	w := newTestWorld(t)

	km, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)
	mi, err := NewReference(w.distance, w.mile)
	require.NoError(t, err)
	sec, err := NewReference(w.time, w.second)
	require.NoError(t, err)

	assert.True(t, km.Interconvertible(km))
	assert.True(t, km.Interconvertible(mi))
	assert.False(t, km.Interconvertible(sec))
	assert.True(t, km.InterconvertibleUnit(w.mile))
	assert.False(t, km.InterconvertibleUnit(w.second))
}

// TestReference_Apply tests binding a representation value.
func TestReference_Apply(t *testing.T) {
	w := newTestWorld(t)

	km, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)

	q, err := km.Apply(42.0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, q.Value())
	assert.True(t, km.Equal(q.Reference()))
}

// TestReference_Apply_AlreadyBound tests the double-binding guard: a
// quantity may not be applied to a reference again.
func TestReference_Apply_AlreadyBound(t *testing.T) {
	w := newTestWorld(t)

	km, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)
	q, err := km.Apply(1.0)
	require.NoError(t, err)

	_, err = km.Apply(q)
	require.ErrorIs(t, err, ErrAlreadyBound)
	assert.Contains(t, err.Error(), "q * (1 * r)")
}

// TestReference_Apply_CharacterMismatch tests representation capability
// checks against the spec's character.
func TestReference_Apply_CharacterMismatch(t *testing.T) {
	w := newTestWorld(t)

	vel, err := NewReference(w.velocity, w.metrePerSecond)
	require.NoError(t, err)

	_, err = vel.Apply(3.0)
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	q, err := vel.Apply([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, CharacterVector, q.Reference().Spec().Character())
}

// TestReference_Pow tests raising both sides of a reference.
func TestReference_Pow(t *testing.T) {
	w := newTestWorld(t)

	m, err := NewReference(w.length, w.metre)
	require.NoError(t, err)
	area, err := m.Pow(ExpInt(2))
	require.NoError(t, err)

	assert.True(t, UnitEqual(PowUnit(w.metre, ExpInt(2)), area.Unit()))
	assert.True(t, area.Spec().Dimension().Equal(w.L.Dim().Pow(ExpInt(2))))
}

// TestQuantity_String tests the rendered form.
func TestQuantity_String(t *testing.T) {
	w := newTestWorld(t)

	km, err := NewReference(w.length, w.kilometre)
	require.NoError(t, err)
	q, err := km.Apply(5)
	require.NoError(t, err)
	assert.Equal(t, "5 length[km]", q.String())
}
