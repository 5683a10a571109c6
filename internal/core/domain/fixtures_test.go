package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testWorld interns a small catalog shared by the algebra tests:
// three base dimensions, a kind hierarchy under length, a couple of
// named derived kinds, and metric plus imperial length units.
type testWorld struct {
	L, M, T *BaseDimension

	length, mass, time        *NamedSpec
	distance, width, height   *NamedSpec
	speed, velocity           *NamedSpec
	frequency, activity       *NamedSpec
	metre, kilometre, mile    *NamedUnit
	second, hour, kilogram    *NamedUnit
	lengthPerTime             QuantitySpec
	metrePerSecond, kmPerHour Unit
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{}
	var err error

	w.L = NewBaseDimension("length", "L")
	w.M = NewBaseDimension("mass", "M")
	w.T = NewBaseDimension("time", "T")

	w.length, err = NewBaseQuantitySpec("length", w.L, CharacterScalar)
	require.NoError(t, err)
	w.mass, err = NewBaseQuantitySpec("mass", w.M, CharacterScalar)
	require.NoError(t, err)
	w.time, err = NewBaseQuantitySpec("time", w.T, CharacterScalar)
	require.NoError(t, err)

	w.distance, err = NewKindOf("distance", w.length, "")
	require.NoError(t, err)
	w.width, err = NewKindOf("width", w.length, "")
	require.NoError(t, err)
	w.height, err = NewKindOf("height", w.length, "")
	require.NoError(t, err)

	w.lengthPerTime, err = DivSpec(w.length, w.time)
	require.NoError(t, err)
	w.speed, err = NewNamedQuantitySpec("speed", w.lengthPerTime, "")
	require.NoError(t, err)
	w.velocity, err = NewKindOf("velocity", w.speed, CharacterVector)
	require.NoError(t, err)

	perTime, err := DivSpec(Dimensionless, w.time)
	require.NoError(t, err)
	w.frequency, err = NewNamedQuantitySpec("frequency", perTime, "")
	require.NoError(t, err)
	w.activity, err = NewNamedQuantitySpec("activity", perTime, "")
	require.NoError(t, err)

	w.metre, err = NewBaseUnit("metre", "m", w.length)
	require.NoError(t, err)
	w.kilometre, err = NewScaledUnit("kilometre", "km", 1000, w.metre)
	require.NoError(t, err)
	w.mile, err = NewScaledUnit("mile", "mi", 1609.344, w.metre)
	require.NoError(t, err)
	w.second, err = NewBaseUnit("second", "s", w.time)
	require.NoError(t, err)
	w.hour, err = NewScaledUnit("hour", "h", 3600, w.second)
	require.NoError(t, err)
	w.kilogram, err = NewBaseUnit("kilogram", "kg", w.mass)
	require.NoError(t, err)

	w.metrePerSecond = DivUnit(w.metre, w.second)
	w.kmPerHour = DivUnit(w.kilometre, w.hour)

	return w
}

// mustMul multiplies two specs, failing the test on a character error.
func mustMul(t *testing.T, a, b QuantitySpec) QuantitySpec {
	t.Helper()
	out, err := MulSpec(a, b)
	require.NoError(t, err)
	return out
}

// mustDiv divides two specs, failing the test on a character error.
func mustDiv(t *testing.T, a, b QuantitySpec) QuantitySpec {
	t.Helper()
	out, err := DivSpec(a, b)
	require.NoError(t, err)
	return out
}
