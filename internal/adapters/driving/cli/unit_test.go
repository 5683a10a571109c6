package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCmd_DerivedUnit(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "unit", "km / h")

	require.NoError(t, err)
	assert.Contains(t, out, "unit:       km / h")
	assert.Contains(t, out, "spec:       length / time")
	assert.Contains(t, out, "dimension:  L / T")
	assert.Contains(t, out, "base:       m / s")
	assert.Contains(t, out, "factor:     0.2777")
}

func TestUnitCmd_AliasUnit(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "unit", "newton")

	require.NoError(t, err)
	assert.Contains(t, out, "spec:       length * mass / time^2")
	assert.Contains(t, out, "base:       m * kg / s^2")
	assert.Contains(t, out, "factor:     1")
}

func TestUnitCmd_UnknownUnit(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand(t, "unit", "parsec")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit")
}
