package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

func TestStore_LoadSave(t *testing.T) {
	store := NewBuiltin()
	ctx := context.Background()

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data.Dimensions)

	next := domain.CatalogData{
		Dimensions: []domain.DimensionDecl{{Name: "length", Symbol: "L"}},
	}
	require.NoError(t, store.Save(ctx, next))

	data, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, data)
}

func TestBuiltin_IsValidCatalog(t *testing.T) {
	data := Builtin()

	// Every non-base declaration must reference an earlier one.
	kinds := map[string]bool{}
	for _, k := range data.Kinds {
		if k.Parent != "" {
			assert.True(t, kinds[k.Parent], "kind %q declared before parent %q", k.Name, k.Parent)
		}
		kinds[k.Name] = true
	}
	units := map[string]bool{}
	for _, u := range data.Units {
		if u.Reference != "" {
			assert.True(t, units[u.Reference], "unit %q declared before reference %q", u.Name, u.Reference)
		}
		units[u.Name] = true
	}
}
