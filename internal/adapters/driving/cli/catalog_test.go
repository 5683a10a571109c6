package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/dimens-cli/internal/adapters/driven/catalog/sqlite"
	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

func TestCatalogListCmd_ShowsSections(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "catalog", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Dimensions (7):")
	assert.Contains(t, out, "Kinds (")
	assert.Contains(t, out, "Units (")
	assert.Contains(t, out, "kind of length")
	assert.Contains(t, out, "= length / time")
	assert.Contains(t, out, "km = 1000 metre")
}

func TestCatalogExportImport_RoundTrip(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	out, err := executeCommand(t, "catalog", "export", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	// Mutate the database copy, then import it back.
	store, err := sqlite.NewStore(dbPath)
	require.NoError(t, err)
	data, err := store.Load(context.Background())
	require.NoError(t, err)
	data.Units = append(data.Units, domain.UnitDecl{
		Name: "furlong", Symbol: "fur", Reference: "metre", Scale: 201.168,
	})
	require.NoError(t, store.Save(context.Background(), data))
	require.NoError(t, store.Close())

	out, err = executeCommand(t, "catalog", "import", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")

	out, err = executeCommand(t, "unit", "furlong")
	require.NoError(t, err)
	assert.Contains(t, out, "spec:       length")
	assert.Contains(t, out, "factor:     201.168")
}

func TestCatalogImportCmd_RejectsInvalidCatalog(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	store, err := sqlite.NewStore(dbPath)
	require.NoError(t, err)
	bad := domain.CatalogData{
		Kinds: []domain.KindDecl{{Name: "orphan", Parent: "missing"}},
	}
	require.NoError(t, store.Save(context.Background(), bad))
	require.NoError(t, store.Close())

	_, err = executeCommand(t, "catalog", "import", dbPath)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	// The previous catalog is still live.
	out, err := executeCommand(t, "check", "speed", "length / time")
	require.NoError(t, err)
	assert.Contains(t, out, "interconvertible:  yes")
}
