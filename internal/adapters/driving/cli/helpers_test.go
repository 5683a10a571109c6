package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/dimens-cli/internal/adapters/driven/catalog/memory"
	"github.com/veridian-labs/dimens-cli/internal/core/services"
)

// setupTestServices wires the commands to a resolver over the builtin
// SI catalog in memory. Returns a cleanup restoring the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	mgr, err := services.NewCatalogManager(context.Background(), memory.NewBuiltin())
	require.NoError(t, err)

	oldResolver := resolverService
	oldCatalog := catalogService
	oldManager := catalogManager

	SetServices(services.NewResolver(mgr), mgr)
	catalogManager = mgr

	return func() {
		resolverService = oldResolver
		catalogService = oldCatalog
		catalogManager = oldManager
	}
}

// executeCommand runs the root command with the given args and captures
// its combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
