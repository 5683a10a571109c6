// Package cli provides the cobra command tree for the dimens binary.
// Commands talk to core through the driving ports; the default wiring
// builds the TOML catalog store (seeding the builtin SI catalog on
// first run), the catalog manager and the resolver.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/veridian-labs/dimens-cli/internal/adapters/driven/catalog/file"
	"github.com/veridian-labs/dimens-cli/internal/adapters/driven/catalog/memory"
	"github.com/veridian-labs/dimens-cli/internal/core/ports/driving"
	"github.com/veridian-labs/dimens-cli/internal/core/services"
	"github.com/veridian-labs/dimens-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

var (
	verboseFlag bool
	catalogFlag string
)

// Services the commands run against. Wired lazily by ensureServices,
// or injected through SetServices in tests.
var (
	resolverService driving.ResolverService
	catalogService  driving.CatalogService
	catalogManager  *services.CatalogManager
)

var rootCmd = &cobra.Command{
	Use:   "dimens",
	Short: "Dimensional analysis for quantity kinds and units",
	Long: `dimens answers dimensional-analysis questions against a declared
catalog of base dimensions, quantity kinds and units: whether two
quantity expressions may interoperate, which common reference a mixed
set of operands resolves to, and what quantity a unit expression
measures.

The catalog lives in a TOML file (default ~/.dimens/catalog.toml) and
is seeded with an SI starter catalog on first run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "catalog file path (default ~/.dimens/catalog.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetServices injects the services the commands run against.
// Used by tests; production wiring goes through ensureServices.
func SetServices(resolver driving.ResolverService, catalog driving.CatalogService) {
	resolverService = resolver
	catalogService = catalog
}

// ensureServices wires the default stack on first use: TOML catalog
// store at the --catalog path, seeded with the builtin SI catalog when
// the file does not exist yet.
func ensureServices(ctx context.Context) error {
	if resolverService != nil && catalogService != nil {
		return nil
	}

	store, err := file.NewCatalogStore(catalogFlag)
	if err != nil {
		return err
	}
	if !store.Exists() {
		if err := store.Save(ctx, memory.Builtin()); err != nil {
			return err
		}
		logger.Info("Seeded builtin SI catalog at %s", store.Path())
	}

	mgr, err := services.NewCatalogManager(ctx, store)
	if err != nil {
		return err
	}
	catalogManager = mgr
	catalogService = mgr
	resolverService = services.NewResolver(mgr)
	return nil
}

// errNotConfigured is returned when a command runs without services.
var errNotConfigured = errors.New("resolver service not configured")
