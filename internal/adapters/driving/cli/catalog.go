package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridian-labs/dimens-cli/internal/adapters/driven/catalog/sqlite"
	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the declared catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the declared dimensions, kinds and units",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <db-path>",
	Short: "Import the catalog from a SQLite database",
	Long: `Imports the full catalog from a SQLite catalog database, replacing
the current catalog file. The import is validated first; an invalid
catalog leaves the current one untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <db-path>",
	Short: "Export the catalog to a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogExport,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if catalogService == nil {
		return errNotConfigured
	}

	data, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	cmd.Printf("Catalog: %s\n", catalogService.Path())
	cmd.Println()
	cmd.Printf("Dimensions (%d):\n", len(data.Dimensions))
	for _, d := range data.Dimensions {
		cmd.Printf("  %-28s %s\n", d.Name, d.Symbol)
	}
	cmd.Println()
	cmd.Printf("Kinds (%d):\n", len(data.Kinds))
	for _, k := range data.Kinds {
		cmd.Printf("  %-28s %s\n", k.Name, describeKind(k))
	}
	cmd.Println()
	cmd.Printf("Units (%d):\n", len(data.Units))
	for _, u := range data.Units {
		cmd.Printf("  %-28s %s\n", u.Name, describeUnit(u))
	}
	return nil
}

func describeKind(k domain.KindDecl) string {
	var desc string
	switch {
	case k.Dimension != "":
		desc = "base, dimension " + k.Dimension
	case k.Parent != "":
		desc = "kind of " + k.Parent
	default:
		desc = "= " + k.Definition
	}
	if k.Character != "" {
		desc += " (" + k.Character + ")"
	}
	return desc
}

func describeUnit(u domain.UnitDecl) string {
	symbol := u.Symbol
	if symbol == "" {
		symbol = u.Name
	}
	switch {
	case u.Kind != "":
		return fmt.Sprintf("%s, base unit of %s", symbol, u.Kind)
	case u.Reference != "":
		return fmt.Sprintf("%s = %g %s", symbol, u.Scale, u.Reference)
	default:
		return fmt.Sprintf("%s = %s", symbol, u.Definition)
	}
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if catalogService == nil {
		return errNotConfigured
	}

	store, err := sqlite.NewStore(args[0])
	if err != nil {
		return fmt.Errorf("opening catalog database: %w", err)
	}
	defer store.Close()

	data, err := store.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading catalog database: %w", err)
	}
	if err := catalogService.Replace(cmd.Context(), data); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d dimensions, %d kinds, %d units from %s\n",
		len(data.Dimensions), len(data.Kinds), len(data.Units), store.Path())
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if catalogService == nil {
		return errNotConfigured
	}

	data, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	store, err := sqlite.NewStore(args[0])
	if err != nil {
		return fmt.Errorf("opening catalog database: %w", err)
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), data); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d dimensions, %d kinds, %d units to %s\n",
		len(data.Dimensions), len(data.Kinds), len(data.Units), store.Path())
	return nil
}
