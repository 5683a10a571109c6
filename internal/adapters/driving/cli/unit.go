package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unitJSON bool

var unitCmd = &cobra.Command{
	Use:   "unit <expr>",
	Short: "Show what a unit expression measures",
	Long: `Parses a unit expression and reports the quantity spec it measures,
the spec's dimension, and the expansion into base units with the
accumulated scale factor.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnit,
}

func init() {
	unitCmd.Flags().BoolVar(&unitJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(unitCmd)
}

func runUnit(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if resolverService == nil {
		return errNotConfigured
	}

	report, err := resolverService.UnitSpec(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("unit lookup failed: %w", err)
	}

	if unitJSON {
		return outputJSON(cmd, report)
	}
	cmd.Printf("unit:       %s\n", report.Unit)
	cmd.Printf("spec:       %s\n", report.Spec)
	cmd.Printf("dimension:  %s\n", report.Dimension)
	cmd.Printf("base:       %s\n", report.Base)
	cmd.Printf("factor:     %g\n", report.Factor)
	return nil
}
