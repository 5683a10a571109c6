package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <ref> <ref>...",
	Short: "Resolve the common reference for mixed operands",
	Long: `Resolves the single quantity spec and unit that two or more
references can all be represented in. References are written as
'spec@unit' (e.g. 'distance@mile'); a bare unit expression stands for
the quantity it measures.

The resolved unit is picked deterministically: the finest operand unit
wins, and an exact scale tie keeps the left-most operand's unit.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output the resolution as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if resolverService == nil {
		return errNotConfigured
	}

	resolved, err := resolverService.Common(cmd.Context(), args...)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if resolveJSON {
		return outputJSON(cmd, resolved)
	}
	cmd.Printf("spec:       %s\n", resolved.Spec)
	cmd.Printf("unit:       %s\n", resolved.Unit)
	cmd.Printf("reference:  %s\n", resolved.Reference)
	return nil
}
