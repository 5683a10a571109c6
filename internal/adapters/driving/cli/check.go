package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <left> <right>",
	Short: "Check two quantity expressions for compatibility",
	Long: `Parses two quantity expressions in the catalog's vocabulary and
reports whether they are structurally equal and whether they are
interconvertible. Unit names coerce through the quantity they measure,
so 'dimens check "metre / second" speed' works.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the verdict as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if resolverService == nil {
		return errNotConfigured
	}

	verdict, err := resolverService.Check(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if checkJSON {
		return outputJSON(cmd, verdict)
	}
	return outputCheckText(cmd, verdict)
}

func outputCheckText(cmd *cobra.Command, verdict domain.Compatibility) error {
	cmd.Printf("left:              %s\n", verdict.Left)
	cmd.Printf("right:             %s\n", verdict.Right)
	cmd.Printf("equal:             %s\n", yesNo(verdict.Equal))
	cmd.Printf("interconvertible:  %s\n", yesNo(verdict.Interconvertible))
	if verdict.Reason != "" {
		cmd.Printf("reason:            %s\n", verdict.Reason)
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
