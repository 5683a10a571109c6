// Command dimens is a dimensional-analysis tool over a declared catalog
// of base dimensions, quantity kinds and units.
package main

import (
	"fmt"
	"os"

	"github.com/veridian-labs/dimens-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
