package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridian-labs/dimens-cli/internal/adapters/driving/mcp"
	"github.com/veridian-labs/dimens-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

While the server runs, the catalog file is watched and external edits
reload the live catalog.

Examples:
  # Stdio mode (default, for Claude Desktop)
  dimens mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  dimens mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "dimens": {
        "command": "/path/to/dimens",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	if resolverService == nil {
		return errNotConfigured
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Resolver: resolverService,
		Catalog:  catalogService,
	})
	if err != nil {
		return err
	}

	// Hot-reload the catalog while the server runs.
	if catalogManager != nil {
		go func() {
			if err := catalogManager.Watch(cmd.Context()); err != nil && cmd.Context().Err() == nil {
				logger.Warn("Catalog watch stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
