package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/style-selector/internal/adapters/driving/mcp"
	"github.com/custodia-labs/style-selector/internal/logger"
)

var (
	mcpPort  int
	mcpWatch bool
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can list styles
and apply them to prompts.

By default, the server communicates over stdio using JSON-RPC. Use --port to
serve over HTTP instead. With --watch the catalog is reloaded whenever the
file changes.

Examples:
  # Stdio mode (default)
  styleselector mcp serve

  # HTTP mode with catalog hot reload
  styleselector mcp serve --port 8080 --watch

Assistant configuration:
  {
    "mcpServers": {
      "styleselector": {
        "command": "/path/to/styleselector",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().BoolVarP(&mcpWatch, "watch", "w", false, "reload the catalog when it changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Catalog:  svc.Catalog,
		Resolver: svc.Resolver,
		History:  svc.History,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if mcpWatch {
		if svc.Watch == nil {
			return fmt.Errorf("catalog watching is not available")
		}
		go func() {
			if err := svc.Watch(ctx); err != nil {
				logger.Error("catalog watcher stopped: %v", err)
			}
		}()
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
