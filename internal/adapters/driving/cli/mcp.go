package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/papers/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for exposing paper search & ask to AI assistants over the Model Context Protocol.`,
}

var mcpPort int

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server.

Tools:
  search_papers   search for papers by keyword
  ask_question    ask a question answered from the papers found

By default the server speaks JSON-RPC over stdio. Use --port to serve the
streamable HTTP transport instead, for example to test with MCP Inspector.

Examples:
  papers mcp serve
  papers mcp serve --port 8090

Assistant configuration:
  {
    "mcpServers": {
      "papers": {
        "command": "/path/to/papers",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if services == nil || services.NewPage == nil {
		return ErrNotConfigured
	}

	ports := &mcp.Ports{NewPage: services.NewPage}
	if services.NewHealth != nil {
		if health, err := services.NewHealth(); err == nil {
			ports.Health = health
		}
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
