package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can convert units.

By default, the server communicates over stdio using JSON-RPC.

Use --port to serve streamable HTTP instead. HTTP requests are rate
limited per server; see --rate and --burst.

Tools:      convert_units, conversion_factor, units_compatible, reduce_unit
Resources:  unitconv://units, unitconv://units/{symbol}

Examples:
  # Stdio mode (default)
  unitconv mcp serve

  # HTTP mode
  unitconv mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRateLimit, "HTTP requests per second")
	mcpServeCmd.Flags().Int("burst", mcp.DefaultRateBurst, "HTTP request burst size")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	rate, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}
	burst, err := cmd.Flags().GetInt("burst")
	if err != nil {
		return fmt.Errorf("getting burst flag: %w", err)
	}

	ports := &mcp.Ports{
		Conversion: conversionService,
		Units:      unitService,
	}

	server, err := mcp.NewServer(ports, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr, mcp.NewRateLimiter(rate, burst))
	}

	return server.Run(cmd.Context())
}
