package cmd

import (
	"github.com/spf13/cobra"
	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/mcp"
)

// mcpCmd starts the Model Context Protocol server over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI assistant integration.",
	Long: `Start a Model Context Protocol server over stdin/stdout.

Exposes scoring as tools for AI assistants:
- get_wellness_scores: per-domain risk scores and the composite index
- get_weekly_metrics: week-over-week behavioral metrics
- check_wellness_thresholds: threshold gating for scores

The base configuration (data directory, reference time, thresholds) is
resolved once at startup; each tool call may override data_dir and
as_of per request.

Examples:
  # Start the server with the default data directory
  workwell mcp

  # Start against a specific data directory
  workwell mcp --data-dir /path/to/data`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg); err != nil {
			contract.LogFatal("MCP server failed", err)
		}
	},
}
