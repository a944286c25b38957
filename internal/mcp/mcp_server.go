// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/workwellhq/workwell/internal/contract"
)

// NewMCPServer initializes and configures the Workwell MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Workwell Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_wellness_scores ---
	s.AddTool(mcp.NewTool("get_wellness_scores",
		mcp.WithDescription("Score questionnaire histories to produce per-domain wellness risk scores and the Workday Health Index."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the per-domain history files (defaults to the configured data directory).")),
		mcp.WithString("as_of", mcp.Description("Reference time for the evaluation, ISO timestamp or relative like '2 days ago'.")),
	), h.handleGetWellnessScores)

	// --- 2. Tool: get_weekly_metrics ---
	s.AddTool(mcp.NewTool("get_weekly_metrics",
		mcp.WithDescription("Compute week-over-week behavioral metrics: sedentary time, hydration compliance, sleep trend, reminders, high-risk days."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the per-domain history files.")),
		mcp.WithString("as_of", mcp.Description("Reference time for the weekly windows, ISO timestamp or relative like '2 days ago'.")),
		mcp.WithNumber("risk_threshold", mcp.Description("Workday Health Index level at or above which a day counts as high-risk. Defaults to 60.")),
	), h.handleGetWeeklyMetrics)

	// --- 3. Tool: check_wellness_thresholds ---
	s.AddTool(mcp.NewTool("check_wellness_thresholds",
		mcp.WithDescription("Gate an evaluation against score thresholds (e.g. 'whi:60,msk:70'). A target fails when its score is at or above its threshold."),
		mcp.WithString("thresholds", mcp.Description("Comma-separated name:value pairs. Names are 'whi' or a domain name."), mcp.Required()),
		mcp.WithString("data_dir", mcp.Description("Directory holding the per-domain history files.")),
		mcp.WithString("as_of", mcp.Description("Reference time for the evaluation.")),
	), h.handleCheckWellnessThresholds)

	return s
}

// StartMCPServer starts the Workwell MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
