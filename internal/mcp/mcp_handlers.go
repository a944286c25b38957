package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/workwellhq/workwell/core"
	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/histstore"
	"github.com/workwellhq/workwell/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// resolveConfig clones the base config and applies per-request overrides.
func (h *toolHandler) resolveConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("data_dir", ""); d != "" {
		cfg.DataDir = d
	}
	if a := request.GetString("as_of", ""); a != "" {
		evalAt, err := contract.ParseEvalTime(a, time.Now())
		if err != nil {
			return nil, err
		}
		cfg.EvalAt = evalAt
	}
	return cfg, nil
}

func (h *toolHandler) handleGetWellnessScores(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.resolveConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	src := histstore.NewFileSource(cfg.DataDir)
	report, results := core.Evaluate(histstore.LoadAll(src))

	type rankedDomain struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.DomainResult
	}
	ranked := make([]rankedDomain, len(results))
	for i, r := range results {
		ranked[i] = rankedDomain{
			Rank:         i + 1,
			Label:        contract.GetPlainLabel(r.FinalScore),
			DomainResult: r,
		}
	}
	payload := struct {
		WorkdayHealthIndex float64        `json:"workday_health_index"`
		Domains            []rankedDomain `json:"domains"`
	}{
		WorkdayHealthIndex: report.WorkdayHealthIndex,
		Domains:            ranked,
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWeeklyMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.resolveConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	threshold := cfg.HighRiskThreshold
	if t := request.GetFloat("risk_threshold", 0); t > 0 {
		threshold = t
	}

	src := histstore.NewFileSource(cfg.DataDir)
	inputs := core.WeeklyInputs{
		MSK:       src.DomainHistory(schema.DomainMSK),
		Hydration: src.DomainHistory(schema.DomainHydration),
		Sleep:     src.DomainHistory(schema.DomainSleep),
		Reminders: src.RemindersHistory(),
		Snapshots: src.SnapshotHistory(),
	}
	report := core.ComputeWeeklyReport(inputs, cfg.EvalAt, threshold)

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckWellnessThresholds(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.resolveConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	thresholds, err := contract.ParseThresholds(request.GetString("thresholds", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid thresholds: %v", err)), nil
	}
	if len(thresholds) == 0 {
		return mcp.NewToolResultError("no thresholds provided"), nil
	}

	src := histstore.NewFileSource(cfg.DataDir)
	report, _ := core.Evaluate(histstore.LoadAll(src))
	result := core.RunThresholdCheck(report, thresholds)

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
