package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	campaign "github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/campaign/performance"
	"github.com/louisbranch/adpulse/internal/platform/timeouts"
)

// msgNoteDemoData marks payloads backed by the synthetic generator.
const msgNoteDemoData = "performance.note.demo_data"

// PerformanceInput represents the MCP tool input for performance retrieval.
type PerformanceInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier in the ad account"`
	Days       int    `json:"days,omitempty" jsonschema:"analysis window in days (default 7)"`
}

// PerformanceResult represents the MCP tool output for performance retrieval.
type PerformanceResult struct {
	Status     string            `json:"status" jsonschema:"execution status (success)"`
	Source     string            `json:"source" jsonschema:"metrics origin (demo_data)"`
	CampaignID string            `json:"campaign_id" jsonschema:"campaign identifier"`
	PeriodDays int               `json:"period_days" jsonschema:"analysis window in days"`
	DataTrend  string            `json:"data_trend" jsonschema:"window trend (improving, stable, worsening)"`
	Metrics    campaign.Snapshot `json:"metrics" jsonschema:"aggregated metrics with derived CPA, CTR, and CPC"`
	Note       string            `json:"note" jsonschema:"data source note"`
}

// PerformanceTool defines the MCP tool schema for performance retrieval.
func PerformanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_campaign_performance",
		Description: "Fetches aggregated campaign metrics (cost, conversions, clicks, impressions, CPA, CTR, CPC) for a recent window",
	}
}

// PerformanceHandler executes a performance retrieval request.
func PerformanceHandler(provider performance.Provider, locale string) mcp.ToolHandlerFor[PerformanceInput, PerformanceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PerformanceInput) (*mcp.CallToolResult, PerformanceResult, error) {
		campaignID, err := campaign.NormalizeCampaignID(input.CampaignID)
		if err != nil {
			return nil, PerformanceResult{}, toolError(locale, err)
		}
		days, err := campaign.NormalizePeriodDays(input.Days)
		if err != nil {
			return nil, PerformanceResult{}, toolError(locale, err)
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.ToolCall)
		defer cancel()

		perf, err := provider.Fetch(runCtx, campaignID, days)
		if err != nil {
			return nil, PerformanceResult{}, fmt.Errorf("fetch campaign performance: %s", localizedError(locale, err))
		}

		result := PerformanceResult{
			Status:     statusSuccess,
			Source:     string(perf.Source),
			CampaignID: perf.CampaignID,
			PeriodDays: perf.PeriodDays,
			DataTrend:  string(perf.Trend),
			Metrics:    perf.Snapshot,
			Note:       renderMessage(locale, msgNoteDemoData, nil),
		}
		return nil, result, nil
	}
}
