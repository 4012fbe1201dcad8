package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/adpulse/internal/campaign/report"
	"github.com/louisbranch/adpulse/internal/platform/timeouts"
)

// ReportInput represents the MCP tool input for the daily summary report.
type ReportInput struct {
	CampaignIDs []string `json:"campaign_ids" jsonschema:"campaign identifiers to include, at least one"`
}

// ReportResult represents the MCP tool output for the daily summary report.
type ReportResult struct {
	Report string `json:"report" jsonschema:"formatted localized report text"`
}

// ReportTool defines the MCP tool schema for the daily summary report.
func ReportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_daily_report",
		Description: "Builds a localized summary report across campaigns: health status, CPA against target, alerts, and a critical-campaign warning",
	}
}

// ReportHandler executes a daily report request. The rendered text rides
// both as plain tool content and inside the structured payload.
func ReportHandler(builder report.Builder, locale string) mcp.ToolHandlerFor[ReportInput, ReportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, ReportResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, timeouts.ToolCall)
		defer cancel()

		text, err := builder.Build(runCtx, input.CampaignIDs)
		if err != nil {
			return nil, ReportResult{}, toolError(locale, err)
		}

		callResult := &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}
		return callResult, ReportResult{Report: text}, nil
	}
}
