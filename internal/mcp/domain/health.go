package domain

import (
	"context"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	campaign "github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/campaign/health"
	"github.com/louisbranch/adpulse/internal/platform/errors"
	"github.com/louisbranch/adpulse/internal/platform/timeouts"
)

// HealthInput represents the MCP tool input for a health analysis.
type HealthInput struct {
	CampaignID       string  `json:"campaign_id" jsonschema:"campaign identifier"`
	TargetCPA        float64 `json:"target_cpa" jsonschema:"target cost per acquisition in RUB, must be positive"`
	DailyBudgetLimit float64 `json:"daily_budget_limit" jsonschema:"maximum allowed daily spend in RUB, must be positive"`
}

// HealthResult represents the MCP tool output for a health analysis.
// analysis_status discriminates the two shapes: "completed" carries the
// full assessment, "failed" carries only the campaign id and the upstream
// error message.
type HealthResult struct {
	CampaignID      string             `json:"campaign_id" jsonschema:"campaign identifier"`
	AnalysisStatus  string             `json:"analysis_status" jsonschema:"completed or failed"`
	Error           string             `json:"error,omitempty" jsonschema:"upstream failure message when analysis_status is failed"`
	AnalysisDate    string             `json:"analysis_date,omitempty" jsonschema:"RFC3339 timestamp of the analysis"`
	HealthScore     *int               `json:"health_score,omitempty" jsonschema:"health score from 0 to 100"`
	Status          string             `json:"status,omitempty" jsonschema:"healthy, needs_attention, or critical"`
	Metrics         *campaign.Snapshot `json:"metrics,omitempty" jsonschema:"metrics window the rules evaluated"`
	Targets         *campaign.Targets  `json:"targets,omitempty" jsonschema:"targets the metrics were judged against"`
	Issues          []string           `json:"issues,omitzero" jsonschema:"triggered rule codes in evaluation order"`
	Alerts          []string           `json:"alerts,omitzero" jsonschema:"localized alert lines, one per issue"`
	Recommendations []string           `json:"recommendations,omitzero" jsonschema:"localized optimization recommendations"`
	ActionRequired  *bool              `json:"action_required,omitempty" jsonschema:"true when the campaign needs immediate stopping"`
	Summary         string             `json:"summary,omitempty" jsonschema:"one-line localized summary"`
}

// HealthTool defines the MCP tool schema for health analysis.
func HealthTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "analyze_campaign_health",
		Description: "Scores campaign health against CPA and daily budget targets using fixed business rules; returns issues, alerts, and recommendations",
	}
}

// HealthHandler executes a health analysis request. Invalid targets fail
// the call; an upstream metrics failure returns the tagged failure payload
// instead so batch callers keep their other campaigns.
func HealthHandler(analyzer health.Analyzer, locale string) mcp.ToolHandlerFor[HealthInput, HealthResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HealthInput) (*mcp.CallToolResult, HealthResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, timeouts.ToolCall)
		defer cancel()

		analysis, err := analyzer.Analyze(runCtx, input.CampaignID, campaign.Targets{
			TargetCPA:        input.TargetCPA,
			DailyBudgetLimit: input.DailyBudgetLimit,
		})
		if err != nil {
			if errors.ClassOf(err) == errors.ClassUpstreamFailure {
				failure := HealthResult{
					CampaignID:     strings.TrimSpace(input.CampaignID),
					AnalysisStatus: analysisStatusFailed,
					Error:          localizedError(locale, err),
				}
				return nil, failure, nil
			}
			return nil, HealthResult{}, toolError(locale, err)
		}

		assessment := analysis.Assessment
		issues := make([]string, 0, len(assessment.Issues))
		for _, issue := range assessment.Issues {
			issues = append(issues, string(issue))
		}

		score := assessment.Score
		actionRequired := assessment.ActionRequired
		result := HealthResult{
			CampaignID:      analysis.CampaignID,
			AnalysisStatus:  analysisStatusCompleted,
			AnalysisDate:    analysis.AnalyzedAt.Format(time.RFC3339),
			HealthScore:     &score,
			Status:          string(assessment.Status),
			Metrics:         &analysis.Snapshot,
			Targets:         &analysis.Targets,
			Issues:          issues,
			Alerts:          renderAlerts(locale, assessment.Alerts),
			Recommendations: renderRecommendations(locale, assessment.Recommendations),
			ActionRequired:  &actionRequired,
			Summary: renderMessage(locale, assessment.SummaryKey(), map[string]string{
				"CampaignID": analysis.CampaignID,
			}),
		}
		return nil, result, nil
	}
}
