package domain

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	campaign "github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/campaign/performance"
	"github.com/louisbranch/adpulse/internal/campaign/scenario"
	"github.com/louisbranch/adpulse/internal/platform/timeouts"
)

// ScenariosInput represents the MCP tool input for scenario planning.
type ScenariosInput struct {
	CampaignID        string `json:"campaign_id" jsonschema:"campaign identifier"`
	TargetConversions int    `json:"target_conversions" jsonschema:"desired number of conversions, must be positive"`
}

// ScenarioBudget is one budget projection toward the conversion target.
type ScenarioBudget struct {
	TargetConversions int     `json:"target_conversions"`
	RequiredBudget    float64 `json:"required_budget"`
	Note              string  `json:"note"`
}

// ScenarioCapacity is what the current budget buys without changes.
type ScenarioCapacity struct {
	PossibleConversions float64 `json:"possible_conversions"`
	CurrentBudget       float64 `json:"current_budget"`
	Note                string  `json:"note"`
}

// ScenarioSet groups the three what-if projections.
type ScenarioSet struct {
	KeepCurrentCPA  ScenarioBudget   `json:"keep_current_cpa"`
	ImproveCPA20Pct ScenarioBudget   `json:"improve_cpa_20pct"`
	AtCurrentBudget ScenarioCapacity `json:"at_current_budget"`
}

// ScenariosResult represents the MCP tool output for scenario planning.
type ScenariosResult struct {
	CampaignID         string                      `json:"campaign_id" jsonschema:"campaign identifier"`
	CurrentPerformance campaign.CurrentPerformance `json:"current_performance" jsonschema:"sampled baseline, rounded for display"`
	Scenarios          ScenarioSet                 `json:"scenarios" jsonschema:"three budget and capacity projections"`
	Recommendations    []string                    `json:"recommendations" jsonschema:"localized planning recommendations"`
	Note               string                      `json:"note" jsonschema:"demo data disclaimer"`
}

// ScenariosTool defines the MCP tool schema for scenario planning.
func ScenariosTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calculate_scenarios",
		Description: "Projects the budget needed to reach a conversion target at the current CPA, at a 20% improved CPA, and the capacity of the current budget",
	}
}

// ScenariosHandler executes a scenario planning request.
func ScenariosHandler(sampler performance.Sampler, locale string) mcp.ToolHandlerFor[ScenariosInput, ScenariosResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ScenariosInput) (*mcp.CallToolResult, ScenariosResult, error) {
		campaignID, err := campaign.NormalizeCampaignID(input.CampaignID)
		if err != nil {
			return nil, ScenariosResult{}, toolError(locale, err)
		}
		target, err := campaign.NormalizeTargetConversions(input.TargetConversions)
		if err != nil {
			return nil, ScenariosResult{}, toolError(locale, err)
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.ToolCall)
		defer cancel()

		current, err := sampler.Sample(runCtx, campaignID)
		if err != nil {
			return nil, ScenariosResult{}, fmt.Errorf("sample current performance: %s", localizedError(locale, err))
		}

		projection, err := scenario.Project(current, target)
		if err != nil {
			return nil, ScenariosResult{}, toolError(locale, err)
		}

		result := ScenariosResult{
			CampaignID: campaignID,
			CurrentPerformance: campaign.CurrentPerformance{
				Conversions: current.Conversions,
				Cost:        campaign.Round2(current.Cost),
				CPA:         campaign.Round2(current.CPA),
			},
			Scenarios: ScenarioSet{
				KeepCurrentCPA: ScenarioBudget{
					TargetConversions: projection.KeepCurrentCPA.TargetConversions,
					RequiredBudget:    projection.KeepCurrentCPA.RequiredBudget,
					Note: renderMessage(locale, scenario.MsgNoteKeepCurrent, map[string]string{
						"CPA": fmt.Sprintf("%.2f", projection.KeepCurrentCPA.CPA),
					}),
				},
				ImproveCPA20Pct: ScenarioBudget{
					TargetConversions: projection.ImproveCPA20Pct.TargetConversions,
					RequiredBudget:    projection.ImproveCPA20Pct.RequiredBudget,
					Note: renderMessage(locale, scenario.MsgNoteImproved, map[string]string{
						"CPA": fmt.Sprintf("%.2f", projection.ImproveCPA20Pct.CPA),
					}),
				},
				AtCurrentBudget: ScenarioCapacity{
					PossibleConversions: projection.AtCurrentBudget.PossibleConversions,
					CurrentBudget:       projection.AtCurrentBudget.CurrentBudget,
					Note:                renderMessage(locale, scenario.MsgNoteCurrentBudget, nil),
				},
			},
			Recommendations: []string{
				renderMessage(locale, scenario.MsgRecommendRequiredBudget, map[string]string{
					"TargetConversions": strconv.Itoa(target),
					"RequiredBudget":    fmt.Sprintf("%.0f", projection.KeepCurrentCPA.RequiredBudget),
				}),
				renderMessage(locale, scenario.MsgRecommendOptimizedBudget, map[string]string{
					"RequiredBudget": fmt.Sprintf("%.0f", projection.ImproveCPA20Pct.RequiredBudget),
				}),
				renderMessage(locale, scenario.MsgRecommendCurrentBudget, map[string]string{
					"PossibleConversions": fmt.Sprintf("%.0f", projection.AtCurrentBudget.PossibleConversions),
				}),
			},
			Note: renderMessage(locale, scenario.MsgNoteDemoDisclaimer, nil),
		}
		return nil, result, nil
	}
}
