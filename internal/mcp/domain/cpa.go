package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/adpulse/internal/campaign/cpa"
)

// CPAInput represents the MCP tool input for a CPA calculation.
type CPAInput struct {
	Cost        float64 `json:"cost" jsonschema:"total spend in RUB, must not be negative"`
	Conversions int     `json:"conversions" jsonschema:"conversions achieved, must be positive"`
}

// CPAParameters echoes the validated calculation inputs.
type CPAParameters struct {
	Cost        float64 `json:"cost"`
	Conversions int     `json:"conversions"`
}

// CPAInterpretation explains the calculated value in assistant-friendly terms.
type CPAInterpretation struct {
	CostPerConversion  string `json:"cost_per_conversion"`
	ConversionsPerCost string `json:"conversions_per_cost"`
	Recommendation     string `json:"recommendation"`
}

// CPAResult represents the MCP tool output for a CPA calculation.
type CPAResult struct {
	Status          string            `json:"status" jsonschema:"execution status (success)"`
	InputParameters CPAParameters     `json:"input_parameters" jsonschema:"validated inputs"`
	CalculatedCPA   float64           `json:"calculated_cpa" jsonschema:"cost per acquisition rounded to 2 decimals"`
	EfficiencyNote  string            `json:"efficiency_note" jsonschema:"localized efficiency assessment"`
	EfficiencyLevel string            `json:"efficiency_level" jsonschema:"high, medium, or low"`
	Interpretation  CPAInterpretation `json:"interpretation" jsonschema:"derived ratios and the advisory"`
}

// CPATool defines the MCP tool schema for CPA calculation.
func CPATool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calculate_cpa",
		Description: "Calculates cost per acquisition from spend and conversions, with an efficiency band and advisory",
	}
}

// CPAHandler executes a CPA calculation request.
func CPAHandler(locale string) mcp.ToolHandlerFor[CPAInput, CPAResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CPAInput) (*mcp.CallToolResult, CPAResult, error) {
		calculated, err := cpa.Calculate(input.Cost, input.Conversions)
		if err != nil {
			return nil, CPAResult{}, toolError(locale, err)
		}

		interpretation := CPAInterpretation{
			CostPerConversion: renderMessage(locale, cpa.MsgInterpretationCostPerConversion, map[string]string{
				"CPA": fmt.Sprintf("%.2f", calculated.Exact),
			}),
			ConversionsPerCost: notAvailable,
			Recommendation:     renderMessage(locale, calculated.RecommendationKey, nil),
		}
		if ratio, ok := calculated.ConversionsPerCost(); ok {
			interpretation.ConversionsPerCost = fmt.Sprintf("%.4f", ratio)
		}

		result := CPAResult{
			Status:          statusSuccess,
			InputParameters: CPAParameters{Cost: calculated.Cost, Conversions: calculated.Conversions},
			CalculatedCPA:   calculated.Value,
			EfficiencyNote:  renderMessage(locale, calculated.NoteKey, nil),
			EfficiencyLevel: string(calculated.Efficiency),
			Interpretation:  interpretation,
		}
		return nil, result, nil
	}
}
