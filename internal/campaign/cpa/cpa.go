// Package cpa computes cost-per-acquisition with efficiency banding.
package cpa

import (
	"github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/platform/errors"
)

// Efficiency bands a CPA value against the fixed thresholds.
type Efficiency string

const (
	EfficiencyHigh   Efficiency = "high"
	EfficiencyMedium Efficiency = "medium"
	EfficiencyLow    Efficiency = "low"
)

// Message keys resolved against the cpa namespace of the locale bundle.
const (
	MsgNoteHigh   = "cpa.note.high_efficiency"
	MsgNoteMedium = "cpa.note.medium_efficiency"
	MsgNoteLow    = "cpa.note.low_efficiency"

	MsgRecommendReduceClickCost    = "cpa.recommendation.reduce_click_cost"
	MsgRecommendOptimizeConversion = "cpa.recommendation.optimize_conversion"
	MsgRecommendScaleCampaign      = "cpa.recommendation.scale_campaign"

	MsgInterpretationCostPerConversion = "cpa.interpretation.cost_per_conversion"
)

// Result is one CPA calculation with its banding and advisory keys.
type Result struct {
	Cost        float64
	Conversions int
	// Value is the CPA rounded to two decimals; Exact keeps the raw
	// quotient for interpretation formatting.
	Value             float64
	Exact             float64
	Efficiency        Efficiency
	NoteKey           string
	RecommendationKey string
}

// Calculate divides cost by conversions and bands the result. Negative
// inputs fail as invalid arguments; zero conversions fail as a deliberate
// division error, unlike the snapshot's zero-fallback ratios.
func Calculate(cost float64, conversions int) (Result, error) {
	if cost < 0 {
		return Result{}, errors.New(errors.CodeCostNegative, "cost cannot be negative")
	}
	if conversions < 0 {
		return Result{}, errors.New(errors.CodeConversionsNegative, "conversions cannot be negative")
	}
	if conversions == 0 {
		return Result{}, errors.New(errors.CodeConversionsZero, "cannot calculate CPA with zero conversions")
	}

	exact := cost / float64(conversions)
	out := Result{
		Cost:        cost,
		Conversions: conversions,
		Value:       domain.Round2(exact),
		Exact:       exact,
	}

	switch {
	case exact < 100:
		out.Efficiency = EfficiencyHigh
		out.NoteKey = MsgNoteHigh
	case exact < 500:
		out.Efficiency = EfficiencyMedium
		out.NoteKey = MsgNoteMedium
	default:
		out.Efficiency = EfficiencyLow
		out.NoteKey = MsgNoteLow
	}

	// The advisory uses its own boundaries: exactly 100 bands medium but
	// still recommends scaling.
	switch {
	case exact > 500:
		out.RecommendationKey = MsgRecommendReduceClickCost
	case exact > 100:
		out.RecommendationKey = MsgRecommendOptimizeConversion
	default:
		out.RecommendationKey = MsgRecommendScaleCampaign
	}
	return out, nil
}

// ConversionsPerCost reports the inverse ratio, and false when cost is
// zero and the ratio is undefined.
func (r Result) ConversionsPerCost() (float64, bool) {
	if r.Cost <= 0 {
		return 0, false
	}
	return float64(r.Conversions) / r.Cost, true
}
