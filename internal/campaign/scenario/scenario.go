// Package scenario projects budgets and conversion capacity from a
// campaign's current performance baseline.
package scenario

import "github.com/louisbranch/adpulse/internal/campaign/domain"

// Message keys resolved against the scenarios namespace of the locale bundle.
const (
	MsgNoteKeepCurrent    = "scenarios.note.keep_current"
	MsgNoteImproved       = "scenarios.note.improved"
	MsgNoteCurrentBudget  = "scenarios.note.current_budget"
	MsgNoteDemoDisclaimer = "scenarios.note.demo_disclaimer"

	MsgRecommendRequiredBudget  = "scenarios.recommendation.required_budget"
	MsgRecommendOptimizedBudget = "scenarios.recommendation.optimized_budget"
	MsgRecommendCurrentBudget   = "scenarios.recommendation.current_budget"
)

// Plan is a budget projection for reaching the target at an assumed CPA.
type Plan struct {
	TargetConversions int
	// RequiredBudget is rounded to two decimals; CPA keeps the assumed
	// value unrounded for note formatting.
	RequiredBudget float64
	CPA            float64
}

// Capacity is what the current budget buys without any change.
type Capacity struct {
	PossibleConversions float64
	CurrentBudget       float64
}

// Projection holds the three independent what-if calculations.
type Projection struct {
	KeepCurrentCPA  Plan
	ImproveCPA20Pct Plan
	AtCurrentBudget Capacity
}

// Project computes the three scenarios from the current baseline. The
// target must be positive.
func Project(current domain.CurrentPerformance, targetConversions int) (Projection, error) {
	target, err := domain.NormalizeTargetConversions(targetConversions)
	if err != nil {
		return Projection{}, err
	}

	improvedCPA := current.CPA * 0.8
	var possible float64
	if current.CPA > 0 {
		possible = current.Cost / current.CPA
	}

	return Projection{
		KeepCurrentCPA: Plan{
			TargetConversions: target,
			RequiredBudget:    domain.Round2(float64(target) * current.CPA),
			CPA:               current.CPA,
		},
		ImproveCPA20Pct: Plan{
			TargetConversions: target,
			RequiredBudget:    domain.Round2(float64(target) * improvedCPA),
			CPA:               improvedCPA,
		},
		AtCurrentBudget: Capacity{
			PossibleConversions: domain.Round1(possible),
			CurrentBudget:       domain.Round2(current.Cost),
		},
	}, nil
}
