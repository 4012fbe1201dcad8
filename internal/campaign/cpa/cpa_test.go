package cpa

import (
	"testing"

	"github.com/louisbranch/adpulse/internal/platform/errors"
)

// TestCalculateBands walks the efficiency bands and the advisory's own
// boundaries.
func TestCalculateBands(t *testing.T) {
	tests := []struct {
		name           string
		cost           float64
		conversions    int
		wantValue      float64
		wantEfficiency Efficiency
		wantNote       string
		wantRec        string
	}{
		{
			name: "reference medium", cost: 10000, conversions: 50,
			wantValue: 200, wantEfficiency: EfficiencyMedium,
			wantNote: MsgNoteMedium, wantRec: MsgRecommendOptimizeConversion,
		},
		{
			name: "high efficiency", cost: 50, conversions: 1,
			wantValue: 50, wantEfficiency: EfficiencyHigh,
			wantNote: MsgNoteHigh, wantRec: MsgRecommendScaleCampaign,
		},
		{
			name: "exactly 100 bands medium but still scales", cost: 100, conversions: 1,
			wantValue: 100, wantEfficiency: EfficiencyMedium,
			wantNote: MsgNoteMedium, wantRec: MsgRecommendScaleCampaign,
		},
		{
			name: "exactly 500 bands low but still optimizes", cost: 500, conversions: 1,
			wantValue: 500, wantEfficiency: EfficiencyLow,
			wantNote: MsgNoteLow, wantRec: MsgRecommendOptimizeConversion,
		},
		{
			name: "low efficiency", cost: 501, conversions: 1,
			wantValue: 501, wantEfficiency: EfficiencyLow,
			wantNote: MsgNoteLow, wantRec: MsgRecommendReduceClickCost,
		},
		{
			name: "rounded to two decimals", cost: 1000, conversions: 3,
			wantValue: 333.33, wantEfficiency: EfficiencyMedium,
			wantNote: MsgNoteMedium, wantRec: MsgRecommendOptimizeConversion,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Calculate(tc.cost, tc.conversions)
			if err != nil {
				t.Fatalf("expected result, got error %v", err)
			}
			if result.Value != tc.wantValue {
				t.Fatalf("expected cpa %v, got %v", tc.wantValue, result.Value)
			}
			if result.Efficiency != tc.wantEfficiency {
				t.Fatalf("expected efficiency %s, got %s", tc.wantEfficiency, result.Efficiency)
			}
			if result.NoteKey != tc.wantNote {
				t.Fatalf("expected note %q, got %q", tc.wantNote, result.NoteKey)
			}
			if result.RecommendationKey != tc.wantRec {
				t.Fatalf("expected recommendation %q, got %q", tc.wantRec, result.RecommendationKey)
			}
		})
	}
}

// TestCalculateFailures covers the argument and division errors.
func TestCalculateFailures(t *testing.T) {
	tests := []struct {
		name        string
		cost        float64
		conversions int
		wantCode    errors.Code
		wantClass   errors.Class
	}{
		{name: "negative cost", cost: -1, conversions: 5,
			wantCode: errors.CodeCostNegative, wantClass: errors.ClassInvalidArgument},
		{name: "negative conversions", cost: 100, conversions: -5,
			wantCode: errors.CodeConversionsNegative, wantClass: errors.ClassInvalidArgument},
		{name: "zero conversions", cost: 100, conversions: 0,
			wantCode: errors.CodeConversionsZero, wantClass: errors.ClassDivisionByZero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.cost, tc.conversions)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.CodeOf(err); got != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, got)
			}
			if got := errors.ClassOf(err); got != tc.wantClass {
				t.Fatalf("expected class %s, got %s", tc.wantClass, got)
			}
		})
	}
}

// TestConversionsPerCost covers the defined and undefined inverse ratio.
func TestConversionsPerCost(t *testing.T) {
	result, err := Calculate(10000, 50)
	if err != nil {
		t.Fatalf("expected result, got error %v", err)
	}
	ratio, ok := result.ConversionsPerCost()
	if !ok {
		t.Fatal("expected a defined inverse ratio")
	}
	if ratio != 0.005 {
		t.Fatalf("expected 0.005, got %v", ratio)
	}

	free, err := Calculate(0, 5)
	if err != nil {
		t.Fatalf("expected result, got error %v", err)
	}
	if free.Efficiency != EfficiencyHigh {
		t.Fatalf("expected zero cost to band high, got %s", free.Efficiency)
	}
	if _, ok := free.ConversionsPerCost(); ok {
		t.Fatal("expected undefined inverse ratio for zero cost")
	}
}
