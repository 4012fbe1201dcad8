package performance

import (
	"context"
	"math/rand"
	"reflect"
	"testing"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/platform/errors"
)

// TestGenerateWithRngDeterministic ensures identical sources produce
// identical performance windows.
func TestGenerateWithRngDeterministic(t *testing.T) {
	demo := Demo{}

	first, err := demo.GenerateWithRng(rand.New(rand.NewSource(42)), "12345", 7)
	if err != nil {
		t.Fatalf("expected performance, got error %v", err)
	}
	second, err := demo.GenerateWithRng(rand.New(rand.NewSource(42)), "12345", 7)
	if err != nil {
		t.Fatalf("expected performance, got error %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical draws, got %+v and %+v", first, second)
	}
	if first.CampaignID != "12345" {
		t.Fatalf("expected campaign id 12345, got %q", first.CampaignID)
	}
	if first.PeriodDays != 7 || first.Snapshot.DaysAnalyzed != 7 {
		t.Fatalf("expected 7-day window, got period=%d days=%d", first.PeriodDays, first.Snapshot.DaysAnalyzed)
	}
	if first.Source != domain.SourceDemo {
		t.Fatalf("expected demo source, got %q", first.Source)
	}
}

// TestGenerateWithRngRanges ensures every draw stays inside the documented
// distribution bounds.
func TestGenerateWithRngRanges(t *testing.T) {
	demo := Demo{}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		perf, err := demo.GenerateWithRng(rng, "12345", 7)
		if err != nil {
			t.Fatalf("draw %d: expected performance, got error %v", i, err)
		}
		s := perf.Snapshot

		switch perf.Trend {
		case domain.TrendImproving, domain.TrendStable, domain.TrendWorsening:
		default:
			t.Fatalf("draw %d: unexpected trend %q", i, perf.Trend)
		}
		if s.TotalCost < 25500 || s.TotalCost > 104000 {
			t.Fatalf("draw %d: cost %v outside [25500, 104000]", i, s.TotalCost)
		}
		if s.TotalConversions < 35 || s.TotalConversions > 230 {
			t.Fatalf("draw %d: conversions %d outside [35, 230]", i, s.TotalConversions)
		}
		if s.TotalClicks < s.TotalConversions*8 || s.TotalClicks > s.TotalConversions*12 {
			t.Fatalf("draw %d: clicks %d outside conversion multiplier bounds", i, s.TotalClicks)
		}
		if s.TotalImpressions < s.TotalClicks*10 || s.TotalImpressions > s.TotalClicks*15 {
			t.Fatalf("draw %d: impressions %d outside click multiplier bounds", i, s.TotalImpressions)
		}
		if s.AvgCPA <= 0 {
			t.Fatalf("draw %d: expected positive avg CPA, got %v", i, s.AvgCPA)
		}
		if s.AvgCTR < 6.66 || s.AvgCTR > 10.01 {
			t.Fatalf("draw %d: avg CTR %v outside [6.66, 10.01]", i, s.AvgCTR)
		}
	}
}

// TestFetchUsesInjectedSeed ensures Fetch reproduces the draw made with the
// same seed directly.
func TestFetchUsesInjectedSeed(t *testing.T) {
	demo := Demo{Seed: func() (int64, error) { return 42, nil }}

	fetched, err := demo.Fetch(context.Background(), "12345", 3)
	if err != nil {
		t.Fatalf("expected performance, got error %v", err)
	}
	direct, err := demo.GenerateWithRng(rand.New(rand.NewSource(42)), "12345", 3)
	if err != nil {
		t.Fatalf("expected performance, got error %v", err)
	}
	if !reflect.DeepEqual(fetched, direct) {
		t.Fatalf("expected seeded fetch to match direct draw, got %+v and %+v", fetched, direct)
	}
}

// TestFetchSeedFailure ensures a failed seed surfaces as an error.
func TestFetchSeedFailure(t *testing.T) {
	demo := Demo{Seed: func() (int64, error) {
		return 0, errors.New(errors.CodeSeedFailed, "no entropy")
	}}

	if _, err := demo.Fetch(context.Background(), "12345", 3); errors.CodeOf(err) != errors.CodeSeedFailed {
		t.Fatalf("expected code %s, got %v", errors.CodeSeedFailed, err)
	}
	if _, err := demo.Sample(context.Background(), "12345"); errors.CodeOf(err) != errors.CodeSeedFailed {
		t.Fatalf("expected code %s, got %v", errors.CodeSeedFailed, err)
	}
}

// TestSampleWithRng ensures the scenario baseline draw stays in bounds and
// derives CPA from its own cost and conversions.
func TestSampleWithRng(t *testing.T) {
	demo := Demo{}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		current := demo.SampleWithRng(rng, "12345")
		if current.Cost < 30000 || current.Cost >= 80000 {
			t.Fatalf("draw %d: cost %v outside [30000, 80000)", i, current.Cost)
		}
		if current.Conversions < 50 || current.Conversions > 200 {
			t.Fatalf("draw %d: conversions %d outside [50, 200]", i, current.Conversions)
		}
		want := current.Cost / float64(current.Conversions)
		if current.CPA != want {
			t.Fatalf("draw %d: expected cpa %v, got %v", i, want, current.CPA)
		}
	}

	seeded := Demo{Seed: func() (int64, error) { return 11, nil }}
	sampled, err := seeded.Sample(context.Background(), "12345")
	if err != nil {
		t.Fatalf("expected sample, got error %v", err)
	}
	direct := demo.SampleWithRng(rand.New(rand.NewSource(11)), "12345")
	if !reflect.DeepEqual(sampled, direct) {
		t.Fatalf("expected seeded sample to match direct draw, got %+v and %+v", sampled, direct)
	}
}
