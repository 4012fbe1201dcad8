package health

import (
	"context"
	"time"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/campaign/performance"
)

// AnalysisWindowDays is the fixed window the analyzer fetches before
// applying the rules.
const AnalysisWindowDays = 3

// Analysis is one composed health check: the fetched snapshot, the targets
// it was judged against, and the verdict.
type Analysis struct {
	CampaignID string
	AnalyzedAt time.Time
	Snapshot   domain.Snapshot
	Targets    domain.Targets
	Assessment Assessment
}

// Analyzer composes a provider fetch with rule evaluation.
type Analyzer struct {
	Provider performance.Provider
	// Now overrides the analysis clock. Tests inject a fixed time.
	Now func() time.Time
}

// Analyze fetches the campaign's recent window and evaluates it. Provider
// failures come back unchanged so callers can render them as tagged
// failure entries instead of aborting a batch.
func (a Analyzer) Analyze(ctx context.Context, campaignID string, targets domain.Targets) (Analysis, error) {
	id, err := domain.NormalizeCampaignID(campaignID)
	if err != nil {
		return Analysis{}, err
	}
	normalized, err := domain.NormalizeTargets(targets.TargetCPA, targets.DailyBudgetLimit)
	if err != nil {
		return Analysis{}, err
	}

	perf, err := a.Provider.Fetch(ctx, id, AnalysisWindowDays)
	if err != nil {
		return Analysis{}, err
	}

	assessment, err := Evaluate(perf.Snapshot, normalized)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		CampaignID: id,
		AnalyzedAt: a.now(),
		Snapshot:   perf.Snapshot,
		Targets:    normalized,
		Assessment: assessment,
	}, nil
}

func (a Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
