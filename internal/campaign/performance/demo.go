package performance

import (
	"context"
	"math/rand"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/random"
)

// Demo synthesizes realistic campaign metrics. It implements both Provider
// and Sampler. Every call seeds a fresh generator, so concurrent tool calls
// never share PRNG state.
type Demo struct {
	// Seed overrides the crypto-sourced seed. Tests inject a fixed seed
	// for reproducible draws.
	Seed func() (int64, error)
}

// Fetch implements Provider with synthesized data.
func (d Demo) Fetch(ctx context.Context, campaignID string, days int) (domain.Performance, error) {
	rng, err := d.rng()
	if err != nil {
		return domain.Performance{}, err
	}
	return d.GenerateWithRng(rng, campaignID, days)
}

// Sample implements Sampler with synthesized data.
func (d Demo) Sample(ctx context.Context, campaignID string) (domain.CurrentPerformance, error) {
	rng, err := d.rng()
	if err != nil {
		return domain.CurrentPerformance{}, err
	}
	return d.SampleWithRng(rng, campaignID), nil
}

// GenerateWithRng synthesizes one performance window from the provided
// source. Draw order is fixed: baseline cost, baseline conversions, trend,
// click multiplier, impression multiplier.
func (d Demo) GenerateWithRng(rng *rand.Rand, campaignID string, days int) (domain.Performance, error) {
	baseCost := 30000 + rng.Float64()*50000
	baseConversions := rng.Intn(151) + 50
	trend := domain.Trends()[rng.Intn(3)]

	totalCost := baseCost
	totalConversions := baseConversions
	switch trend {
	case domain.TrendImproving:
		totalCost = baseCost * 0.85
		totalConversions = int(float64(baseConversions) * 1.15)
	case domain.TrendWorsening:
		totalCost = baseCost * 1.3
		totalConversions = int(float64(baseConversions) * 0.7)
	}

	totalClicks := int(float64(totalConversions) * (8 + rng.Float64()*4))
	totalImpressions := totalClicks * (rng.Intn(6) + 10)

	snapshot, err := domain.NewSnapshot(totalCost, totalConversions, totalClicks, totalImpressions, days)
	if err != nil {
		return domain.Performance{}, err
	}
	return domain.Performance{
		CampaignID: campaignID,
		PeriodDays: days,
		Trend:      trend,
		Source:     domain.SourceDemo,
		Snapshot:   snapshot,
	}, nil
}

// SampleWithRng draws the scenario baseline from the same distribution as
// the performance window, without a trend adjustment. CPA stays unrounded.
func (d Demo) SampleWithRng(rng *rand.Rand, campaignID string) domain.CurrentPerformance {
	cost := 30000 + rng.Float64()*50000
	conversions := rng.Intn(151) + 50
	var cpa float64
	if conversions > 0 {
		cpa = cost / float64(conversions)
	}
	return domain.CurrentPerformance{Conversions: conversions, Cost: cost, CPA: cpa}
}

func (d Demo) rng() (*rand.Rand, error) {
	newSeed := d.Seed
	if newSeed == nil {
		newSeed = random.NewSeed
	}
	seed, err := newSeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(seed)), nil
}
