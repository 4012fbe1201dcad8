// Package campaignfakes provides deterministic metrics provider stand-ins
// for analyzer and tool handler tests.
package campaignfakes

import (
	"context"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
)

// Provider returns canned performance windows and records the last request.
// Per-campaign responses take precedence over the shared ones.
type Provider struct {
	Performance     domain.Performance
	PerformanceByID map[string]domain.Performance
	Err             error
	ErrByID         map[string]error

	Calls          int
	LastCampaignID string
	LastDays       int
}

// Fetch implements performance.Provider.
func (p *Provider) Fetch(ctx context.Context, campaignID string, days int) (domain.Performance, error) {
	p.Calls++
	p.LastCampaignID = campaignID
	p.LastDays = days

	if err, ok := p.ErrByID[campaignID]; ok {
		return domain.Performance{}, err
	}
	if p.Err != nil {
		return domain.Performance{}, p.Err
	}

	perf, ok := p.PerformanceByID[campaignID]
	if !ok {
		perf = p.Performance
	}
	if perf.CampaignID == "" {
		perf.CampaignID = campaignID
	}
	if perf.PeriodDays == 0 {
		perf.PeriodDays = days
	}
	if perf.Trend == "" {
		perf.Trend = domain.TrendStable
	}
	if perf.Source == "" {
		perf.Source = domain.SourceDemo
	}
	return perf, nil
}

// Sampler returns a canned scenario baseline and records the last request.
type Sampler struct {
	Current domain.CurrentPerformance
	Err     error

	Calls          int
	LastCampaignID string
}

// Sample implements performance.Sampler.
func (s *Sampler) Sample(ctx context.Context, campaignID string) (domain.CurrentPerformance, error) {
	s.Calls++
	s.LastCampaignID = campaignID
	if s.Err != nil {
		return domain.CurrentPerformance{}, s.Err
	}
	return s.Current, nil
}

// MustSnapshot builds a snapshot for test fixtures and panics on invalid
// input.
func MustSnapshot(cost float64, conversions, clicks, impressions, days int) domain.Snapshot {
	snapshot, err := domain.NewSnapshot(cost, conversions, clicks, impressions, days)
	if err != nil {
		panic(err)
	}
	return snapshot
}
