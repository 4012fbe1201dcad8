// Package performance defines the campaign metrics provider contract and
// the demo generator that stands in for the Direct API integration.
package performance

import (
	"context"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
)

// Provider fetches aggregated campaign metrics for an analysis window.
// A non-nil error carries a platform error code; upstream failures are
// classified so callers can render them as tagged failure entries.
type Provider interface {
	Fetch(ctx context.Context, campaignID string, days int) (domain.Performance, error)
}

// Sampler draws a campaign's current cost and conversion baseline for
// scenario planning.
type Sampler interface {
	Sample(ctx context.Context, campaignID string) (domain.CurrentPerformance, error)
}
