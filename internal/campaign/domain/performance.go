package domain

// Performance is the metrics provider's success payload for one campaign
// window.
type Performance struct {
	CampaignID string
	PeriodDays int
	Trend      Trend
	Source     Source
	Snapshot   Snapshot
}

// CurrentPerformance is the scenario calculator's baseline: what the
// campaign spends and converts today. Cost and CPA stay unrounded so the
// projections work on exact values; rounding happens at the payload edge.
type CurrentPerformance struct {
	Conversions int     `json:"conversions"`
	Cost        float64 `json:"cost"`
	CPA         float64 `json:"cpa"`
}
