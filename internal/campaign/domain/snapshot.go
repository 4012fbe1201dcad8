package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/louisbranch/adpulse/internal/platform/errors"
)

// Snapshot aggregates campaign metrics over one analysis window. Derived
// ratios fall back to zero when their denominator is zero, so a snapshot
// never carries a division failure into the health rules.
type Snapshot struct {
	TotalCost        float64 `json:"total_cost"`
	TotalConversions int     `json:"total_conversions"`
	TotalClicks      int     `json:"total_clicks"`
	TotalImpressions int     `json:"total_impressions"`
	AvgCPA           float64 `json:"avg_cpa"`
	AvgCTR           float64 `json:"avg_ctr"`
	AvgCPC           float64 `json:"avg_cpc"`
	DaysAnalyzed     int     `json:"days_analyzed"`
}

// NewSnapshot validates raw totals and derives the average ratios, rounded
// to two decimals.
func NewSnapshot(cost float64, conversions, clicks, impressions, days int) (Snapshot, error) {
	switch {
	case cost < 0:
		return Snapshot{}, snapshotInvalid("negative cost")
	case conversions < 0:
		return Snapshot{}, snapshotInvalid("negative conversions")
	case clicks < 0:
		return Snapshot{}, snapshotInvalid("negative clicks")
	case impressions < 0:
		return Snapshot{}, snapshotInvalid("negative impressions")
	case days < 1:
		return Snapshot{}, snapshotInvalid("analysis window below one day")
	}

	snapshot := Snapshot{
		TotalCost:        Round2(cost),
		TotalConversions: conversions,
		TotalClicks:      clicks,
		TotalImpressions: impressions,
		DaysAnalyzed:     days,
	}
	if conversions > 0 {
		snapshot.AvgCPA = Round2(cost / float64(conversions))
	}
	if impressions > 0 {
		snapshot.AvgCTR = Round2(float64(clicks) / float64(impressions) * 100)
	}
	if clicks > 0 {
		snapshot.AvgCPC = Round2(cost / float64(clicks))
	}
	return snapshot, nil
}

// AvgDailyCost returns the mean spend per analyzed day.
func (s Snapshot) AvgDailyCost() float64 {
	if s.DaysAnalyzed < 1 {
		return 0
	}
	return s.TotalCost / float64(s.DaysAnalyzed)
}

func snapshotInvalid(reason string) error {
	return errors.WithMetadata(errors.CodeSnapshotInvalid,
		fmt.Sprintf("campaign snapshot is invalid: %s", reason),
		map[string]string{"Reason": reason})
}

// Round2 rounds to two decimal places, the precision of money and ratio
// fields on the wire.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatMoney renders a monetary amount without trailing zeros, matching
// how amounts appear inside alerts and report lines.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
