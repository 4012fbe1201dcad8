// Package health implements the rule-based campaign health evaluator: a
// pure decision procedure over a metrics snapshot and caller targets, plus
// the analyzer that feeds it from a metrics provider.
package health

import (
	"fmt"
	"strconv"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
)

// Message keys resolved against the health namespace of the locale bundle.
const (
	MsgAlertCPACritical     = "health.alert.cpa_critical"
	MsgAlertCPAHigh         = "health.alert.cpa_high"
	MsgAlertBudgetOverspend = "health.alert.budget_overspend"
	MsgAlertNoConversions   = "health.alert.no_conversions"
	MsgAlertHighCTRLowConv  = "health.alert.high_ctr_low_conversion"

	MsgRecommendPause            = "health.recommendation.pause_campaign"
	MsgRecommendReviewCreatives  = "health.recommendation.review_creatives"
	MsgRecommendLowerBids        = "health.recommendation.lower_bids"
	MsgRecommendNegativeKeywords = "health.recommendation.add_negative_keywords"
	MsgRecommendDailyLimit       = "health.recommendation.set_daily_limit"
	MsgRecommendLandingPage      = "health.recommendation.check_landing_page"
	MsgRecommendTargeting        = "health.recommendation.refine_targeting"

	MsgSummaryCritical       = "health.summary.critical"
	MsgSummaryNeedsAttention = "health.summary.needs_attention"
	MsgSummaryHealthy        = "health.summary.healthy"
)

// Alert is one triggered rule's warning: a message key plus pre-formatted
// template data, localized at the rendering boundary.
type Alert struct {
	Issue    domain.IssueCode
	Key      string
	Metadata map[string]string
}

// Recommendation is one optimization suggestion, same key+metadata shape.
type Recommendation struct {
	Key      string
	Metadata map[string]string
}

// Assessment is the evaluator's verdict for one snapshot. Issues, alerts,
// and recommendations keep rule evaluation order.
type Assessment struct {
	Issues          []domain.IssueCode
	Alerts          []Alert
	Recommendations []Recommendation
	Score           int
	Status          domain.HealthStatus
	ActionRequired  bool
}

// HasIssue reports whether the given rule fired.
func (a Assessment) HasIssue(code domain.IssueCode) bool {
	for _, issue := range a.Issues {
		if issue == code {
			return true
		}
	}
	return false
}

// SummaryKey selects the localized one-line summary for this assessment.
func (a Assessment) SummaryKey() string {
	switch {
	case a.ActionRequired:
		return MsgSummaryCritical
	case len(a.Issues) > 0:
		return MsgSummaryNeedsAttention
	default:
		return MsgSummaryHealthy
	}
}

// Evaluate applies the health rules to a snapshot in fixed order and scores
// the result. Pure: no I/O, deterministic for identical inputs. Non-positive
// targets are rejected.
func Evaluate(snapshot domain.Snapshot, targets domain.Targets) (Assessment, error) {
	normalized, err := domain.NormalizeTargets(targets.TargetCPA, targets.DailyBudgetLimit)
	if err != nil {
		return Assessment{}, err
	}

	var out Assessment
	actualCPA := snapshot.AvgCPA
	avgDailyCost := snapshot.AvgDailyCost()

	// Rule 1: CPA against target. Critical supersedes high, so at most one
	// of the two fires.
	switch {
	case actualCPA > normalized.TargetCPA*1.5:
		overagePct := (actualCPA/normalized.TargetCPA - 1) * 100
		out.addIssue(domain.IssueCPACritical, Alert{
			Issue: domain.IssueCPACritical,
			Key:   MsgAlertCPACritical,
			Metadata: map[string]string{
				"CPA":    domain.FormatMoney(actualCPA),
				"Target": domain.FormatMoney(normalized.TargetCPA),
				"Pct":    fmt.Sprintf("%.0f", overagePct),
			},
		})
		out.addRecommendation(MsgRecommendPause, nil)
		out.addRecommendation(MsgRecommendReviewCreatives, nil)
	case actualCPA > normalized.TargetCPA*1.2:
		out.addIssue(domain.IssueCPAHigh, Alert{
			Issue: domain.IssueCPAHigh,
			Key:   MsgAlertCPAHigh,
			Metadata: map[string]string{
				"CPA":    domain.FormatMoney(actualCPA),
				"Target": domain.FormatMoney(normalized.TargetCPA),
			},
		})
		out.addRecommendation(MsgRecommendLowerBids, nil)
		out.addRecommendation(MsgRecommendNegativeKeywords, nil)
	}

	// Rule 2: budget overspend.
	if avgDailyCost > normalized.DailyBudgetLimit {
		out.addIssue(domain.IssueBudgetOverspend, Alert{
			Issue: domain.IssueBudgetOverspend,
			Key:   MsgAlertBudgetOverspend,
			Metadata: map[string]string{
				"Avg":   fmt.Sprintf("%.0f", avgDailyCost),
				"Limit": domain.FormatMoney(normalized.DailyBudgetLimit),
			},
		})
		out.addRecommendation(MsgRecommendDailyLimit, map[string]string{
			"Limit": domain.FormatMoney(normalized.DailyBudgetLimit),
		})
	}

	// Rule 3: traffic without conversions.
	if snapshot.TotalClicks > 50 && snapshot.TotalConversions == 0 {
		out.addIssue(domain.IssueNoConversions, Alert{
			Issue: domain.IssueNoConversions,
			Key:   MsgAlertNoConversions,
			Metadata: map[string]string{
				"Clicks": strconv.Itoa(snapshot.TotalClicks),
			},
		})
		out.addRecommendation(MsgRecommendLandingPage, nil)
	}

	// Rule 4: high CTR with a low conversion rate. Skipped when there are
	// no clicks, since the conversion rate is undefined then.
	if snapshot.TotalClicks > 0 {
		conversionRate := float64(snapshot.TotalConversions) / float64(snapshot.TotalClicks)
		if snapshot.AvgCTR > 5 && conversionRate < 0.01 {
			out.addIssue(domain.IssueHighCTRLowConv, Alert{
				Issue: domain.IssueHighCTRLowConv,
				Key:   MsgAlertHighCTRLowConv,
				Metadata: map[string]string{
					"CTR": fmt.Sprintf("%.1f", snapshot.AvgCTR),
				},
			})
			out.addRecommendation(MsgRecommendTargeting, nil)
		}
	}

	out.Score = scoreFor(out)
	out.Status = StatusForScore(out.Score)
	out.ActionRequired = out.HasIssue(domain.IssueCPACritical)
	return out, nil
}

func (a *Assessment) addIssue(code domain.IssueCode, alert Alert) {
	a.Issues = append(a.Issues, code)
	a.Alerts = append(a.Alerts, alert)
}

func (a *Assessment) addRecommendation(key string, metadata map[string]string) {
	a.Recommendations = append(a.Recommendations, Recommendation{Key: key, Metadata: metadata})
}

func scoreFor(a Assessment) int {
	switch {
	case a.HasIssue(domain.IssueCPACritical):
		return 20
	case a.HasIssue(domain.IssueCPAHigh):
		return 50
	case len(a.Issues) > 0:
		return 70
	default:
		return 100
	}
}

// StatusForScore maps a health score to its status band.
func StatusForScore(score int) domain.HealthStatus {
	switch {
	case score >= 80:
		return domain.StatusHealthy
	case score >= 50:
		return domain.StatusNeedsAttention
	default:
		return domain.StatusCritical
	}
}
