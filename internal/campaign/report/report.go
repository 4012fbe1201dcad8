// Package report renders multi-campaign health summaries as localized
// text blocks.
package report

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/campaign/health"
	"github.com/louisbranch/adpulse/internal/platform/errors"
	errori18n "github.com/louisbranch/adpulse/internal/platform/errors/i18n"
	"github.com/louisbranch/adpulse/internal/platform/i18n/catalog"
)

// Message keys resolved against the report namespace of the locale bundle.
const (
	MsgHeaderTitle       = "report.header.title"
	MsgHeaderDate        = "report.header.date"
	MsgHeaderAnalyzed    = "report.header.analyzed"
	MsgEntryCampaign     = "report.entry.campaign"
	MsgEntryCPA          = "report.entry.cpa"
	MsgEntryConversions  = "report.entry.conversions"
	MsgEntryStatus       = "report.entry.status"
	MsgEntryAlerts       = "report.entry.alerts"
	MsgEntryIntervention = "report.entry.intervention"
	MsgEntryFailed       = "report.entry.failed"
	MsgFooterCritical    = "report.footer.critical"
)

// Default goals applied to every campaign in a report when the builder is
// not configured otherwise.
const (
	DefaultTargetCPA        = 150
	DefaultDailyBudgetLimit = 1000
)

const (
	maxAlertsPerEntry = 2
	dateLayout        = "02.01.2006 15:04"

	entryIndent = "   "
	alertIndent = "      • "

	glyphUnknown = "⚪"
)

// AnalyzeFunc produces one campaign's health analysis.
type AnalyzeFunc func(ctx context.Context, campaignID string, targets domain.Targets) (health.Analysis, error)

// Builder renders the daily report with one section per campaign.
type Builder struct {
	Analyze AnalyzeFunc
	// Targets holds the report-wide goals; zero falls back to the
	// package defaults.
	Targets domain.Targets
	Locale  string
	// Now overrides the report clock. Tests inject a fixed time.
	Now func() time.Time
}

// Build renders the report for the ids in input order. A failed analysis
// renders inline as a failure entry and never aborts the batch.
func (b Builder) Build(ctx context.Context, campaignIDs []string) (string, error) {
	ids, err := domain.NormalizeCampaignList(campaignIDs)
	if err != nil {
		return "", err
	}

	bundle := catalog.Default()
	targets := b.targets()

	lines := []string{
		bundle.RenderMessage(b.Locale, MsgHeaderTitle, nil),
		bundle.RenderMessage(b.Locale, MsgHeaderDate, map[string]string{
			"Date": b.now().Format(dateLayout),
		}),
		bundle.RenderMessage(b.Locale, MsgHeaderAnalyzed, map[string]string{
			"Count": strconv.Itoa(len(ids)),
		}),
		"",
	}

	criticalCount := 0
	for _, id := range ids {
		analysis, err := b.Analyze(ctx, id, targets)
		if err != nil {
			lines = append(lines, b.failureEntry(bundle, id, err)...)
			continue
		}
		entry, critical := b.successEntry(bundle, analysis)
		if critical {
			criticalCount++
		}
		lines = append(lines, entry...)
	}

	if criticalCount > 0 {
		lines = append(lines, bundle.RenderMessage(b.Locale, MsgFooterCritical, map[string]string{
			"Count": strconv.Itoa(criticalCount),
		}))
	}

	return strings.Join(lines, "\n"), nil
}

func (b Builder) successEntry(bundle *catalog.Bundle, analysis health.Analysis) ([]string, bool) {
	assessment := analysis.Assessment

	lines := []string{
		bundle.RenderMessage(b.Locale, MsgEntryCampaign, map[string]string{
			"Icon":       statusGlyph(assessment.Status),
			"CampaignID": analysis.CampaignID,
		}),
		entryIndent + bundle.RenderMessage(b.Locale, MsgEntryCPA, map[string]string{
			"CPA":    domain.FormatMoney(analysis.Snapshot.AvgCPA),
			"Target": domain.FormatMoney(analysis.Targets.TargetCPA),
		}),
		entryIndent + bundle.RenderMessage(b.Locale, MsgEntryConversions, map[string]string{
			"Conversions": strconv.Itoa(analysis.Snapshot.TotalConversions),
		}),
		entryIndent + bundle.RenderMessage(b.Locale, MsgEntryStatus, map[string]string{
			"Status": strings.ToUpper(string(assessment.Status)),
		}),
	}

	if len(assessment.Alerts) > 0 {
		lines = append(lines, entryIndent+bundle.RenderMessage(b.Locale, MsgEntryAlerts, nil))
		for _, alert := range assessment.Alerts[:min(maxAlertsPerEntry, len(assessment.Alerts))] {
			lines = append(lines, alertIndent+bundle.RenderMessage(b.Locale, alert.Key, alert.Metadata))
		}
	}
	if assessment.ActionRequired {
		lines = append(lines, entryIndent+bundle.RenderMessage(b.Locale, MsgEntryIntervention, nil))
	}

	return append(lines, ""), assessment.ActionRequired
}

func (b Builder) failureEntry(bundle *catalog.Bundle, campaignID string, cause error) []string {
	reason := errori18n.GetCatalog(b.Locale).Format(
		string(errors.CodeOf(cause)), errors.MetadataOf(cause))

	return []string{
		bundle.RenderMessage(b.Locale, MsgEntryCampaign, map[string]string{
			"Icon":       glyphUnknown,
			"CampaignID": campaignID,
		}),
		entryIndent + bundle.RenderMessage(b.Locale, MsgEntryFailed, map[string]string{
			"Reason": reason,
		}),
		"",
	}
}

func (b Builder) targets() domain.Targets {
	if b.Targets == (domain.Targets{}) {
		return domain.Targets{TargetCPA: DefaultTargetCPA, DailyBudgetLimit: DefaultDailyBudgetLimit}
	}
	return b.Targets
}

func (b Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func statusGlyph(status domain.HealthStatus) string {
	switch status {
	case domain.StatusCritical:
		return "🔴"
	case domain.StatusNeedsAttention:
		return "🟡"
	case domain.StatusHealthy:
		return "🟢"
	default:
		return glyphUnknown
	}
}
