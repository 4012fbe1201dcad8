// Package domain defines the MCP tool surface for campaign analytics:
// typed tool inputs and outputs, tool schemas, and the handlers that bind
// them to the campaign calculators and the metrics provider. All
// human-readable strings resolve through the locale bundle at this
// boundary; the calculators below it traffic in message keys.
package domain

import (
	"fmt"

	"github.com/louisbranch/adpulse/internal/campaign/health"
	"github.com/louisbranch/adpulse/internal/platform/errors"
	errori18n "github.com/louisbranch/adpulse/internal/platform/errors/i18n"
	"github.com/louisbranch/adpulse/internal/platform/i18n/catalog"
)

// Wire values shared across tool payloads.
const (
	statusSuccess           = "success"
	analysisStatusCompleted = "completed"
	analysisStatusFailed    = "failed"
	notAvailable            = "N/A"
)

// renderMessage resolves a message key against the locale bundle.
func renderMessage(locale, key string, data map[string]string) string {
	return catalog.Default().RenderMessage(locale, key, data)
}

// renderAlerts localizes triggered alerts in rule order.
func renderAlerts(locale string, alerts []health.Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		out = append(out, renderMessage(locale, alert.Key, alert.Metadata))
	}
	return out
}

// renderRecommendations localizes recommendations in rule order.
func renderRecommendations(locale string, recommendations []health.Recommendation) []string {
	out := make([]string, 0, len(recommendations))
	for _, recommendation := range recommendations {
		out = append(out, renderMessage(locale, recommendation.Key, recommendation.Metadata))
	}
	return out
}

// localizedError renders the operator-facing message for a coded error.
func localizedError(locale string, err error) string {
	return errori18n.GetCatalog(locale).Format(string(errors.CodeOf(err)), errors.MetadataOf(err))
}

// toolError converts a coded failure into the localized error the SDK
// reports to the client as an error tool result.
func toolError(locale string, err error) error {
	return fmt.Errorf("%s", localizedError(locale, err))
}
