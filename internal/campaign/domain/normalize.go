package domain

import (
	"strconv"
	"strings"

	"github.com/louisbranch/adpulse/internal/platform/errors"
)

// DefaultPeriodDays is the analysis window applied when a caller omits the
// days argument.
const DefaultPeriodDays = 7

// NormalizeCampaignID trims the id and rejects blank values.
func NormalizeCampaignID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", errors.New(errors.CodeCampaignIDEmpty, "campaign_id is required")
	}
	return trimmed, nil
}

// NormalizePeriodDays applies the default window to an omitted value and
// rejects negatives.
func NormalizePeriodDays(days int) (int, error) {
	if days == 0 {
		return DefaultPeriodDays, nil
	}
	if days < 0 {
		return 0, errors.WithMetadata(errors.CodePeriodDaysInvalid,
			"period_days must be positive",
			map[string]string{"Days": strconv.Itoa(days)})
	}
	return days, nil
}

// NormalizeCampaignList trims every id, drops blanks, and rejects a list
// with nothing left to analyze.
func NormalizeCampaignList(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.CodeCampaignListEmpty, "campaign_ids must name at least one campaign")
	}
	return out, nil
}

// NormalizeTargetConversions rejects non-positive planning goals.
func NormalizeTargetConversions(target int) (int, error) {
	if target <= 0 {
		return 0, errors.WithMetadata(errors.CodeTargetConversionsInvalid,
			"target_conversions must be positive",
			map[string]string{"Target": strconv.Itoa(target)})
	}
	return target, nil
}
