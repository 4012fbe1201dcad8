// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Campaign input errors
	CodeCampaignIDEmpty   Code = "CAMPAIGN_ID_EMPTY"
	CodeCampaignListEmpty Code = "CAMPAIGN_LIST_EMPTY"
	CodePeriodDaysInvalid Code = "PERIOD_DAYS_INVALID"

	// Health target errors
	CodeTargetCPAInvalid   Code = "TARGET_CPA_INVALID"
	CodeBudgetLimitInvalid Code = "DAILY_BUDGET_LIMIT_INVALID"

	// Snapshot errors
	CodeSnapshotInvalid Code = "SNAPSHOT_INVALID"

	// CPA calculator errors
	CodeCostNegative        Code = "CPA_COST_NEGATIVE"
	CodeConversionsNegative Code = "CPA_CONVERSIONS_NEGATIVE"
	CodeConversionsZero     Code = "CPA_CONVERSIONS_ZERO"

	// Scenario planner errors
	CodeTargetConversionsInvalid Code = "TARGET_CONVERSIONS_INVALID"

	// Metrics provider errors
	CodePerformanceNoData   Code = "PERFORMANCE_NO_DATA"
	CodePerformanceAPIError Code = "PERFORMANCE_API_ERROR"

	// Random/seed errors
	CodeSeedFailed Code = "RANDOM_SEED_FAILED"
)

// Class groups codes into the failure taxonomy callers branch on.
type Class int

const (
	// ClassInternal covers unexpected failures with no caller remedy.
	ClassInternal Class = iota
	// ClassInvalidArgument covers rejected caller input.
	ClassInvalidArgument
	// ClassDivisionByZero covers deliberately surfaced zero-denominator failures.
	ClassDivisionByZero
	// ClassUpstreamFailure covers metrics-provider failures reported as tagged
	// results rather than hard errors.
	ClassUpstreamFailure
)

// String returns the class identifier used in logs and metric labels.
func (c Class) String() string {
	switch c {
	case ClassInvalidArgument:
		return "invalid_argument"
	case ClassDivisionByZero:
		return "division_by_zero"
	case ClassUpstreamFailure:
		return "upstream_failure"
	default:
		return "internal"
	}
}

// Class maps domain codes to their failure class.
func (c Code) Class() Class {
	switch c {
	case CodeCampaignIDEmpty,
		CodeCampaignListEmpty,
		CodePeriodDaysInvalid,
		CodeTargetCPAInvalid,
		CodeBudgetLimitInvalid,
		CodeSnapshotInvalid,
		CodeCostNegative,
		CodeConversionsNegative,
		CodeTargetConversionsInvalid:
		return ClassInvalidArgument

	case CodeConversionsZero:
		return ClassDivisionByZero

	case CodePerformanceNoData,
		CodePerformanceAPIError:
		return ClassUpstreamFailure

	default:
		return ClassInternal
	}
}
