// Package domain holds the campaign analytics data model shared by the
// metrics provider, the calculators, the health evaluator, and the MCP
// tool surface.
package domain

// Trend labels the direction of a campaign's performance window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

// Trends lists every trend in generator draw order.
func Trends() []Trend {
	return []Trend{TrendImproving, TrendStable, TrendWorsening}
}

// HealthStatus grades a campaign after rule evaluation.
type HealthStatus string

const (
	StatusHealthy        HealthStatus = "healthy"
	StatusNeedsAttention HealthStatus = "needs_attention"
	StatusCritical       HealthStatus = "critical"
)

// IssueCode identifies one triggered health rule on the wire.
type IssueCode string

const (
	IssueCPACritical     IssueCode = "CPA_CRITICAL"
	IssueCPAHigh         IssueCode = "CPA_HIGH"
	IssueBudgetOverspend IssueCode = "BUDGET_OVERSPEND"
	IssueNoConversions   IssueCode = "NO_CONVERSIONS"
	IssueHighCTRLowConv  IssueCode = "HIGH_CTR_LOW_CONV"
)

// Source identifies where performance metrics came from.
type Source string

// SourceDemo marks metrics synthesized by the demo generator.
const SourceDemo Source = "demo_data"
