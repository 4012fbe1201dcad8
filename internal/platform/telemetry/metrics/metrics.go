// Package metrics provides operational metrics collection.
//
// Tool handlers record one observation per call: a counter by tool name
// and outcome, and a latency histogram by tool name. Collectors register
// on the default Prometheus registry so the standard Go runtime and
// process collectors are exposed alongside them.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values for tool call observations.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adpulse_mcp_tool_calls_total",
		Help: "Total MCP tool calls by tool name and outcome.",
	}, []string{"tool", "outcome"})

	toolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adpulse_mcp_tool_duration_seconds",
		Help:    "MCP tool call duration in seconds by tool name.",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})
)

// ObserveToolCall records one completed tool call.
func ObserveToolCall(tool, outcome string, elapsed time.Duration) {
	toolCalls.WithLabelValues(tool, outcome).Inc()
	toolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// OutcomeOf maps a handler error to its outcome label.
func OutcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// Handler returns the HTTP handler that serves the metrics endpoint in
// Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
