package service

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/adpulse/internal/campaign/health"
	"github.com/louisbranch/adpulse/internal/campaign/performance"
	"github.com/louisbranch/adpulse/internal/campaign/report"
	"github.com/louisbranch/adpulse/internal/mcp/domain"
	"github.com/louisbranch/adpulse/internal/platform/telemetry/metrics"
)

func registerAnalysisTools(mcpServer *mcp.Server, provider performance.Provider, analyzer health.Analyzer, locale string) {
	addTool(mcpServer, domain.PerformanceTool(), domain.PerformanceHandler(provider, locale))
	addTool(mcpServer, domain.HealthTool(), domain.HealthHandler(analyzer, locale))
}

func registerPlanningTools(mcpServer *mcp.Server, builder report.Builder, sampler performance.Sampler, locale string) {
	addTool(mcpServer, domain.ReportTool(), domain.ReportHandler(builder, locale))
	addTool(mcpServer, domain.ScenariosTool(), domain.ScenariosHandler(sampler, locale))
	addTool(mcpServer, domain.CPATool(), domain.CPAHandler(locale))
}

func registerDiagnosticTools(mcpServer *mcp.Server) {
	addTool(mcpServer, domain.ConnectionTool(), domain.ConnectionHandler(serverName, serverVersion, nil))
}

// addTool registers a tool with its handler wrapped in call metrics.
func addTool[In, Out any](mcpServer *mcp.Server, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(mcpServer, tool, instrumented(tool.Name, handler))
}

// instrumented observes every call's outcome and duration under the tool
// name.
func instrumented[In, Out any](tool string, handler mcp.ToolHandlerFor[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error) {
		start := time.Now()
		result, output, err := handler(ctx, req, input)
		metrics.ObserveToolCall(tool, metrics.OutcomeOf(err), time.Since(start))
		return result, output, err
	}
}
