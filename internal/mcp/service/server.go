// Package service wires the campaign analytics tools into an MCP server
// and serves them over stdio or streamable HTTP.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/campaign/health"
	"github.com/louisbranch/adpulse/internal/campaign/performance"
	"github.com/louisbranch/adpulse/internal/campaign/report"
	"github.com/louisbranch/adpulse/internal/platform/branding"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = branding.AppName + " MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// HTTPAddr is the listen address for the HTTP transport (e.g.
	// "0.0.0.0:8000"). Defaults to localhost:8000.
	HTTPAddr string
	// Locale selects the message bundle for localized payloads. Empty
	// falls back to en-US.
	Locale string
	// ReportTargets holds the goals the daily report applies to every
	// campaign; zero falls back to the report package defaults.
	ReportTargets domain.Targets
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server backed by the demo metrics provider.
func New(cfg Config) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	provider := performance.Demo{}
	analyzer := health.Analyzer{Provider: provider}
	builder := report.Builder{
		Analyze: analyzer.Analyze,
		Targets: cfg.ReportTargets,
		Locale:  cfg.Locale,
	}

	registerAnalysisTools(mcpServer, provider, analyzer, cfg.Locale)
	registerPlanningTools(mcpServer, builder, provider, cfg.Locale)
	registerDiagnosticTools(mcpServer)

	return &Server{mcpServer: mcpServer}
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return New(cfg).serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return NewHTTPTransport(cfg.HTTPAddr, New(cfg).mcpServer).Start(ctx)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
