package service

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/adpulse/internal/platform/telemetry/metrics"
	"github.com/louisbranch/adpulse/internal/platform/timeouts"
)

// defaultHTTPAddr binds to localhost only; deployments expose the server
// explicitly through configuration.
const defaultHTTPAddr = "localhost:8000"

// HTTPTransport serves the MCP server over streamable HTTP alongside the
// health and metrics endpoints.
type HTTPTransport struct {
	addr      string
	mcpServer *mcp.Server
}

// NewHTTPTransport creates an HTTP transport for the MCP server.
func NewHTTPTransport(addr string, mcpServer *mcp.Server) *HTTPTransport {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	return &HTTPTransport{addr: addr, mcpServer: mcpServer}
}

// Start runs the HTTP server and blocks until the context ends or the
// listener fails. Cancellation shuts the server down gracefully.
func (t *HTTPTransport) Start(ctx context.Context) error {
	if t == nil || t.mcpServer == nil {
		return fmt.Errorf("HTTP transport is not configured")
	}

	httpServer := &http.Server{
		Addr:              t.addr,
		Handler:           otelhttp.NewHandler(t.routes(), "mcp-http"),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// routes builds the HTTP mux: the MCP endpoint plus health and metrics.
// Stateless mode keeps each POST self-contained so clients need no session
// affinity.
func (t *HTTPTransport) routes() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:    true,
		JSONResponse: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)
	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

// handleHealth answers liveness probes.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
