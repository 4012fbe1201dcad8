package domain

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ConnectionInput represents the MCP tool input for the connection test.
type ConnectionInput struct{}

// ConnectionResult represents the MCP tool output for the connection test.
type ConnectionResult struct {
	Status  string `json:"status" jsonschema:"execution status (success)"`
	Server  string `json:"server" jsonschema:"server name"`
	Version string `json:"version" jsonschema:"server version"`
	Time    string `json:"time" jsonschema:"RFC3339 server time"`
}

// ConnectionTool defines the MCP tool schema for the connection test.
func ConnectionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "test_connection",
		Description: "Verifies the analytics server is reachable and reports its name, version, and clock",
	}
}

// ConnectionHandler executes a connection test request.
func ConnectionHandler(server, version string, now func() time.Time) mcp.ToolHandlerFor[ConnectionInput, ConnectionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ConnectionInput) (*mcp.CallToolResult, ConnectionResult, error) {
		clock := now
		if clock == nil {
			clock = time.Now
		}
		result := ConnectionResult{
			Status:  statusSuccess,
			Server:  server,
			Version: version,
			Time:    clock().Format(time.RFC3339),
		}
		return nil, result, nil
	}
}
