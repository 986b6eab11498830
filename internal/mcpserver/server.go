package mcpserver

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"n8n-mcp/internal/n8n"
	"n8n-mcp/pkg/logging"
)

// Transport selects how the MCP server talks to its client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
)

// MCPServer exposes the n8n tool catalog over the MCP protocol. Every
// registered tool delegates to the request adapter; the server itself
// carries no invocation state.
type MCPServer struct {
	adapter   *n8n.Adapter
	mcpServer *server.MCPServer
}

// NewMCPServer creates an MCP server backed by the given adapter and
// registers the full tool catalog.
func NewMCPServer(adapter *n8n.Adapter, version string) *MCPServer {
	mcpServer := server.NewMCPServer(
		"n8n-mcp",
		version,
		server.WithToolCapabilities(false),
	)

	s := &MCPServer{
		adapter:   adapter,
		mcpServer: mcpServer,
	}

	for _, tool := range Tools() {
		mcpServer.AddTool(tool, s.makeHandler(tool.Name))
	}

	return s
}

// makeHandler binds a catalog tool name to the adapter. The adapter
// never fails with a Go error; its envelope maps directly onto the MCP
// result's error flag.
func (s *MCPServer) makeHandler(toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		envelope := s.adapter.Invoke(ctx, toolName, request.GetArguments())
		if envelope.IsError {
			return mcp.NewToolResultError(envelope.Text), nil
		}
		return mcp.NewToolResultText(envelope.Text), nil
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout and blocks until
// the client closes the stream. Nothing else may write to stdout while
// this runs.
func (s *MCPServer) ServeStdio(ctx context.Context) error {
	logging.Info("MCPServer", "Starting MCP server with stdio transport")
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP protocol over Server-Sent Events on addr and
// blocks until the context is cancelled or the listener fails.
func (s *MCPServer) ServeSSE(ctx context.Context, addr string) error {
	logging.Info("MCPServer", "Starting MCP server with SSE transport on %s", addr)

	sseServer := server.NewSSEServer(
		s.mcpServer,
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return sseServer.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}
