// Package logging provides structured logging for n8n-mcp, built on the
// standard slog package.
//
// All log entries carry a subsystem identifier for categorization:
//
//   - Bootstrap: application initialization and startup
//   - Config: configuration loading
//   - Adapter: n8n request adapter operations
//   - MCPServer: MCP protocol serving
//
// Initialize once at startup with Init. When the process serves MCP over
// stdio, log output must go to stderr: stdout carries the JSON-RPC
// framing and any stray write corrupts the stream.
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Bootstrap", "starting n8n-mcp %s", version)
//	logging.Error("Adapter", err, "request to %s failed", url)
package logging
