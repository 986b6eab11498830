// Package n8n implements the request adapter between MCP tool invocations
// and the n8n REST API.
//
// The adapter maps each invocation (tool name + arguments) to exactly one
// HTTP request against the configured n8n instance and normalizes the
// outcome into an Envelope the MCP layer can return verbatim. All failure
// paths resolve to an Envelope; Invoke never panics and never returns a
// Go error to its caller.
//
// The mapping is data driven: a dispatch table keyed by tool name holds
// the HTTP method, path template, body builder and response renderer for
// each of the six supported operations. The adapter itself is stateless
// across invocations and safe for concurrent use.
package n8n
