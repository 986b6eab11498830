package n8n

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"n8n-mcp/internal/config"
	"n8n-mcp/pkg/logging"
)

// Adapter issues n8n API calls on behalf of MCP tool invocations. It is
// constructed once with its configuration and holds no per-invocation
// state, so a single instance serves concurrent calls.
type Adapter struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewAdapter creates an adapter for the given configuration. No timeout
// is set on the client: the MCP host controls call lifetimes through the
// request context.
func NewAdapter(cfg *config.Config) *Adapter {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.SkipTLSVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Adapter{
		cfg:        cfg,
		httpClient: &http.Client{Transport: transport},
	}
}

// NewAdapterWithTransport creates an adapter with a custom transport.
// Tests use this to count or fake network calls.
func NewAdapterWithTransport(cfg *config.Config, transport http.RoundTripper) *Adapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: &http.Client{Transport: transport},
	}
}

// Invoke maps one tool invocation to one n8n API request and normalizes
// the outcome into an Envelope. It never returns a Go error: every
// failure path, from missing configuration to a refused connection,
// terminates in an error-flagged Envelope.
func (a *Adapter) Invoke(ctx context.Context, toolName string, rawArgs map[string]any) Envelope {
	if a.cfg.APIKey == "" {
		return errorEnvelope("Error: N8N_API_KEY not configured. Set environment variable N8N_API_KEY.")
	}

	call, ok := dispatch[toolName]
	if !ok {
		return errorEnvelope(fmt.Sprintf("Unknown tool: %s", toolName))
	}

	args := stringArgs(rawArgs)
	for _, name := range call.requires {
		if args[name] == "" {
			return errorEnvelope(fmt.Sprintf("Error: %s argument is required", name))
		}
	}

	var body any
	if call.body != nil {
		var err error
		body, err = call.body(args)
		if err != nil {
			return errorEnvelope(fmt.Sprintf("Error: %s", err))
		}
	}

	result := a.do(ctx, call.method, call.path(args), body)
	if result.Kind != KindSuccess {
		logging.Warn("Adapter", "%s failed: %s", toolName, result.Detail)
		return errorEnvelope(fmt.Sprintf("Error: %s", result.Detail))
	}

	return Envelope{Text: call.render(args, unwrapData(result.Payload))}
}

// do issues exactly one HTTP request against {base_url}/api/v1/{endpoint}
// and classifies the outcome. The response body is read fully and closed
// on every path.
func (a *Adapter) do(ctx context.Context, method, endpoint string, body any) Result {
	url := fmt.Sprintf("%s/api/v1/%s", a.cfg.BaseURL, endpoint)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Result{Kind: KindTransportError, Detail: fmt.Sprintf("Request failed: %v", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return Result{Kind: KindTransportError, Detail: fmt.Sprintf("Request failed: %v", err)}
	}
	req.Header.Set("X-N8N-API-KEY", a.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	logging.Debug("Adapter", "%s %s", method, url)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return Result{Kind: KindTransportError, Detail: fmt.Sprintf("Request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Kind: KindTransportError, Detail: fmt.Sprintf("Request failed: %v", err)}
	}

	if !statusAccepted(resp.StatusCode, acceptedStatuses(method)) {
		return Result{
			Kind:   KindServiceError,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(raw)),
		}
	}

	// DELETE may answer 204 with no body; report plain success.
	if len(bytes.TrimSpace(raw)) == 0 {
		return Result{Kind: KindSuccess, Payload: map[string]any{"success": true}}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return Result{Kind: KindTransportError, Detail: fmt.Sprintf("Request failed: %v", err)}
	}

	return Result{Kind: KindSuccess, Payload: payload}
}

func statusAccepted(status int, accepted []int) bool {
	for _, s := range accepted {
		if status == s {
			return true
		}
	}
	return false
}

// stringArgs flattens MCP arguments into the string mapping the dispatch
// table works with. Non-string values are formatted; nils are dropped.
func stringArgs(raw map[string]any) map[string]string {
	args := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
		case string:
			args[key] = v
		default:
			args[key] = fmt.Sprint(v)
		}
	}
	return args
}
