package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"n8n-mcp/internal/config"
	"n8n-mcp/internal/mcpserver"
	"n8n-mcp/internal/n8n"
	"n8n-mcp/pkg/logging"
)

var (
	serveDebug     bool
	serveTransport string
	serveListen    string
	serveBaseURL   string
	serveAPIKey    string
	serveInsecure  bool
)

// serveCmd defines the serve command structure. This is the main command
// of n8n-mcp: it starts the MCP server that exposes the n8n tool catalog.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the n8n MCP server",
	Long: `Starts the MCP server that exposes the n8n tool catalog.

Transport options:
- stdio (default): serves MCP over stdin/stdout, for AI assistant
  integration (Claude Desktop, Cursor). Logs go to stderr only.
- sse: serves MCP over Server-Sent Events on the address given by
  --listen.

Configuration is read from the environment and can be overridden with
flags:
  N8N_BASE_URL         n8n instance URL (default http://localhost:5678)
  N8N_API_KEY          n8n API key (required for tool calls to succeed)
  N8N_SKIP_SSL_VERIFY  "true" to disable TLS certificate verification

A missing API key does not prevent startup: each tool call reports a
configuration error until one is provided.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if serveDebug {
		level = logging.LevelDebug
	}
	// stdout carries the MCP framing in stdio mode, so all logging goes
	// to stderr regardless of transport.
	logging.Init(level, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	if cfg.APIKey == "" {
		logging.Warn("Bootstrap", "N8N_API_KEY is not set; tool calls will fail until it is configured")
	}
	logging.Info("Bootstrap", "starting n8n-mcp %s against %s", GetVersion(), cfg.BaseURL)

	adapter := n8n.NewAdapter(cfg)
	srv := mcpserver.NewMCPServer(adapter, GetVersion())

	ctx := cmd.Context()

	switch serveTransport {
	case string(mcpserver.TransportSSE):
		return srv.ServeSSE(ctx, serveListen)
	case string(mcpserver.TransportStdio):
		return srv.ServeStdio(ctx)
	default:
		return fmt.Errorf("unknown transport %q (expected stdio or sse)", serveTransport)
	}
}

// applyFlagOverrides lets explicit flags win over environment values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = serveBaseURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("insecure-skip-tls-verify") {
		cfg.SkipTLSVerify = serveInsecure
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveTransport, "transport", string(mcpserver.TransportStdio), "Transport to use (stdio, sse)")
	serveCmd.Flags().StringVar(&serveListen, "listen", "localhost:8090", "Listen address for the sse transport")
	serveCmd.Flags().StringVar(&serveBaseURL, "base-url", "", "n8n instance URL (overrides N8N_BASE_URL)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "n8n API key (overrides N8N_API_KEY)")
	serveCmd.Flags().BoolVar(&serveInsecure, "insecure-skip-tls-verify", false, "Disable TLS certificate verification (overrides N8N_SKIP_SSL_VERIFY)")
}
