package config

import (
	"strings"

	"github.com/spf13/viper"
)

// DefaultBaseURL is used when N8N_BASE_URL is not set.
const DefaultBaseURL = "http://localhost:5678"

// Config holds everything the n8n adapter needs to talk to an n8n
// instance. It is populated once at startup and injected into the
// adapter; nothing reads process environment at call time.
type Config struct {
	// BaseURL is the n8n instance URL without the /api/v1 prefix.
	// Trailing slashes are trimmed during load.
	BaseURL string

	// APIKey is the n8n API key sent as the X-N8N-API-KEY header.
	// An empty key is not a load error: the adapter reports it as a
	// configuration error on each invocation, before any network call.
	APIKey string

	// SkipTLSVerify disables TLS certificate verification for calls to
	// the n8n instance. Off by default; only for self-signed setups.
	SkipTLSVerify bool
}

// Load reads configuration from the environment:
//
//	N8N_BASE_URL         n8n instance URL (default http://localhost:5678)
//	N8N_API_KEY          n8n API key
//	N8N_SKIP_SSL_VERIFY  "true" to disable TLS verification (default false)
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("api_key", "")
	v.SetDefault("skip_ssl_verify", false)

	if err := v.BindEnv("base_url", "N8N_BASE_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("api_key", "N8N_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("skip_ssl_verify", "N8N_SKIP_SSL_VERIFY"); err != nil {
		return nil, err
	}

	return &Config{
		BaseURL:       strings.TrimRight(v.GetString("base_url"), "/"),
		APIKey:        v.GetString("api_key"),
		SkipTLSVerify: v.GetBool("skip_ssl_verify"),
	}, nil
}
