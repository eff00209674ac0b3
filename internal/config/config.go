// Package config handles application configuration.
//
// Go Pattern: Configuration is a plain struct filled once at startup.
// Values come from (highest priority first) command-line flags, environment
// variables (optionally loaded from a .env file), then defaults. Viper does
// the merging; Load turns the merged view into a validated Config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Shimizu-Technology/medsum/internal/history"
	"github.com/Shimizu-Technology/medsum/internal/services/summary"
)

// Configuration keys. Environment variables are the upper-cased key with
// dots replaced by underscores (llm.provider → LLM_PROVIDER).
const (
	KeyPort               = "port"
	KeyGinMode            = "gin_mode"
	KeyCORSOrigin         = "cors_origin"
	KeyProvider           = "llm.provider"
	KeyModel              = "llm.model"
	KeyTimeout            = "llm.timeout"
	KeyMaxUploadMB        = "max_upload_mb"
	KeyHistoryDisplay     = "history.display"
	KeySessionIdleTimeout = "session.idle_timeout"
)

// apiKeyEnv maps each provider to the environment variable holding its credential.
var apiKeyEnv = map[string]string{
	summary.ProviderGemini:     "GEMINI_API_KEY",
	summary.ProviderOpenAI:     "OPENAI_API_KEY",
	summary.ProviderOpenRouter: "OPENROUTER_API_KEY",
	summary.ProviderAnthropic:  "ANTHROPIC_API_KEY",
}

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port       string
	GinMode    string // "debug", "release", or "test"
	CORSOrigin string

	// Model endpoint
	Provider string
	Model    string // Empty means the provider default
	APIKey   string
	Timeout  time.Duration

	// Limits
	MaxUploadBytes int64
	HistoryDisplay int // Records shown in the recent-summaries panel

	// Sessions
	SessionIdleTimeout time.Duration
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyGinMode, "debug")
	v.SetDefault(KeyCORSOrigin, "http://localhost:5173") // Vite dev server default
	v.SetDefault(KeyProvider, summary.ProviderGemini)
	v.SetDefault(KeyModel, "")
	v.SetDefault(KeyTimeout, 120*time.Second)
	v.SetDefault(KeyMaxUploadMB, 20)
	v.SetDefault(KeyHistoryDisplay, history.DefaultRecent)
	v.SetDefault(KeySessionIdleTimeout, 2*time.Hour)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, env := range apiKeyEnv {
		// BindEnv only errors when called without a key
		_ = v.BindEnv(strings.ToLower(env), env)
	}
}

// Load builds a Config from v and validates it.
//
// The credential for the selected provider is required: without it the
// application cannot summarize anything, so it refuses to start.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString(KeyPort),
		GinMode:            v.GetString(KeyGinMode),
		CORSOrigin:         v.GetString(KeyCORSOrigin),
		Provider:           strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
		Model:              strings.TrimSpace(v.GetString(KeyModel)),
		Timeout:            v.GetDuration(KeyTimeout),
		MaxUploadBytes:     int64(v.GetInt(KeyMaxUploadMB)) << 20,
		HistoryDisplay:     v.GetInt(KeyHistoryDisplay),
		SessionIdleTimeout: v.GetDuration(KeySessionIdleTimeout),
	}

	if cfg.Provider != summary.ProviderMock {
		env, ok := apiKeyEnv[cfg.Provider]
		if !ok {
			return nil, fmt.Errorf("unknown LLM provider %q (use gemini, openai, openrouter, anthropic or mock)", cfg.Provider)
		}
		cfg.APIKey = strings.TrimSpace(v.GetString(strings.ToLower(env)))
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%s is not set; add it to your environment or a .env file", env)
		}
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("%s must be positive", KeyMaxUploadMB)
	}
	if cfg.HistoryDisplay <= 0 {
		return nil, fmt.Errorf("%s must be positive", KeyHistoryDisplay)
	}

	// Security: in release mode the CORS origin must be set on purpose
	if cfg.GinMode == "release" && cfg.CORSOrigin == "http://localhost:5173" {
		return nil, fmt.Errorf("CORS_ORIGIN must be set in release mode")
	}

	return cfg, nil
}

// MaxUploadMB returns the upload limit in megabytes, for display.
func (c *Config) MaxUploadMB() int64 {
	return c.MaxUploadBytes >> 20
}

// SummaryOptions returns the endpoint settings.
func (c *Config) SummaryOptions() summary.Options {
	return summary.Options{
		Provider: c.Provider,
		Model:    c.Model,
		APIKey:   c.APIKey,
		Timeout:  c.Timeout,
	}
}
