package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, env map[string]string) *viper.Viper {
	t.Helper()

	// Clear anything the developer's shell might carry
	for _, name := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "OPENROUTER_API_KEY", "ANTHROPIC_API_KEY", "LLM_PROVIDER", "LLM_MODEL", "GIN_MODE", "CORS_ORIGIN", "MAX_UPLOAD_MB", "PORT"} {
		t.Setenv(name, "")
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, map[string]string{"GEMINI_API_KEY": "AIza-test"}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "AIza-test", cfg.APIKey)
	assert.Equal(t, 120*time.Second, cfg.Timeout)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.Equal(t, int64(20), cfg.MaxUploadMB())
	assert.Equal(t, 5, cfg.HistoryDisplay)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTimeout)
}

func TestLoad_MissingCredentialFailsFast(t *testing.T) {
	_, err := Load(newViper(t, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_Providers(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
		wantErr bool
	}{
		{"openai", map[string]string{"LLM_PROVIDER": "openai", "OPENAI_API_KEY": "sk-1"}, "sk-1", false},
		{"provider is case-insensitive", map[string]string{"LLM_PROVIDER": "Anthropic", "ANTHROPIC_API_KEY": "sk-ant"}, "sk-ant", false},
		{"openrouter without key", map[string]string{"LLM_PROVIDER": "openrouter", "GEMINI_API_KEY": "unused"}, "", true},
		{"mock needs no key", map[string]string{"LLM_PROVIDER": "mock"}, "", false},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "palm"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(newViper(t, tt.env))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, cfg.APIKey)
		})
	}
}

func TestLoad_ReleaseModeRequiresCORSOrigin(t *testing.T) {
	_, err := Load(newViper(t, map[string]string{"LLM_PROVIDER": "mock", "GIN_MODE": "release"}))
	assert.Error(t, err)

	cfg, err := Load(newViper(t, map[string]string{"LLM_PROVIDER": "mock", "GIN_MODE": "release", "CORS_ORIGIN": "https://summaries.example.org"}))
	require.NoError(t, err)
	assert.Equal(t, "https://summaries.example.org", cfg.CORSOrigin)
}

func TestLoad_InvalidLimits(t *testing.T) {
	_, err := Load(newViper(t, map[string]string{"LLM_PROVIDER": "mock", "MAX_UPLOAD_MB": "0"}))
	assert.Error(t, err)
}
