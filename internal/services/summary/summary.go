// Package summary sends prompts to the hosted text-generation endpoint.
//
// Several providers can serve as the endpoint (Gemini by default, OpenAI,
// OpenRouter, Anthropic), each behind the small Backend interface. The
// Client in front of them makes exactly one request per call and turns
// every failure into a *GenerationError so callers have one type to check.
package summary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// Provider names accepted in configuration.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderMock       = "mock"
)

// DefaultModels is the model used for each provider when none is configured.
var DefaultModels = map[string]string{
	ProviderGemini:     "gemini-2.5-flash",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "anthropic/claude-4.5-sonnet-20250929",
	ProviderAnthropic:  "claude-haiku-4-5",
	ProviderMock:       "mock",
}

// ErrEmptyResponse is the cause when the endpoint answers without text.
var ErrEmptyResponse = errors.New("endpoint returned no text")

// Backend is one provider's text-generation call.
type Backend interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// ModelInfo describes a model offered by the endpoint.
type ModelInfo struct {
	Name        string
	Description string
}

// ModelLister is implemented by backends that can enumerate their models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// GenerationError wraps any failure of the endpoint call: transport,
// authentication, quota or a malformed response.
type GenerationError struct {
	Provider string
	Model    string
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s (%s) generation failed: %v", e.Provider, e.Model, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Client generates summaries with a fixed provider and model.
type Client struct {
	backend  Backend
	provider string
	model    string
}

// NewClient wraps backend. An empty model falls back to the provider default.
func NewClient(backend Backend, provider, model string) *Client {
	if model == "" {
		model = DefaultModels[provider]
	}
	return &Client{backend: backend, provider: provider, model: model}
}

// Provider returns the configured provider name.
func (c *Client) Provider() string { return c.provider }

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Generate sends prompt to the endpoint and returns the generated text.
// The prompt is not inspected; callers validate report text beforehand.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	log.Printf("🤖 Generating summary using %s/%s", c.provider, c.model)

	text, err := c.backend.Generate(ctx, c.model, prompt)
	if err != nil {
		return "", &GenerationError{Provider: c.provider, Model: c.model, Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &GenerationError{Provider: c.provider, Model: c.model, Cause: ErrEmptyResponse}
	}

	log.Printf("✅ Summary generated in %s (%d chars)", time.Since(start).Round(time.Millisecond), len(text))
	return text, nil
}

// ListModels enumerates the endpoint's models when the backend supports it.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	lister, ok := c.backend.(ModelLister)
	if !ok {
		return nil, fmt.Errorf("provider %q does not support listing models", c.provider)
	}
	return lister.ListModels(ctx)
}
