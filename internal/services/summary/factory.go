package summary

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Options selects and configures the endpoint.
type Options struct {
	Provider string
	Model    string
	APIKey   string
	Timeout  time.Duration // Applied to the provider's HTTP client
}

// New builds a Client for opts.Provider.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Provider != ProviderMock && opts.APIKey == "" {
		return nil, fmt.Errorf("%s API key not configured", opts.Provider)
	}

	// Go Pattern: Always configure timeouts on HTTP clients.
	// The default http.Client has NO timeout.
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second // LLMs can be slow
	}
	httpClient := &http.Client{Timeout: timeout}

	var backend Backend
	switch opts.Provider {
	case ProviderGemini:
		b, err := NewGeminiBackend(ctx, opts.APIKey, httpClient)
		if err != nil {
			return nil, err
		}
		backend = b
	case ProviderOpenAI:
		backend = NewOpenAIBackend(opts.APIKey, "", httpClient)
	case ProviderOpenRouter:
		backend = NewOpenAIBackend(opts.APIKey, OpenRouterBaseURL, httpClient)
	case ProviderAnthropic:
		backend = NewAnthropicBackend(opts.APIKey, httpClient)
	case ProviderMock:
		backend = NewMockBackend()
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", opts.Provider)
	}

	return NewClient(backend, opts.Provider, opts.Model), nil
}
