package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend records calls and answers with fixed values.
type stubBackend struct {
	text    string
	err     error
	calls   int
	prompts []string
	models  []string
}

func (s *stubBackend) Generate(_ context.Context, model, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	s.models = append(s.models, model)
	return s.text, s.err
}

func TestClientGenerate_Success(t *testing.T) {
	backend := &stubBackend{text: "## Key Findings..."}
	client := NewClient(backend, ProviderGemini, "")

	got, err := client.Generate(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, "## Key Findings...", got)
	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, []string{"the prompt"}, backend.prompts)
	assert.Equal(t, []string{"gemini-2.5-flash"}, backend.models)
}

func TestClientGenerate_Failures(t *testing.T) {
	quota := errors.New("429 RESOURCE_EXHAUSTED")

	tests := []struct {
		name      string
		backend   *stubBackend
		wantCause error
	}{
		{"transport error wrapped", &stubBackend{err: quota}, quota},
		{"empty text", &stubBackend{text: ""}, ErrEmptyResponse},
		{"whitespace text", &stubBackend{text: " \n "}, ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.backend, ProviderOpenAI, "gpt-test")

			got, err := client.Generate(context.Background(), "p")
			assert.Empty(t, got)

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, ProviderOpenAI, genErr.Provider)
			assert.Equal(t, "gpt-test", genErr.Model)
			assert.ErrorIs(t, err, tt.wantCause)

			// No retries: exactly one request per call
			assert.Equal(t, 1, tt.backend.calls)
		})
	}
}

func TestNew_ProviderSelection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		opts      Options
		wantModel string
		wantErr   bool
	}{
		{"mock needs no key", Options{Provider: ProviderMock}, "mock", false},
		{"openai", Options{Provider: ProviderOpenAI, APIKey: "sk-test"}, "gpt-4o-mini", false},
		{"openrouter custom model", Options{Provider: ProviderOpenRouter, APIKey: "sk-or", Model: "google/gemini-2.5-flash"}, "google/gemini-2.5-flash", false},
		{"anthropic", Options{Provider: ProviderAnthropic, APIKey: "sk-ant"}, "claude-haiku-4-5", false},
		{"gemini", Options{Provider: ProviderGemini, APIKey: "AIza-test"}, "gemini-2.5-flash", false},
		{"missing key", Options{Provider: ProviderGemini}, "", true},
		{"unknown provider", Options{Provider: "bard", APIKey: "x"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(ctx, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.opts.Provider, client.Provider())
			assert.Equal(t, tt.wantModel, client.Model())
		})
	}
}

func TestMockBackend(t *testing.T) {
	client, err := New(context.Background(), Options{Provider: ProviderMock})
	require.NoError(t, err)

	got, err := client.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, MockSummary, got)

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	assert.Len(t, models, 1)
}

func TestListModels_Unsupported(t *testing.T) {
	client := NewClient(&stubBackend{}, ProviderOpenAI, "")
	_, err := client.ListModels(context.Background())
	assert.Error(t, err)
}
