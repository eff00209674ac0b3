package summary

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenRouterBaseURL is OpenRouter's OpenAI-compatible API root.
// OpenRouter fronts many providers with one key and the chat completions format.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1/"

// OpenAIBackend calls an OpenAI-compatible chat completions API.
type OpenAIBackend struct {
	client openai.Client
}

// NewOpenAIBackend creates a backend for api.openai.com, or for baseURL when set.
func NewOpenAIBackend(apiKey, baseURL string, httpClient *http.Client) *OpenAIBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0), // one request per call
	}
	if baseURL != "" {
		opts = append(opts,
			option.WithBaseURL(baseURL),
			option.WithHeader("HTTP-Referer", "https://github.com/Shimizu-Technology/medsum"),
			option.WithHeader("X-Title", "Medical Report Summarizer"),
		)
	}
	return &OpenAIBackend{client: openai.NewClient(opts...)}
}

// Generate implements Backend.
func (o *OpenAIBackend) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response: %w", ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
