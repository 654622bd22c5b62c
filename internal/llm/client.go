// Package llm invokes the external text-generation service. It speaks the
// OpenAI chat-completions protocol, which the Gemini API also serves under
// its OpenAI-compatible base URL.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-1.5-pro"

// Client sends one prompt per call and returns the first choice's text.
// It never retries; the caller owns timeouts through ctx.
type Client struct {
	api   openai.Client
	model string
}

// NewClient constructs a Client. Extra request options are appended after the
// defaults, so tests can point it at an httptest server.
func NewClient(apiKey, baseURL, model string, opts ...option.RequestOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	all := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}, opts...)
	return &Client{api: openai.NewClient(all...), model: model}
}

// Generate implements generation.Model.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("llm.Client.Generate: %w: %w", domain.ErrRateLimited, err)
		}
		return "", fmt.Errorf("llm.Client.Generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm.Client.Generate: response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
