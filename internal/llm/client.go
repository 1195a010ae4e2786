// Package llm provides the external model boundary. The rest of the
// system treats the provider as a black box behind the Client interface:
// one prompt in, one text plus usage counts out, bounded by a timeout.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/minsu/prompt-generator/internal/apperr"
)

// Usage carries the provider-reported token counts for one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Result is one completed model call.
type Result struct {
	Text  string
	Usage Usage
}

// Client is the abstraction over the external model provider.
type Client interface {
	// Generate produces text for the combined instruction+task payload.
	Generate(ctx context.Context, prompt string) (*Result, error)
	// Model returns the underlying model name, for usage accounting.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config Config
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, config Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, config: config}, nil
}

// Generate runs one bounded call. Timeout maps to upstream_timeout,
// provider throttling to upstream_rate_limited, everything else to
// upstream_error. The caller's cancellation propagates; an abandoned
// in-flight call is a known boundary limitation, not a correctness issue.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, mapProviderError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamError, "외부 모델이 응답을 반환하지 않았습니다.", err)
	}

	result := &Result{Text: text}
	if resp.UsageMetadata != nil {
		result.Usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return result, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func mapProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.KindUpstreamTimeout, "외부 모델 호출이 제한 시간을 초과했습니다.", err)
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return apperr.Wrap(apperr.KindUpstreamRateLimit, "외부 모델 제공자의 호출 한도에 도달했습니다.", err)
	}
	return apperr.Wrap(apperr.KindUpstreamError, "외부 모델 호출에 실패했습니다.", err)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
