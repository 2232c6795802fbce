package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.LLMClient = (*AnthropicClient)(nil)

// Anthropic provider defaults.
const (
	// AnthropicDefaultModel is used when no model is configured.
	AnthropicDefaultModel = "claude-3-5-sonnet-20241022"

	// anthropicMaxTokens bounds extraction replies; structured specs are
	// small.
	anthropicMaxTokens = 1024
)

// AnthropicClient implements ports.LLMClient against Anthropic's Messages
// API.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// NewAnthropicClient creates an Anthropic-backed LLM client.
func NewAnthropicClient(apiKey, model string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key cannot be empty")
	}
	if model == "" {
		model = AnthropicDefaultModel
	}
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Complete sends a single-message request and concatenates the text blocks
// of the reply.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if t, ok := options["temperature"].(float64); ok {
		params.Temperature = anthropic.Float(t)
	}
	if m, ok := options["max_tokens"].(int); ok {
		params.MaxTokens = int64(m)
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if content, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(content.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("anthropic returned an empty reply")
	}
	return text.String(), nil
}

// GetModel returns the configured model identifier.
func (c *AnthropicClient) GetModel() string { return c.model }
