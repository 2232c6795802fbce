package extract

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.LLMClient = (*OpenAIClient)(nil)

// OpenAIDefaultModel is used when no model is configured.
const OpenAIDefaultModel = openai.GPT4oMini

// OpenAIClient implements ports.LLMClient against the OpenAI chat
// completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates an OpenAI-backed LLM client.
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if model == "" {
		model = OpenAIDefaultModel
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Complete sends a single-message chat completion request and returns the
// first choice's content.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if t, ok := options["temperature"].(float64); ok {
		req.Temperature = float32(t)
	}
	if m, ok := options["max_tokens"].(int); ok {
		req.MaxTokens = m
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GetModel returns the configured model identifier.
func (c *OpenAIClient) GetModel() string { return c.model }
