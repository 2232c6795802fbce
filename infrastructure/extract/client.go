package extract

import (
	"fmt"

	"github.com/supplyai/matchengine/internal/ports"
)

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewClient creates an LLM client for the named provider. An empty model
// selects the provider default.
func NewClient(provider, apiKey, model string) (ports.LLMClient, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, model)
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q (supported: %s, %s)",
			provider, ProviderOpenAI, ProviderAnthropic)
	}
}
