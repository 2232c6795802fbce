// Package extract turns free-text RFQ/order prose into structured request
// records by shipping it to an LLM provider with a JSON-only prompt. The
// extraction grammar lives on the provider side; this package only builds
// prompts, rate-limits calls and decodes the JSON reply.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.SpecExtractor = (*Extractor)(nil)

// DefaultTemperature keeps extraction output stable across runs.
const DefaultTemperature = 0.2

const requestPrompt = `Based on the input text, create a JSON object with extracted information.
ONLY return a valid JSON object, no additional text.
If a field is not found, use null or empty list.
Required format:
{
    "material": string,
    "purity": string,
    "quantity": string,
    "technical_requirements": string[]
}

Input text:
%s

IMPORTANT: Your response must be ONLY a valid JSON object.
Do not include any additional text, explanations, or markdown.`

const ordersPrompt = `Extract all orders from the input text into a JSON array.
ONLY return a valid JSON array, no additional text.
Each order should follow this format:
{
    "order_id": number,
    "material": string,
    "purity": string,
    "quantity": string,
    "technical_requirements": string[]
}

Input text:
%s

IMPORTANT: Your response must be ONLY a valid JSON array.
Do not include any additional text, explanations, or markdown.`

// Extractor implements ports.SpecExtractor on top of any ports.LLMClient.
// An optional rate limiter throttles provider calls.
type Extractor struct {
	client      ports.LLMClient
	limiter     *rate.Limiter
	logger      zerolog.Logger
	temperature float64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRateLimit throttles provider calls to rps requests per second with
// the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(e *Extractor) { e.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(t float64) Option {
	return func(e *Extractor) { e.temperature = t }
}

// NewExtractor creates an extractor over the given LLM client.
func NewExtractor(client ports.LLMClient, logger zerolog.Logger, opts ...Option) (*Extractor, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client cannot be nil")
	}
	e := &Extractor{
		client:      client,
		logger:      logger.With().Str("component", "spec_extractor").Logger(),
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ExtractRequest extracts a single structured request from prose.
func (e *Extractor) ExtractRequest(ctx context.Context, text string) (domain.Record, error) {
	reply, err := e.complete(ctx, fmt.Sprintf(requestPrompt, text))
	if err != nil {
		return nil, err
	}

	var record domain.Record
	if err := json.Unmarshal([]byte(cleanJSONReply(reply)), &record); err != nil {
		return nil, fmt.Errorf("decode extracted request: %w", err)
	}
	return record, nil
}

// ExtractOrders extracts every order found in a multi-order text. A reply
// containing a single object instead of an array is accepted and wrapped.
func (e *Extractor) ExtractOrders(ctx context.Context, text string) ([]domain.Record, error) {
	reply, err := e.complete(ctx, fmt.Sprintf(ordersPrompt, text))
	if err != nil {
		return nil, err
	}

	cleaned := cleanJSONReply(reply)
	var records []domain.Record
	if err := json.Unmarshal([]byte(cleaned), &records); err == nil {
		return records, nil
	}

	var single domain.Record
	if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
		return nil, fmt.Errorf("decode extracted orders: %w", err)
	}
	return []domain.Record{single}, nil
}

func (e *Extractor) complete(ctx context.Context, prompt string) (string, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	e.logger.Debug().Str("model", e.client.GetModel()).Msg("sending extraction prompt")
	reply, err := e.client.Complete(ctx, prompt, map[string]any{"temperature": e.temperature})
	if err != nil {
		return "", fmt.Errorf("llm completion: %w", err)
	}
	return reply, nil
}

// cleanJSONReply strips markdown code fences and any chatter around the
// first JSON value in the reply. Providers occasionally wrap JSON despite
// the prompt's instructions.
func cleanJSONReply(reply string) string {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	objStart := strings.IndexAny(s, "{[")
	if objStart < 0 {
		return s
	}
	var end int
	if s[objStart] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= objStart {
		return s
	}
	return s[objStart : end+1]
}
