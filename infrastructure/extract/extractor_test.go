package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns canned replies and records the prompts it was given.
type fakeLLM struct {
	reply   string
	err     error
	prompts []string
	options []map[string]any
}

func (f *fakeLLM) Complete(_ context.Context, prompt string, options map[string]any) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.options = append(f.options, options)
	return f.reply, f.err
}

func (f *fakeLLM) GetModel() string { return "fake-model" }

func TestNewExtractor_RequiresClient(t *testing.T) {
	_, err := NewExtractor(nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestExtractor_ExtractRequest(t *testing.T) {
	llm := &fakeLLM{reply: `{"material": "Hydrochloric Acid", "purity": "36%", "quantity": "100 kg/month", "technical_requirements": ["iso-9001"]}`}
	extractor, err := NewExtractor(llm, zerolog.Nop())
	require.NoError(t, err)

	record, err := extractor.ExtractRequest(context.Background(), "need 100 kg/month of HCl at 36%, iso-9001 certified")
	require.NoError(t, err)

	assert.Equal(t, "Hydrochloric Acid", record.Material())
	assert.Equal(t, "36%", record.Purity())
	assert.Equal(t, []string{"iso-9001"}, record.TechnicalRequirements())

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "need 100 kg/month of HCl")
	assert.Contains(t, llm.prompts[0], "ONLY return a valid JSON object")
	require.Len(t, llm.options, 1)
	assert.Equal(t, DefaultTemperature, llm.options[0]["temperature"])
}

func TestExtractor_ExtractRequest_StripsMarkdownFences(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "json fence", reply: "```json\n{\"material\": \"Acetone\"}\n```"},
		{name: "bare fence", reply: "```\n{\"material\": \"Acetone\"}\n```"},
		{name: "chatter around json", reply: "Here is the extracted order:\n{\"material\": \"Acetone\"}\nLet me know if you need more."},
		{name: "clean json", reply: `{"material": "Acetone"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, err := NewExtractor(&fakeLLM{reply: tt.reply}, zerolog.Nop())
			require.NoError(t, err)

			record, err := extractor.ExtractRequest(context.Background(), "order text")
			require.NoError(t, err)
			assert.Equal(t, "Acetone", record.Material())
		})
	}
}

func TestExtractor_ExtractRequest_Errors(t *testing.T) {
	t.Run("provider failure", func(t *testing.T) {
		extractor, err := NewExtractor(&fakeLLM{err: errors.New("boom")}, zerolog.Nop())
		require.NoError(t, err)

		_, err = extractor.ExtractRequest(context.Background(), "order text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm completion")
	})

	t.Run("invalid json", func(t *testing.T) {
		extractor, err := NewExtractor(&fakeLLM{reply: "sorry, I cannot do that"}, zerolog.Nop())
		require.NoError(t, err)

		_, err = extractor.ExtractRequest(context.Background(), "order text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode extracted request")
	})
}

func TestExtractor_ExtractOrders(t *testing.T) {
	llm := &fakeLLM{reply: `[
		{"order_id": 1, "material": "Acetone", "purity": "99%"},
		{"order_id": 2, "material": "Toluene", "purity": "98%"}
	]`}
	extractor, err := NewExtractor(llm, zerolog.Nop())
	require.NoError(t, err)

	orders, err := extractor.ExtractOrders(context.Background(), "two orders here")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Acetone", orders[0].Material())
	assert.Equal(t, "Toluene", orders[1].Material())
}

func TestExtractor_ExtractOrders_WrapsSingleObject(t *testing.T) {
	extractor, err := NewExtractor(&fakeLLM{reply: `{"material": "Acetone"}`}, zerolog.Nop())
	require.NoError(t, err)

	orders, err := extractor.ExtractOrders(context.Background(), "one order")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Acetone", orders[0].Material())
}

func TestExtractor_WithTemperature(t *testing.T) {
	llm := &fakeLLM{reply: `{"material": "Acetone"}`}
	extractor, err := NewExtractor(llm, zerolog.Nop(), WithTemperature(0.7))
	require.NoError(t, err)

	_, err = extractor.ExtractRequest(context.Background(), "order text")
	require.NoError(t, err)
	assert.Equal(t, 0.7, llm.options[0]["temperature"])
}

func TestExtractor_RateLimitRespectsContext(t *testing.T) {
	llm := &fakeLLM{reply: `{"material": "Acetone"}`}
	// Zero rps with no burst: the limiter can never grant a token, so the
	// wait must end with the context deadline instead of a provider call.
	extractor, err := NewExtractor(llm, zerolog.Nop(), WithRateLimit(0, 0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = extractor.ExtractRequest(ctx, "order text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait")
	assert.Empty(t, llm.prompts)
}

func TestCleanJSONReply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain object", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "fenced array", in: "```json\n[1, 2]\n```", want: "[1, 2]"},
		{name: "prefix and suffix chatter", in: `sure: {"a": 1} done`, want: `{"a": 1}`},
		{name: "array with chatter", in: `result: [{"a": 1}] ok`, want: `[{"a": 1}]`},
		{name: "no json at all", in: "nothing here", want: "nothing here"},
		{name: "unterminated object", in: `{"a": 1`, want: `{"a": 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONReply(tt.in))
		})
	}
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient("cohere", "key", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}
