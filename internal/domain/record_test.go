package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsRecord(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		wantOK bool
	}{
		{name: "record", input: Record{"material": "acetone"}, wantOK: true},
		{name: "raw map", input: map[string]any{"material": "acetone"}, wantOK: true},
		{name: "string", input: "acetone", wantOK: false},
		{name: "slice", input: []any{}, wantOK: false},
		{name: "nil", input: nil, wantOK: false},
		{name: "typed map", input: map[string]string{"material": "acetone"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := AsRecord(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, "acetone", rec.Material())
			}
		})
	}
}

func TestAsSequence(t *testing.T) {
	records := []Record{{"material": "a"}, {"material": "b"}}

	seq, ok := AsSequence(records)
	assert.True(t, ok)
	assert.Len(t, seq, 2)

	seq, ok = AsSequence([]map[string]any{{"material": "a"}})
	assert.True(t, ok)
	assert.Len(t, seq, 1)

	seq, ok = AsSequence([]any{"anything", 1})
	assert.True(t, ok)
	assert.Len(t, seq, 2)

	_, ok = AsSequence(map[string]any{"material": "a"})
	assert.False(t, ok)

	_, ok = AsSequence("not a sequence")
	assert.False(t, ok)

	_, ok = AsSequence(nil)
	assert.False(t, ok)
}

func TestRecord_Material(t *testing.T) {
	assert.Equal(t, "acetone", Record{"material": "acetone"}.Material())
	assert.Equal(t, "", Record{}.Material())
	assert.Equal(t, "", Record{"material": nil}.Material())
	assert.Equal(t, "42", Record{"material": 42}.Material())
}

func TestRecord_DisplayMaterial(t *testing.T) {
	assert.Equal(t, "acetone", Record{"material": "acetone"}.DisplayMaterial())
	assert.Equal(t, "N/A", Record{}.DisplayMaterial())
	assert.Equal(t, "N/A", Record{"material": nil}.DisplayMaterial())
}

func TestRecord_ScalarDefaults(t *testing.T) {
	assert.Equal(t, "37%", Record{"purity": "37%"}.Purity())
	assert.Equal(t, "0", Record{}.Purity())
	assert.Equal(t, "0", Record{"purity": nil}.Purity())

	assert.Equal(t, 150, Record{"quantity": 150}.Quantity())
	assert.Equal(t, "0", Record{}.Quantity())
}

func TestRecord_TechnicalRequirements(t *testing.T) {
	assert.Equal(t, []string{"a", "b"},
		Record{"technical_requirements": []string{"a", "b"}}.TechnicalRequirements())

	// JSON decoding yields []any; non-string elements are dropped.
	assert.Equal(t, []string{"a"},
		Record{"technical_requirements": []any{"a", 1, nil}}.TechnicalRequirements())

	assert.Nil(t, Record{}.TechnicalRequirements())
	assert.Nil(t, Record{"technical_requirements": "not a list"}.TechnicalRequirements())

	// The returned slice is a copy; mutating it leaves the record intact.
	rec := Record{"technical_requirements": []string{"a"}}
	got := rec.TechnicalRequirements()
	got[0] = "mutated"
	assert.Equal(t, []string{"a"}, rec.TechnicalRequirements())
}

func TestNewNoMatchResult(t *testing.T) {
	request := Record{"material": "acetone"}
	result := NewNoMatchResult(request)

	assert.True(t, result.IsNoMatch())
	assert.Equal(t, NoMatchMessage, result.Message)
	assert.Equal(t, request, result.Request)
	assert.Nil(t, result.Candidate)
	assert.Zero(t, result.Score)

	assert.False(t, MatchResult{Score: 50}.IsNoMatch())
}
