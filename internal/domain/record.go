// Package domain contains pure, dependency-free domain models and types
// for the match engine.
package domain

import "fmt"

// Record is a loosely-typed candidate or request record, typically decoded
// from a JSON object. Fields the engine does not know about are preserved
// untouched, so callers get their own data back inside each MatchResult.
type Record map[string]any

// Well-known record field names shared across the engine and its boundaries.
const (
	FieldMaterial              = "material"
	FieldPurity                = "purity"
	FieldQuantity              = "quantity"
	FieldTechnicalRequirements = "technical_requirements"
)

// AsRecord reports whether v is record-shaped and, if so, returns it as a
// Record. JSON decoding produces map[string]any, but callers constructing
// records directly may already hold a Record.
func AsRecord(v any) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, true
	case map[string]any:
		return Record(r), true
	default:
		return nil, false
	}
}

// AsSequence reports whether v is an ordered sequence of loosely-typed
// values and, if so, returns its elements. Individual elements are not
// shape-checked here; the ranker skips non-record elements itself.
func AsSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []Record:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, true
	default:
		return nil, false
	}
}

// Material returns the record's material label, or the empty string when the
// field is missing. Non-string values are stringified rather than rejected,
// matching the loose-input contract.
func (r Record) Material() string {
	v, ok := r[FieldMaterial]
	if !ok || v == nil {
		return ""
	}
	return stringify(v)
}

// DisplayMaterial returns the material label for use in human-readable
// comments. A missing field renders as "N/A" rather than an empty string.
func (r Record) DisplayMaterial() string {
	v, ok := r[FieldMaterial]
	if !ok || v == nil {
		return "N/A"
	}
	return stringify(v)
}

// Purity returns the raw purity field. A missing field defaults to "0" so
// downstream scalar parsing degrades to zero rather than failing.
func (r Record) Purity() any {
	if v, ok := r[FieldPurity]; ok && v != nil {
		return v
	}
	return "0"
}

// Quantity returns the raw quantity field, defaulting to "0" when absent.
func (r Record) Quantity() any {
	if v, ok := r[FieldQuantity]; ok && v != nil {
		return v
	}
	return "0"
}

// TechnicalRequirements returns the record's capability labels. Only string
// elements are kept; anything else in the list is ignored. The returned
// labels are raw — normalization (trimming, case folding) happens in the
// technical requirements check.
func (r Record) TechnicalRequirements() []string {
	v, ok := r[FieldTechnicalRequirements]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		var out []string
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
