// Package scalar normalizes heterogeneous value-with-unit fields such as
// "98%", "200 kg/month" or bare numbers into a (value, unit) pair.
package scalar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/supplyai/matchengine/internal/domain"
)

// leadingNumber matches an optional leading decimal number followed by an
// optional trailing unit string, e.g. "200 kg/month" or "98".
var leadingNumber = regexp.MustCompile(`^([0-9.]+)\s*(.*)$`)

// Parser converts loosely-typed scalar fields into domain.ParsedScalar
// values. Parsing is fail-soft: a malformed field degrades to 0.0 with a
// warning observation instead of aborting the surrounding match pass.
//
// Parser is stateless apart from its logger and safe for concurrent use.
type Parser struct {
	logger zerolog.Logger
}

// NewParser creates a Parser that emits parse diagnostics through the
// given logger.
func NewParser(logger zerolog.Logger) *Parser {
	return &Parser{logger: logger.With().Str("component", "scalar_parser").Logger()}
}

// Parse normalizes raw into a (value, unit) pair.
//
// Numeric inputs never carry their own unit and take defaultUnit as-is.
// String inputs are trimmed, matched against a leading-number pattern, and
// fall back to whole-string numeric interpretation. When defaultUnit is
// "%" a trailing percent symbol is stripped before matching so the unit
// token is not counted twice. If every attempt fails, Parse returns 0.0
// with the default unit and logs a warning naming the unparseable input.
// Negative and zero values are accepted; no range validation happens here.
func (p *Parser) Parse(raw any, defaultUnit string) domain.ParsedScalar {
	fallback := strings.ToLower(strings.TrimSpace(defaultUnit))

	switch n := raw.(type) {
	case float64:
		return domain.ParsedScalar{Value: n, Unit: fallback}
	case float32:
		return domain.ParsedScalar{Value: float64(n), Unit: fallback}
	case int:
		return domain.ParsedScalar{Value: float64(n), Unit: fallback}
	case int64:
		return domain.ParsedScalar{Value: float64(n), Unit: fallback}
	}

	text := strings.TrimSpace(stringifyRaw(raw))
	if defaultUnit == "%" && strings.HasSuffix(text, "%") {
		text = strings.TrimSuffix(text, "%")
	}

	if m := leadingNumber.FindStringSubmatch(text); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil {
			unit := strings.ToLower(strings.TrimSpace(m[2]))
			if unit == "" {
				unit = fallback
			}
			return domain.ParsedScalar{Value: value, Unit: unit}
		}
	}

	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return domain.ParsedScalar{Value: value, Unit: fallback}
	}

	p.logger.Warn().
		Str("raw", text).
		Str("default_unit", fallback).
		Msg("could not parse value-unit field, defaulting to 0.0")
	return domain.ParsedScalar{Value: 0, Unit: fallback}
}

// stringifyRaw renders non-numeric, non-string values the way a loose
// record boundary would, so they flow through the same fallback path.
func stringifyRaw(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
