package checks

import (
	"context"
	"fmt"

	"github.com/supplyai/matchengine/infrastructure/scalar"
	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.Check = (*QuantityCheck)(nil)

// QuantityCheck awards its full weight when the candidate can supply at
// least the requested quantity in the same unit. Unit labels are compared
// for literal equality after normalization; no conversion between unit
// systems is attempted, so differing units make the comparison
// unverifiable and award nothing.
type QuantityCheck struct {
	name   string
	weight int
	parser *scalar.Parser
}

// NewQuantityCheck creates a quantity check backed by the given scalar parser.
func NewQuantityCheck(name string, weight int, parser *scalar.Parser) (*QuantityCheck, error) {
	if name == "" {
		return nil, ErrEmptyCheckName
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveWeight, weight)
	}
	return &QuantityCheck{name: name, weight: weight, parser: parser}, nil
}

// Name returns the unique identifier for this check.
func (c *QuantityCheck) Name() string { return c.name }

// Weight returns the points awarded when quantity is sufficient.
func (c *QuantityCheck) Weight() int { return c.weight }

// Evaluate parses both quantity fields with the kg/month default unit and
// compares them when the unit labels agree.
func (c *QuantityCheck) Evaluate(_ context.Context, candidate, request domain.Record) domain.CheckResult {
	offered := c.parser.Parse(candidate.Quantity(), DefaultQuantityUnit)
	requested := c.parser.Parse(request.Quantity(), DefaultQuantityUnit)

	if offered.Unit != requested.Unit {
		return domain.CheckResult{
			Comments: []string{fmt.Sprintf(
				"Quantity unit mismatch: candidate '%s' vs requested '%s'. Cannot directly compare quantities based on value alone.",
				offered.Unit, requested.Unit,
			)},
		}
	}

	if offered.Value >= requested.Value {
		return domain.CheckResult{
			Points: c.weight,
			Comments: []string{fmt.Sprintf(
				"Quantity sufficient: candidate %s %s >= requested %s %s.",
				formatValue(offered.Value), offered.Unit,
				formatValue(requested.Value), requested.Unit,
			)},
		}
	}

	return domain.CheckResult{
		Comments: []string{fmt.Sprintf(
			"Quantity insufficient: candidate %s %s < requested %s %s.",
			formatValue(offered.Value), offered.Unit,
			formatValue(requested.Value), requested.Unit,
		)},
	}
}
