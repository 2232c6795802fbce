package checks

import (
	"context"
	"fmt"

	"github.com/supplyai/matchengine/infrastructure/scalar"
	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.Check = (*PurityCheck)(nil)

// PurityCheck awards its full weight when the candidate's purity meets or
// exceeds the requested purity. There is no partial credit: purity either
// satisfies the requirement or it does not.
type PurityCheck struct {
	name   string
	weight int
	parser *scalar.Parser
}

// NewPurityCheck creates a purity check backed by the given scalar parser.
func NewPurityCheck(name string, weight int, parser *scalar.Parser) (*PurityCheck, error) {
	if name == "" {
		return nil, ErrEmptyCheckName
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveWeight, weight)
	}
	return &PurityCheck{name: name, weight: weight, parser: parser}, nil
}

// Name returns the unique identifier for this check.
func (c *PurityCheck) Name() string { return c.name }

// Weight returns the points awarded when purity is sufficient.
func (c *PurityCheck) Weight() int { return c.weight }

// Evaluate parses both purity fields with the percent default unit and
// compares values. Unparseable fields degrade to 0.0 via the parser's
// fail-soft policy, so a candidate with a bad purity field scores
// unfavorably instead of being dropped.
func (c *PurityCheck) Evaluate(_ context.Context, candidate, request domain.Record) domain.CheckResult {
	offered := c.parser.Parse(candidate.Purity(), DefaultPurityUnit)
	requested := c.parser.Parse(request.Purity(), DefaultPurityUnit)

	if offered.Value >= requested.Value {
		return domain.CheckResult{
			Points: c.weight,
			Comments: []string{fmt.Sprintf(
				"Purity meets/exceeds requirement: candidate %s%% >= requested %s%%.",
				formatValue(offered.Value), formatValue(requested.Value),
			)},
		}
	}

	return domain.CheckResult{
		Comments: []string{fmt.Sprintf(
			"Purity requirement not met: candidate %s%% < requested %s%%.",
			formatValue(offered.Value), formatValue(requested.Value),
		)},
	}
}
