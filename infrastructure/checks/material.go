package checks

import (
	"context"
	"fmt"

	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.Check = (*MaterialCheck)(nil)

// MaterialCheck is the mandatory categorical gate: a candidate of the
// wrong substance is never a viable fulfillment regardless of its other
// attributes. Comparison is case-insensitive and whitespace-trimmed.
//
// On mismatch the check halts the rubric, forces the score to zero and
// marks the candidate for exclusion from ranked output. A request with no
// material at all also halts with zero, but the candidate stays in the
// output as an explained zero-score row.
type MaterialCheck struct {
	name   string
	weight int
}

// NewMaterialCheck creates the material gate with the given weight.
func NewMaterialCheck(name string, weight int) (*MaterialCheck, error) {
	if name == "" {
		return nil, ErrEmptyCheckName
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveWeight, weight)
	}
	return &MaterialCheck{name: name, weight: weight}, nil
}

// Name returns the unique identifier for this check.
func (c *MaterialCheck) Name() string { return c.name }

// Weight returns the points awarded on a material match.
func (c *MaterialCheck) Weight() int { return c.weight }

// Evaluate compares candidate and request materials.
func (c *MaterialCheck) Evaluate(_ context.Context, candidate, request domain.Record) domain.CheckResult {
	requested := foldTrim(request.Material())
	offered := foldTrim(candidate.Material())

	if requested == "" {
		return domain.CheckResult{
			Halt:     true,
			Comments: []string{"Requested material is not specified. Cannot perform match."},
		}
	}

	if offered == requested {
		return domain.CheckResult{
			Points:   c.weight,
			Comments: []string{fmt.Sprintf("Material '%s' matches.", request.Material())},
		}
	}

	return domain.CheckResult{
		Halt:    true,
		Exclude: true,
		Comments: []string{fmt.Sprintf(
			"Material mismatch: candidate '%s' vs requested '%s'.",
			candidate.DisplayMaterial(), request.DisplayMaterial(),
		)},
	}
}
