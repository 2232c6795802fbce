package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.Check = (*TechnicalCheck)(nil)

// TechnicalCheck scores capability labels. A request with no requirements
// is treated as automatically satisfied and awards the full weight. A full
// intersection also awards the full weight; otherwise each matched label
// earns the per-item credit, with no deduction for misses. Capabilities
// the candidate offers beyond the request are reported as information only.
//
// The per-item credit is intentionally uncapped at the category level; the
// overall score clamp bounds the total. This mirrors long-standing rubric
// behavior and is covered by tests.
type TechnicalCheck struct {
	name    string
	weight  int
	perItem int
}

// NewTechnicalCheck creates a technical requirements check. perItem is the
// credit for each matched label when the request is only partially met.
func NewTechnicalCheck(name string, weight, perItem int) (*TechnicalCheck, error) {
	if name == "" {
		return nil, ErrEmptyCheckName
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveWeight, weight)
	}
	if perItem < 0 {
		return nil, fmt.Errorf("per-item credit cannot be negative: %d", perItem)
	}
	return &TechnicalCheck{name: name, weight: weight, perItem: perItem}, nil
}

// Name returns the unique identifier for this check.
func (c *TechnicalCheck) Name() string { return c.name }

// Weight returns the points awarded when all requirements are met.
func (c *TechnicalCheck) Weight() int { return c.weight }

// Evaluate normalizes both requirement lists to sets of lowercase, trimmed,
// non-empty labels and scores the intersection.
func (c *TechnicalCheck) Evaluate(_ context.Context, candidate, request domain.Record) domain.CheckResult {
	offered := normalizeSet(candidate.TechnicalRequirements())
	requested := normalizeSet(request.TechnicalRequirements())

	if len(requested) == 0 {
		return domain.CheckResult{
			Points:   c.weight,
			Comments: []string{"Order has no specific technical requirements; considered met."},
		}
	}

	var matched, missing []string
	for label := range requested {
		if _, ok := offered[label]; ok {
			matched = append(matched, label)
		} else {
			missing = append(missing, label)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	result := domain.CheckResult{}
	if len(matched) == len(requested) {
		result.Points = c.weight
		result.Comments = append(result.Comments, fmt.Sprintf(
			"All %d requested technical requirement(s) met: %s.",
			len(requested), strings.Join(matched, ", "),
		))
	} else {
		if len(matched) > 0 {
			result.Points = len(matched) * c.perItem
			result.Comments = append(result.Comments, fmt.Sprintf(
				"Partially met technical requirements: %d of %d met (%s).",
				len(matched), len(requested), strings.Join(matched, ", "),
			))
		}
		if len(missing) > 0 {
			result.Comments = append(result.Comments, fmt.Sprintf(
				"Candidate MISSES %d requirement(s): %s.",
				len(missing), strings.Join(missing, ", "),
			))
		}
	}

	var extras []string
	for label := range offered {
		if _, ok := requested[label]; !ok {
			extras = append(extras, label)
		}
	}
	if len(extras) > 0 {
		sort.Strings(extras)
		result.Comments = append(result.Comments, fmt.Sprintf(
			"Candidate offers additional capabilities not requested: %s.",
			strings.Join(extras, ", "),
		))
	}

	return result
}

// normalizeSet folds a raw label list into a set of lowercase, trimmed,
// non-empty labels.
func normalizeSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		normalized := foldTrim(label)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
