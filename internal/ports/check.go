// Package ports defines the interfaces that form the contract between the
// domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"

	"github.com/supplyai/matchengine/internal/domain"
)

// Check is one weighted rubric check applied to a (candidate, request)
// pair. Checks are evaluated in a fixed order by the scorer; each yields
// points and explanatory comments, and the material gate may additionally
// halt the sequence or exclude the candidate from ranked output.
//
// Checks must be stateless, safe for concurrent use, and fail-soft: a
// malformed field degrades the outcome of that check (with a logged
// observation) rather than returning an error or panicking.
type Check interface {
	// Name returns a unique identifier for this check, used for logging
	// and observability.
	Name() string

	// Weight returns the maximum points this check can award.
	Weight() int

	// Evaluate applies the check to one candidate against the request.
	// It never fails; degraded input is reflected in the returned points
	// and comments.
	Evaluate(ctx context.Context, candidate, request domain.Record) domain.CheckResult
}
