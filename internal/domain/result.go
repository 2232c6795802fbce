package domain

import "time"

// NoMatchMessage is the message carried by the sentinel result returned
// when no candidate survives the material gate.
const NoMatchMessage = "No suitable matches found for the requested order."

// CheckResult is the outcome of a single rubric check. Checks are evaluated
// in a fixed order; most contribute points and comments and let evaluation
// continue, but the material gate may halt the sequence entirely.
type CheckResult struct {
	// Points awarded by this check. Zero when the check failed.
	Points int

	// Comments explaining the outcome, in the order they should appear in
	// the final result.
	Comments []string

	// Halt stops evaluation of the remaining checks. Only the material
	// gate sets this.
	Halt bool

	// Exclude marks the candidate as a genuine non-candidate (wrong
	// substance entirely) that must be dropped from ranked output rather
	// than shown as a zero-score row. Implies Halt.
	Exclude bool
}

// MatchResult is one ranked outcome: the candidate, its suitability score
// and the ordered rationale. The sentinel "no matches" variant carries a
// message and the original request instead of a candidate.
type MatchResult struct {
	// Candidate is the original record, passed through unchanged with any
	// unknown fields intact. Nil on the sentinel result.
	Candidate Record `json:"candidate,omitempty"`

	// Score is the clamped suitability score in [0, 100].
	Score int `json:"score"`

	// Comments is the ordered, human-readable rationale for the score.
	Comments []string `json:"comments,omitempty"`

	// Message is set only on the sentinel "no matches" result.
	Message string `json:"message,omitempty"`

	// Request echoes the original request on the sentinel result so the
	// caller retains context for an empty outcome.
	Request Record `json:"request,omitempty"`
}

// IsNoMatch reports whether this result is the sentinel returned when no
// candidate survived filtering.
func (r MatchResult) IsNoMatch() bool { return r.Message != "" }

// NewNoMatchResult builds the sentinel result carrying the original request.
func NewNoMatchResult(request Record) MatchResult {
	return MatchResult{
		Message: NoMatchMessage,
		Request: request,
	}
}

// OrderAnalysis is the outcome of running one order through the full
// pipeline: extraction, matching and (optionally) rendering. An order that
// fails extraction produces an analysis with Status "error" rather than
// failing the whole batch.
type OrderAnalysis struct {
	// ID uniquely identifies this pipeline run.
	ID string `json:"id"`

	// Request is the structured specification extracted from the order
	// text, nil when extraction failed.
	Request Record `json:"order_specifications,omitempty"`

	// Results is the ranked match list for the request.
	Results []MatchResult `json:"matching_results,omitempty"`

	// Status is "success" or "error".
	Status string `json:"status"`

	// Err carries the failure message when Status is "error".
	Err string `json:"error,omitempty"`

	// ProcessedAt records when the pipeline finished this order.
	ProcessedAt time.Time `json:"processed_at"`
}

// Analysis statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
