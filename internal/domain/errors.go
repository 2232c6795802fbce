package domain

import "errors"

// Typed errors for top-level input shape violations. These are the only
// failures the ranker surfaces to its caller; everything below them is
// recovered per-item or per-field.
var (
	// ErrCandidatesNotSequence indicates the candidate set was not an
	// ordered sequence of records.
	ErrCandidatesNotSequence = errors.New("candidates must be a sequence of records")

	// ErrRequestNotRecord indicates the request was not a record-shaped
	// value.
	ErrRequestNotRecord = errors.New("request must be a record")
)
