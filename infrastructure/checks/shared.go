// Package checks provides the weighted rubric checks that score one
// candidate offer against a request: material gate, purity, quantity, and
// technical requirements. Each check implements the ports.Check interface
// and is stateless and safe for concurrent execution.
package checks

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Default units applied when a scalar field carries no unit of its own.
const (
	// DefaultPurityUnit is the percent symbol used for purity fields.
	DefaultPurityUnit = "%"

	// DefaultQuantityUnit is the compound mass-per-time rate used for
	// quantity fields.
	DefaultQuantityUnit = "kg/month"
)

// ErrEmptyCheckName is returned when attempting to create a check with an
// empty name.
var ErrEmptyCheckName = errors.New("check name cannot be empty")

// ErrNonPositiveWeight is returned when a check weight is zero or negative.
var ErrNonPositiveWeight = errors.New("check weight must be positive")

// foldTrim normalizes a label for case-insensitive, whitespace-insensitive
// comparison. Unicode-aware case folding handles labels that plain ASCII
// lowercasing would mangle.
func foldTrim(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// formatValue renders a float the way the comments expect: no trailing
// zeros, no scientific notation for typical magnitudes.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
