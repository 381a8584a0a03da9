package survey

import (
	"errors"
	"fmt"
)

// ErrCoverage is matched by every error reporting that a band set does not
// partition the achievable span.
var ErrCoverage = errors.New("ranges do not partition the achievable scores")

// StructuralError reports a question without responses, a survey without
// questions or ranges, or a NaN score or bound.
type StructuralError struct {
	Reason   string
	Question string // offending question label, if any
}

func (e *StructuralError) Error() string {
	if e.Question != "" {
		return fmt.Sprintf("question %q: %s", e.Question, e.Reason)
	}
	return e.Reason
}

// LowCoverageError reports that the lowest band does not reach the lowest
// achievable score.
type LowCoverageError struct {
	Lowest float64 // lowest achievable total score
	Bound  float64 // Lower of the lowest band
}

func (e *LowCoverageError) Error() string {
	return fmt.Sprintf("lowest answer is %s but the ranges only go as low as %s",
		FormatNumber(e.Lowest), FormatNumber(e.Bound))
}

func (e *LowCoverageError) Is(target error) bool { return target == ErrCoverage }

// HighCoverageError reports that the highest band does not reach the
// highest achievable score.
type HighCoverageError struct {
	Highest float64 // highest achievable total score, inclusive
	Bound   float64 // Higher of the highest band
}

func (e *HighCoverageError) Error() string {
	return fmt.Sprintf("highest answer is %s but the ranges only go as high as %s",
		FormatNumber(e.Highest), FormatNumber(e.Bound))
}

func (e *HighCoverageError) Is(target error) bool { return target == ErrCoverage }

// DisconnectedRangeError reports a gap, overlap or duplicate lower bound
// between two neighbouring bands. Positions refer to the sorted order.
type DisconnectedRangeError struct {
	Prev, Next int
}

func (e *DisconnectedRangeError) Error() string {
	return fmt.Sprintf("range %d and %d are disconnected", e.Prev, e.Next)
}

func (e *DisconnectedRangeError) Is(target error) bool { return target == ErrCoverage }

// RangeError reports a score that no band contains.
type RangeError struct {
	Score float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("score %s falls out of survey range", FormatNumber(e.Score))
}
