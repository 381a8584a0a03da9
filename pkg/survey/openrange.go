// Package survey implements the surveyscope scoring core: questions with
// scored responses, outcome bands expressed as half-open ranges, and the
// validation that the bands partition every achievable total score.
package survey

import (
	"fmt"
	"math"
)

// Labeled is implemented by anything displayed with a label line.
type Labeled interface {
	Label() string
}

// OpenRange is a labelled half-open interval [Lower, Higher).
// Either bound may be infinite for open-ended bands.
type OpenRange struct {
	Msg    string  `json:"msg" yaml:"msg"`
	Lower  float64 `json:"lower" yaml:"lower"`
	Higher float64 `json:"higher" yaml:"higher"`
}

// NewOpenRange returns the band [lower, higher) labelled msg.
// No ordering between lower and higher is enforced here.
func NewOpenRange(msg string, lower, higher float64) OpenRange {
	return OpenRange{Msg: msg, Lower: lower, Higher: higher}
}

// Label returns the band's message.
func (r OpenRange) Label() string { return r.Msg }

// Contains reports whether lower <= x < higher.
func (r OpenRange) Contains(x float64) bool {
	return r.Lower <= x && x < r.Higher
}

// Adjacent reports whether r and o touch end to start in either order.
func (r OpenRange) Adjacent(o OpenRange) bool {
	return r.Higher == o.Lower || o.Higher == r.Lower
}

// Empty reports whether the range contains no value at all.
func (r OpenRange) Empty() bool {
	return !(r.Lower < r.Higher)
}

func (r OpenRange) String() string {
	return fmt.Sprintf("[%s, %s)", FormatNumber(r.Lower), FormatNumber(r.Higher))
}

// FormatNumber prints a score or bound, spelling infinities inf and -inf.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}
