package survey

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Survey is a validated set of questions and outcome bands. The bands are
// stored sorted by Lower and are guaranteed to partition every achievable
// total score exactly once. Immutable once built.
type Survey struct {
	id        string
	title     string
	questions []Question
	ranges    []OpenRange
	span      OpenRange
}

// Option sets optional survey metadata.
type Option func(*Survey)

// WithID sets the identifier used to key stored submissions.
func WithID(id string) Option {
	return func(s *Survey) { s.id = id }
}

// WithTitle sets a display title.
func WithTitle(title string) Option {
	return func(s *Survey) { s.title = title }
}

// New validates questions and ranges and returns the survey. Construction
// is all or nothing: on error no survey is returned.
func New(questions []Question, ranges []OpenRange, opts ...Option) (*Survey, error) {
	if len(questions) == 0 {
		return nil, &StructuralError{Reason: "supply at least 1 question"}
	}
	if len(ranges) == 0 {
		return nil, &StructuralError{Reason: "supply at least 1 range"}
	}
	for _, q := range questions {
		if err := q.check(); err != nil {
			return nil, err
		}
	}
	for _, r := range ranges {
		if math.IsNaN(r.Lower) || math.IsNaN(r.Higher) {
			return nil, &StructuralError{Reason: "range " + r.Msg + " has a NaN bound"}
		}
	}

	s := &Survey{
		questions: cloneQuestions(questions),
		ranges:    SortRanges(ranges),
		span:      TotalSpan(questions),
	}
	if err := validateSorted(s.span, s.ranges); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := ValidateID(s.id); err != nil {
		return nil, err
	}
	return s, nil
}

// ValidateID rejects identifiers that cannot be used as a single storage
// path segment. The empty id is allowed.
func ValidateID(id string) error {
	if id == "." || strings.Contains(id, "..") || strings.ContainsAny(id, "/\\\x00") {
		return &StructuralError{Reason: fmt.Sprintf("invalid id %q: must be a single path segment", id)}
	}
	return nil
}

// TotalSpan returns the achievable total scores as a half-open range:
// the sum of every question's minimum, up to one past the sum of every
// question's maximum.
func TotalSpan(questions []Question) OpenRange {
	lower := 0.0
	higher := 1.0
	for _, q := range questions {
		span := q.Span()
		lower += span.Lower
		higher += span.Higher
	}
	return OpenRange{Lower: lower, Higher: higher}
}

// SortRanges returns a copy of ranges stably sorted by Lower.
func SortRanges(ranges []OpenRange) []OpenRange {
	sorted := append([]OpenRange(nil), ranges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lower < sorted[j].Lower
	})
	return sorted
}

// ValidatePartition checks that bands, in any order, cover span exactly
// once. The first violation found is returned, checking the low end, then
// the high end, then each neighbouring pair.
func ValidatePartition(span OpenRange, bands []OpenRange) error {
	if len(bands) == 0 {
		return &StructuralError{Reason: "supply at least 1 range"}
	}
	return validateSorted(span, SortRanges(bands))
}

func validateSorted(span OpenRange, sorted []OpenRange) error {
	first := sorted[0]
	if !first.Contains(span.Lower) {
		return &LowCoverageError{Lowest: span.Lower, Bound: first.Lower}
	}

	// span.Higher is exclusive, the highest reachable score is one below.
	highest := span.Higher - 1
	last := sorted[len(sorted)-1]
	if !last.Contains(highest) {
		return &HighCoverageError{Highest: highest, Bound: last.Higher}
	}

	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		if next.Lower != prev.Higher || next.Lower == prev.Lower {
			return &DisconnectedRangeError{Prev: i - 1, Next: i}
		}
	}
	return nil
}

// Resolve returns the band containing score, or a *RangeError when score
// lies outside every band.
func (s *Survey) Resolve(score float64) (OpenRange, error) {
	i, err := s.ResolveIndex(score)
	if err != nil {
		return OpenRange{}, err
	}
	return s.ranges[i], nil
}

// ResolveIndex is Resolve returning the band's position in Ranges.
func (s *Survey) ResolveIndex(score float64) (int, error) {
	for i, r := range s.ranges {
		if r.Contains(score) {
			return i, nil
		}
	}
	return -1, &RangeError{Score: score}
}

// ID returns the survey identifier, possibly empty.
func (s *Survey) ID() string { return s.id }

// Title returns the display title, possibly empty.
func (s *Survey) Title() string { return s.title }

// Span returns the achievable total-score range.
func (s *Survey) Span() OpenRange { return s.span }

// Questions returns a copy of the questions in their original order.
func (s *Survey) Questions() []Question { return cloneQuestions(s.questions) }

// Ranges returns a copy of the bands sorted by Lower.
func (s *Survey) Ranges() []OpenRange { return append([]OpenRange(nil), s.ranges...) }

// NumQuestions returns the number of questions.
func (s *Survey) NumQuestions() int { return len(s.questions) }

// Question returns the i-th question. It panics if i is out of range.
func (s *Survey) Question(i int) Question {
	q := s.questions[i]
	q.Responses = append([]Response(nil), q.Responses...)
	return q
}

func cloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Question{Msg: q.Msg, Responses: append([]Response(nil), q.Responses...)}
	}
	return out
}
