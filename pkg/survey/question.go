package survey

import "math"

// Response is one selectable answer to a question.
// Responses order and compare by score only.
type Response struct {
	Msg   string  `json:"msg" yaml:"msg"`
	Score float64 `json:"score" yaml:"score"`
}

// Label returns the response's message.
func (r Response) Label() string { return r.Msg }

// Less orders responses by score.
func (r Response) Less(o Response) bool { return r.Score < o.Score }

// SameScore reports score equality; labels are ignored.
func (r Response) SameScore(o Response) bool { return r.Score == o.Score }

// Question is a prompt with at least one scored response.
type Question struct {
	Msg       string     `json:"msg" yaml:"msg"`
	Responses []Response `json:"responses" yaml:"responses"`
}

// NewQuestion builds a question, rejecting an empty response list.
func NewQuestion(msg string, responses []Response) (Question, error) {
	q := Question{Msg: msg, Responses: append([]Response(nil), responses...)}
	if err := q.check(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Label returns the question's message.
func (q Question) Label() string { return q.Msg }

// Span returns the lowest and highest response score, both inclusive.
// The exclusive +1 is applied once for the whole survey by TotalSpan.
func (q Question) Span() OpenRange {
	lower := math.Inf(1)
	higher := math.Inf(-1)
	for _, r := range q.Responses {
		lower = math.Min(lower, r.Score)
		higher = math.Max(higher, r.Score)
	}
	return OpenRange{Lower: lower, Higher: higher}
}

func (q Question) check() error {
	if len(q.Responses) == 0 {
		return &StructuralError{Reason: "supply at least 1 response", Question: q.Msg}
	}
	for _, r := range q.Responses {
		if math.IsNaN(r.Score) {
			return &StructuralError{Reason: "response score is NaN", Question: q.Msg}
		}
	}
	return nil
}
