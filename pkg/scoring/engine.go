package scoring

import (
	"fmt"

	"github.com/surveyscope/surveyscope/pkg/respondent"
)

// Engine scores submissions against their survey's bands.
type Engine struct{}

// NewEngine creates a scoring engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Score recomputes the submission's total from its responses, resolves
// the band and builds the per-question breakdown.
func (e *Engine) Score(sub *respondent.Submission) (*Outcome, error) {
	if sub == nil {
		return nil, fmt.Errorf("submission is nil")
	}
	if sub.Survey == nil {
		return nil, fmt.Errorf("submission %s has no survey", sub.ID)
	}
	s := sub.Survey
	// The stored score is not trusted; the breakdown and total must agree.
	total, err := respondent.Score(s, sub.Responses)
	if err != nil {
		return nil, err
	}

	idx, err := s.ResolveIndex(total)
	if err != nil {
		return nil, fmt.Errorf("resolving band: %w", err)
	}
	ranges := s.Ranges()

	result := &Outcome{
		SubmissionID: sub.ID,
		SurveyID:     s.ID(),
		SurveyTitle:  s.Title(),
		Respondent:   sub.Respondent.Name,
		TotalScore:   total,
		Band:         ranges[idx],
		BandIndex:    idx,
		BandCount:    len(ranges),
		Position:     PositionOf(idx, len(ranges)),
		Span:         s.Span(),
		SubmittedAt:  sub.SubmittedAt,
	}

	for i, choice := range sub.Responses {
		q := s.Question(i)
		span := q.Span()
		r := q.Responses[choice]
		result.Breakdown = append(result.Breakdown, AnswerResult{
			Question:      q.Msg,
			ResponseIndex: choice,
			Response:      r.Msg,
			Score:         r.Score,
			MinScore:      span.Lower,
			MaxScore:      span.Higher,
		})
	}

	return result, nil
}
