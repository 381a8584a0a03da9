// Package respondent models a filled-out survey: who answered, which
// response they picked for every question, and the resulting total score.
package respondent

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

// Respondent holds optional contact details of whoever filled out a survey.
type Respondent struct {
	Name      string `json:"name,omitempty"`
	Age       *int   `json:"age,omitempty"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
}

// IndexOutOfRangeError reports a response index outside its question's
// responses.
type IndexOutOfRangeError struct {
	Question int // position of the question in the survey
	Index    int
	Count    int // number of responses the question offers
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("question %d: response index %d out of range [0, %d)", e.Question, e.Index, e.Count)
}

// AnswerCountError reports a response list whose length differs from the
// number of questions.
type AnswerCountError struct {
	Got, Want int
}

func (e *AnswerCountError) Error() string {
	return fmt.Sprintf("got %d responses for %d questions", e.Got, e.Want)
}

// Submission is a respondent's completed survey. Score is derived from the
// chosen responses and never set directly.
type Submission struct {
	ID          string
	Respondent  Respondent
	Survey      *survey.Survey
	Responses   []int
	Score       float64
	SubmittedAt time.Time
}

// NewSubmission checks that responses holds exactly one valid index per
// question and computes the total score.
func NewSubmission(r Respondent, s *survey.Survey, responses []int) (*Submission, error) {
	score, err := Score(s, responses)
	if err != nil {
		return nil, err
	}
	return &Submission{
		ID:          uuid.NewString(),
		Respondent:  r,
		Survey:      s,
		Responses:   append([]int(nil), responses...),
		Score:       score,
		SubmittedAt: time.Now().UTC(),
	}, nil
}

// Score sums the scores of the chosen responses, one index per question.
func Score(s *survey.Survey, responses []int) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("survey is nil")
	}
	if len(responses) != s.NumQuestions() {
		return 0, &AnswerCountError{Got: len(responses), Want: s.NumQuestions()}
	}
	var total float64
	for i, idx := range responses {
		q := s.Question(i)
		if idx < 0 || idx >= len(q.Responses) {
			return 0, &IndexOutOfRangeError{Question: i, Index: idx, Count: len(q.Responses)}
		}
		total += q.Responses[idx].Score
	}
	return total, nil
}

// Band resolves the submission's score against the survey's ranges.
func (sub *Submission) Band() (survey.OpenRange, error) {
	return sub.Survey.Resolve(sub.Score)
}

type submissionJSON struct {
	ID          string         `json:"id"`
	Respondent  Respondent     `json:"respondent"`
	Survey      *survey.Survey `json:"survey"`
	Responses   []int          `json:"responses"`
	Score       float64        `json:"score"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

func (sub *Submission) MarshalJSON() ([]byte, error) {
	return json.Marshal(submissionJSON{
		ID:          sub.ID,
		Respondent:  sub.Respondent,
		Survey:      sub.Survey,
		Responses:   sub.Responses,
		Score:       sub.Score,
		SubmittedAt: sub.SubmittedAt,
	})
}

// UnmarshalJSON decodes a stored submission. The survey is re-validated
// and the score recomputed from the responses; the stored score is ignored.
func (sub *Submission) UnmarshalJSON(data []byte) error {
	var raw submissionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Survey == nil {
		return fmt.Errorf("submission %s has no survey", raw.ID)
	}
	score, err := Score(raw.Survey, raw.Responses)
	if err != nil {
		return fmt.Errorf("submission %s: %w", raw.ID, err)
	}
	*sub = Submission{
		ID:          raw.ID,
		Respondent:  raw.Respondent,
		Survey:      raw.Survey,
		Responses:   raw.Responses,
		Score:       score,
		SubmittedAt: raw.SubmittedAt,
	}
	return nil
}
