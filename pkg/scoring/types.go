// Package scoring turns a filled-out survey into an explainable outcome:
// the total score, the band it falls in, and how each answer contributed.
package scoring

import (
	"time"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

// Outcome is the complete result of scoring one submission.
// Immutable once computed.
type Outcome struct {
	SubmissionID string           `json:"submission_id"`
	SurveyID     string           `json:"survey_id,omitempty"`
	SurveyTitle  string           `json:"survey_title,omitempty"`
	Respondent   string           `json:"respondent,omitempty"`
	TotalScore   float64          `json:"total_score"`
	Band         survey.OpenRange `json:"band"`
	BandIndex    int              `json:"band_index"` // position among the sorted bands
	BandCount    int              `json:"band_count"`
	Position     Position         `json:"position"`
	Span         survey.OpenRange `json:"span"` // achievable total scores
	Breakdown    []AnswerResult   `json:"breakdown"`
	SubmittedAt  time.Time        `json:"submitted_at"`
}

// AnswerResult is one question's contribution to the total score.
type AnswerResult struct {
	Question      string  `json:"question"`
	ResponseIndex int     `json:"response_index"`
	Response      string  `json:"response"`
	Score         float64 `json:"score"`
	MinScore      float64 `json:"min_score"`
	MaxScore      float64 `json:"max_score"`
}

// Position places the resolved band relative to the other bands.
type Position string

const (
	PositionOnly    Position = "ONLY"
	PositionLowest  Position = "LOWEST"
	PositionMiddle  Position = "MIDDLE"
	PositionHighest Position = "HIGHEST"
)

// PositionOf maps a band index to its Position among count bands.
func PositionOf(index, count int) Position {
	switch {
	case count <= 1:
		return PositionOnly
	case index == 0:
		return PositionLowest
	case index == count-1:
		return PositionHighest
	default:
		return PositionMiddle
	}
}
