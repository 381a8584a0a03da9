package scoring_test

import (
	"errors"
	"testing"

	"github.com/surveyscope/surveyscope/pkg/respondent"
	"github.com/surveyscope/surveyscope/pkg/scoring"
	"github.com/surveyscope/surveyscope/pkg/survey"
)

func loadFixture(t *testing.T) *survey.Survey {
	t.Helper()
	s, err := survey.LoadFile("../../testdata/quiz_01.json")
	if err != nil {
		t.Fatalf("loading fixture survey: %v", err)
	}
	return s
}

func TestEngineScoreWithFixture(t *testing.T) {
	s := loadFixture(t)
	sub, err := respondent.NewSubmission(respondent.Respondent{Name: "Ada"}, s, []int{0, 0})
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}

	result, err := scoring.NewEngine().Score(sub)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if result.TotalScore != 10 {
		t.Errorf("expected total score 10, got %v", result.TotalScore)
	}
	if result.Band.Msg != "Very healthy" {
		t.Errorf("expected band Very healthy, got %q", result.Band.Msg)
	}
	if result.Position != scoring.PositionHighest {
		t.Errorf("expected position HIGHEST, got %s", result.Position)
	}
	if result.BandCount != 3 || result.BandIndex != 2 {
		t.Errorf("expected band 2 of 3, got %d of %d", result.BandIndex, result.BandCount)
	}
	if len(result.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(result.Breakdown))
	}
	first := result.Breakdown[0]
	if first.Response != "Good" || first.Score != 5 || first.MinScore != 1 || first.MaxScore != 5 {
		t.Errorf("unexpected first answer: %+v", first)
	}
	if result.SurveyID != "quiz_01" {
		t.Errorf("expected survey id quiz_01, got %q", result.SurveyID)
	}
	if result.Respondent != "Ada" {
		t.Errorf("expected respondent Ada, got %q", result.Respondent)
	}
}

func TestEngineScoreNilSubmission(t *testing.T) {
	if _, err := scoring.NewEngine().Score(nil); err == nil {
		t.Error("expected error for nil submission")
	}
	if _, err := scoring.NewEngine().Score(&respondent.Submission{}); err == nil {
		t.Error("expected error for submission without survey")
	}
}

func TestEngineScoreTamperedResponses(t *testing.T) {
	s := loadFixture(t)
	sub, err := respondent.NewSubmission(respondent.Respondent{}, s, []int{2, 1})
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}
	sub.Responses[1] = 5

	_, err = scoring.NewEngine().Score(sub)
	var idx *respondent.IndexOutOfRangeError
	if !errors.As(err, &idx) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", err)
	}
}

func TestEngineScoreIgnoresStaleScore(t *testing.T) {
	s := loadFixture(t)
	sub := &respondent.Submission{
		ID:        "stale",
		Survey:    s,
		Responses: []int{2, 1}, // Bad + No = 2
		Score:     9,
	}

	result, err := scoring.NewEngine().Score(sub)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	if result.TotalScore != 2 {
		t.Errorf("expected total score 2, got %v", result.TotalScore)
	}
	if result.Band.Msg != "Unhealthy" {
		t.Errorf("expected band Unhealthy, got %q", result.Band.Msg)
	}
	var sum float64
	for _, a := range result.Breakdown {
		sum += a.Score
	}
	if sum != result.TotalScore {
		t.Errorf("breakdown sums to %v, total is %v", sum, result.TotalScore)
	}
}

func TestPositionOf(t *testing.T) {
	tests := []struct {
		index, count int
		want         scoring.Position
	}{
		{0, 1, scoring.PositionOnly},
		{0, 3, scoring.PositionLowest},
		{1, 3, scoring.PositionMiddle},
		{2, 3, scoring.PositionHighest},
	}
	for _, tc := range tests {
		if got := scoring.PositionOf(tc.index, tc.count); got != tc.want {
			t.Errorf("PositionOf(%d, %d) = %s, want %s", tc.index, tc.count, got, tc.want)
		}
	}
}
