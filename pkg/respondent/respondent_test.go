package respondent_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/surveyscope/surveyscope/pkg/respondent"
	"github.com/surveyscope/surveyscope/pkg/survey"
)

// dummySurvey has three questions scoring {0,1}, {2,3} and {4,5}.
func dummySurvey(t *testing.T) *survey.Survey {
	t.Helper()
	qs := []survey.Question{
		{Msg: "question0", Responses: []survey.Response{{Msg: "response0", Score: 0}, {Msg: "response1", Score: 1}}},
		{Msg: "question1", Responses: []survey.Response{{Msg: "response2", Score: 2}, {Msg: "response3", Score: 3}}},
		{Msg: "question2", Responses: []survey.Response{{Msg: "response4", Score: 4}, {Msg: "response5", Score: 5}}},
	}
	s, err := survey.New(qs, []survey.OpenRange{
		survey.NewOpenRange("low", 0, 7),
		survey.NewOpenRange("medium", 7, 9),
		survey.NewOpenRange("high", 9, 10),
	}, survey.WithID("dummy"))
	if err != nil {
		t.Fatalf("survey.New: %v", err)
	}
	return s
}

func TestNewSubmission(t *testing.T) {
	s := dummySurvey(t)

	tests := []struct {
		responses []int
		wantScore float64
		wantBand  string
	}{
		{[]int{0, 0, 0}, 6, "low"},
		{[]int{1, 0, 1}, 8, "medium"},
		{[]int{1, 1, 1}, 9, "high"},
	}
	for _, tc := range tests {
		sub, err := respondent.NewSubmission(respondent.Respondent{Name: "Ada"}, s, tc.responses)
		if err != nil {
			t.Fatalf("NewSubmission(%v): %v", tc.responses, err)
		}
		if sub.Score != tc.wantScore {
			t.Errorf("Score(%v) = %v, want %v", tc.responses, sub.Score, tc.wantScore)
		}
		band, err := sub.Band()
		if err != nil {
			t.Fatalf("Band: %v", err)
		}
		if band.Msg != tc.wantBand {
			t.Errorf("Band(%v) = %q, want %q", tc.responses, band.Msg, tc.wantBand)
		}
		if sub.ID == "" {
			t.Error("expected a generated submission ID")
		}
	}
}

func TestNewSubmissionIndexOutOfRange(t *testing.T) {
	s := dummySurvey(t)
	for _, responses := range [][]int{{0, 2, 0}, {-1, 0, 0}} {
		_, err := respondent.NewSubmission(respondent.Respondent{}, s, responses)
		var idx *respondent.IndexOutOfRangeError
		if !errors.As(err, &idx) {
			t.Fatalf("NewSubmission(%v): expected IndexOutOfRangeError, got %v", responses, err)
		}
		if idx.Count != 2 {
			t.Errorf("Count = %d, want 2", idx.Count)
		}
	}
}

func TestNewSubmissionAnswerCount(t *testing.T) {
	s := dummySurvey(t)
	_, err := respondent.NewSubmission(respondent.Respondent{}, s, []int{0, 1})
	var count *respondent.AnswerCountError
	if !errors.As(err, &count) {
		t.Fatalf("expected AnswerCountError, got %v", err)
	}
	if count.Got != 2 || count.Want != 3 {
		t.Errorf("AnswerCountError = %+v, want Got 2 Want 3", count)
	}
}

func TestSubmissionFileRoundTrip(t *testing.T) {
	s := dummySurvey(t)
	age := 42
	sub, err := respondent.NewSubmission(respondent.Respondent{Name: "Ada", Age: &age, Email: "ada@example.com"}, s, []int{1, 0, 1})
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}

	path := filepath.Join(t.TempDir(), "answers", sub.ID+".json")
	if err := respondent.SaveFile(path, sub); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := respondent.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got.ID != sub.ID {
		t.Errorf("ID = %q, want %q", got.ID, sub.ID)
	}
	if got.Score != sub.Score {
		t.Errorf("Score = %v, want %v", got.Score, sub.Score)
	}
	if got.Respondent.Name != "Ada" || got.Respondent.Age == nil || *got.Respondent.Age != 42 {
		t.Errorf("Respondent = %+v", got.Respondent)
	}
	if got.Survey.ID() != "dummy" {
		t.Errorf("Survey.ID = %q, want dummy", got.Survey.ID())
	}
	if !got.SubmittedAt.Equal(sub.SubmittedAt) {
		t.Errorf("SubmittedAt = %v, want %v", got.SubmittedAt, sub.SubmittedAt)
	}
}

func TestUnmarshalRejectsBadIndex(t *testing.T) {
	s := dummySurvey(t)
	sub, err := respondent.NewSubmission(respondent.Respondent{}, s, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}
	sub.Responses[1] = 7

	data, err := respondent.Marshal(sub)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, err = respondent.Unmarshal(data)
	var idx *respondent.IndexOutOfRangeError
	if !errors.As(err, &idx) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", err)
	}
}

func TestSaveFileRejectsExtension(t *testing.T) {
	s := dummySurvey(t)
	sub, err := respondent.NewSubmission(respondent.Respondent{}, s, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}
	if err := respondent.SaveFile(filepath.Join(t.TempDir(), "answers.yaml"), sub); err == nil {
		t.Error("expected error for non-json path")
	}
}
