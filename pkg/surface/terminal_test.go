package surface_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/surveyscope/surveyscope/pkg/scoring"
	"github.com/surveyscope/surveyscope/pkg/surface"
	"github.com/surveyscope/surveyscope/pkg/survey"
)

func sampleResult() *scoring.Outcome {
	return &scoring.Outcome{
		SubmissionID: "3f1c",
		SurveyID:     "quiz_01",
		SurveyTitle:  "Sleep and mood",
		Respondent:   "Ada",
		TotalScore:   6,
		Band:         survey.NewOpenRange("Medium healthy", 4, 8),
		BandIndex:    1,
		BandCount:    3,
		Position:     scoring.PositionMiddle,
		Span:         survey.NewOpenRange("", 2, 11),
		Breakdown: []scoring.AnswerResult{
			{Question: "How are you doing?", ResponseIndex: 0, Response: "Good", Score: 5, MinScore: 1, MaxScore: 5},
			{Question: "Have you slept more than 7 hours?", ResponseIndex: 1, Response: "No", Score: 1, MinScore: 1, MaxScore: 5},
		},
	}
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	// Set NO_COLOR to avoid ANSI codes in test comparison
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Your result: Medium healthy",
		"Survey: Sleep and mood",
		"Score: 6 (achievable [2, 11), band 2 of 3 [4, 8))",
		"1. How are you doing?",
		"Good (5 of 1..5)",
		"2. Have you slept more than 7 hours?",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestTerminalRenderer_NoAnswers(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := sampleResult()
	result.Breakdown = nil

	var buf bytes.Buffer
	if err := (&surface.TerminalRenderer{}).Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No answers") {
		t.Error("expected 'No answers' message")
	}
}

func TestTerminalRenderer_ColorRespected(t *testing.T) {
	// Without NO_COLOR, output should have ANSI codes
	os.Unsetenv("NO_COLOR")

	var buf bytes.Buffer
	if err := (&surface.TerminalRenderer{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("expected ANSI escape codes when NO_COLOR is not set")
	}
}

func TestJSONRenderer(t *testing.T) {
	result := sampleResult()
	result.Band = survey.NewOpenRange("Open top", 4, math.Inf(1))

	var buf bytes.Buffer
	if err := (&surface.JSONRenderer{}).Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	band, ok := decoded["band"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected band object, got %v", decoded["band"])
	}
	if band["higher"] != "inf" {
		t.Errorf("expected infinite band bound encoded as inf, got %v", band["higher"])
	}
	if decoded["total_score"] != 6.0 {
		t.Errorf("expected total_score 6, got %v", decoded["total_score"])
	}
	if !strings.Contains(buf.String(), "\n    \"submission_id\"") {
		t.Errorf("expected four-space indentation:\n%s", buf.String())
	}
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&surface.MarkdownRenderer{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	output := buf.String()
	for _, want := range []string{
		"## :large_blue_circle: Sleep and mood: Medium healthy",
		"| 6 | Medium healthy [4, 8) | [2, 11) |",
		"Respondent: **Ada**",
		"- How are you doing? **Good** (5)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    interface{}
		wantErr bool
	}{
		{"", &surface.TerminalRenderer{}, false},
		{"text", &surface.TerminalRenderer{}, false},
		{"json", &surface.JSONRenderer{}, false},
		{"markdown", &surface.MarkdownRenderer{}, false},
		{"xml", nil, true},
	}
	for _, tc := range tests {
		r, err := surface.ForFormat(tc.format)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q): expected error", tc.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFormat(%q): %v", tc.format, err)
			continue
		}
		switch tc.want.(type) {
		case *surface.TerminalRenderer:
			_, ok := r.(*surface.TerminalRenderer)
			if !ok {
				t.Errorf("ForFormat(%q) = %T", tc.format, r)
			}
		case *surface.JSONRenderer:
			if _, ok := r.(*surface.JSONRenderer); !ok {
				t.Errorf("ForFormat(%q) = %T", tc.format, r)
			}
		case *surface.MarkdownRenderer:
			if _, ok := r.(*surface.MarkdownRenderer); !ok {
				t.Errorf("ForFormat(%q) = %T", tc.format, r)
			}
		}
	}
}

func TestRenderSurveySummary(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	s, err := survey.LoadFile("../../testdata/quiz_01.json")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	var buf bytes.Buffer
	surface.RenderSurveySummary(&buf, s)
	output := buf.String()
	for _, want := range []string{
		"Sleep and mood",
		"Questions: 2",
		"1. How are you doing? (3 responses, 1..5)",
		"Achievable scores: [2, 11)",
		"Unhealthy",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}
