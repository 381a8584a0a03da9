package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

func loadQuiz(t *testing.T) *survey.Survey {
	t.Helper()
	s, err := survey.LoadFile("../../testdata/quiz_01.json")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	return s
}

func TestRunOneBased(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("1\n2\n"), Out: &out, OneBased: true, Sep: "-"}

	got, err := p.Run(context.Background(), loadQuiz(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Run = %v, want [0 1]", got)
	}

	for _, want := range []string{
		"1 - How are you doing?\n",
		"1 - Good\n",
		"3 - Bad\n",
		"2 - Have you slept more than 7 hours?\n",
		"> ",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunZeroBased(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("2\n0\n"), Out: &out, Sep: ")"}

	got, err := p.Run(context.Background(), loadQuiz(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got[0] != 2 || got[1] != 0 {
		t.Errorf("Run = %v, want [2 0]", got)
	}
	if !strings.Contains(out.String(), "0 ) How are you doing?\n") {
		t.Errorf("expected zero-based question line:\n%s", out.String())
	}
}

func TestRunRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("four\n0\n4\n 3 \n1\n"), Out: &out, OneBased: true, Sep: "-"}

	got, err := p.Run(context.Background(), loadQuiz(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got[0] != 2 || got[1] != 0 {
		t.Errorf("Run = %v, want [2 0]", got)
	}
	if n := strings.Count(out.String(), "How are you doing?"); n != 4 {
		t.Errorf("first question shown %d times, want 4", n)
	}
}

func TestRunEOF(t *testing.T) {
	p := &Prompter{In: strings.NewReader("1\n"), Out: io.Discard, OneBased: true, Sep: "-"}
	_, err := p.Run(context.Background(), loadQuiz(t))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &Prompter{In: strings.NewReader("1\n1\n"), Out: io.Discard, OneBased: true, Sep: "-"}
	if _, err := p.Run(ctx, loadQuiz(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		base    int
		want    int
		wantErr bool
	}{
		{"1", 1, 0, false},
		{"3", 1, 2, false},
		{"0", 1, 0, true},
		{"4", 1, 0, true},
		{"0", 0, 0, false},
		{"2", 0, 2, false},
		{"3", 0, 0, true},
		{"-1", 0, 0, true},
		{"1.0", 1, 0, true},
		{"", 1, 0, true},
	}
	for _, tc := range tests {
		got, err := parseChoice(tc.input, tc.base, 3)
		if tc.wantErr {
			var perr *ParsingError
			if !errors.As(err, &perr) {
				t.Errorf("parseChoice(%q, %d): expected ParsingError, got %v", tc.input, tc.base, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseChoice(%q, %d): %v", tc.input, tc.base, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseChoice(%q, %d) = %d, want %d", tc.input, tc.base, got, tc.want)
		}
	}
}
