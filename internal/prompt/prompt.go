// Package prompt runs a survey interactively: it shows each question with
// its numbered responses and reads the respondent's choice.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

// ParsingError reports input that is not one of the offered indices.
// The prompter recovers from it by asking again.
type ParsingError struct {
	Input    string
	Min, Max int // accepted indices, inclusive
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("invalid choice %q, want a number from %d to %d", e.Input, e.Min, e.Max)
}

// Prompter asks questions on Out and reads answers from In.
type Prompter struct {
	In       io.Reader
	Out      io.Writer
	OneBased bool   // number choices from 1 instead of 0
	Sep      string // printed between index and message
	Logger   *slog.Logger
}

// Run asks every question of s in order and returns the chosen response
// indices, always 0-based. It fails if input ends before the last answer.
func (p *Prompter) Run(ctx context.Context, s *survey.Survey) ([]int, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	scanner := bufio.NewScanner(p.In)
	base := p.base()

	choices := make([]int, 0, s.NumQuestions())
	for i, q := range s.Questions() {
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			p.display(i, q)
			fmt.Fprint(p.Out, "> ")

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("reading answer to question %d: %w", i+base, err)
				}
				return nil, fmt.Errorf("reading answer to question %d: %w", i+base, io.ErrUnexpectedEOF)
			}

			idx, err := parseChoice(scanner.Text(), base, len(q.Responses))
			var perr *ParsingError
			if errors.As(err, &perr) {
				logger.Debug("re-prompting", "question", i+base, "input", perr.Input)
				continue
			}
			choices = append(choices, idx)
			break
		}
	}
	return choices, nil
}

func (p *Prompter) base() int {
	if p.OneBased {
		return 1
	}
	return 0
}

func (p *Prompter) display(i int, q survey.Question) {
	base := p.base()
	fmt.Fprintln(p.Out, i+base, p.Sep, q.Label())
	for j, r := range q.Responses {
		fmt.Fprintln(p.Out, j+base, p.Sep, r.Label())
	}
}

// parseChoice converts a displayed index into a 0-based response index.
func parseChoice(input string, base, count int) (int, error) {
	trimmed := strings.TrimSpace(input)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < base || n >= count+base {
		return 0, &ParsingError{Input: trimmed, Min: base, Max: count + base - 1}
	}
	return n - base, nil
}
