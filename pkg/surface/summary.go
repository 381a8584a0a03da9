package surface

import (
	"fmt"
	"io"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

// RenderSurveySummary lists a validated survey's questions, achievable
// span and bands.
func RenderSurveySummary(w io.Writer, s *survey.Survey) {
	if s.Title() != "" {
		fmt.Fprintf(w, "%s\n", bold(s.Title()))
	}
	fmt.Fprintf(w, "Questions: %d\n", s.NumQuestions())
	for i, q := range s.Questions() {
		span := q.Span()
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, q.Msg,
			dim(fmt.Sprintf("(%d responses, %s..%s)", len(q.Responses), formatScore(span.Lower), formatScore(span.Higher))))
	}
	fmt.Fprintf(w, "Achievable scores: %s\n", s.Span())
	fmt.Fprintln(w, "Bands:")
	for _, r := range s.Ranges() {
		fmt.Fprintf(w, "  %-16s %s\n", r.String(), r.Msg)
	}
}
