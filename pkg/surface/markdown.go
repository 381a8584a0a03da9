package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/surveyscope/surveyscope/pkg/scoring"
)

// MarkdownRenderer writes an Outcome as a Markdown report, suitable for
// pasting into an issue or a chat message.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *scoring.Outcome) error {
	_, err := io.WriteString(w, BuildMarkdownSummary(result))
	return err
}

// BuildMarkdownSummary renders the outcome header, band table and answers.
func BuildMarkdownSummary(result *scoring.Outcome) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s %s: %s\n\n", positionIcon(result.Position), titleOr(result.SurveyTitle), result.Band.Msg))

	sb.WriteString("| Score | Band | Achievable |\n|-------|------|------------|\n")
	sb.WriteString(fmt.Sprintf("| %s | %s %s | %s |\n\n",
		formatScore(result.TotalScore), result.Band.Msg, result.Band, result.Span))

	if result.Respondent != "" {
		sb.WriteString(fmt.Sprintf("Respondent: **%s**\n\n", result.Respondent))
	}

	if len(result.Breakdown) > 0 {
		sb.WriteString("### Answers\n\n")
		for _, a := range result.Breakdown {
			sb.WriteString(fmt.Sprintf("- %s **%s** (%s)\n", a.Question, a.Response, formatScore(a.Score)))
		}
	}

	return sb.String()
}

func titleOr(title string) string {
	if title == "" {
		return "Survey result"
	}
	return title
}

func positionIcon(p scoring.Position) string {
	switch p {
	case scoring.PositionLowest:
		return ":yellow_circle:"
	case scoring.PositionMiddle:
		return ":large_blue_circle:"
	case scoring.PositionHighest:
		return ":green_circle:"
	default:
		return ":white_circle:"
	}
}
