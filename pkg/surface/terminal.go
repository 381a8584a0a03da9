package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/surveyscope/surveyscope/pkg/scoring"
	"github.com/surveyscope/surveyscope/pkg/survey"
)

// TerminalRenderer renders an Outcome as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// positionColor colors the band by where it sits among the bands. Bands
// carry no notion of good or bad, only of low and high.
func positionColor(p scoring.Position) string {
	if noColor() {
		return ""
	}
	switch p {
	case scoring.PositionLowest:
		return colorYellow
	case scoring.PositionMiddle:
		return colorCyan
	case scoring.PositionHighest:
		return colorGreen
	default:
		return colorBold
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.Outcome) error {
	pc := positionColor(result.Position)

	// Header
	fmt.Fprintf(w, "%s\n\n", bold(fmt.Sprintf("Your result: %s", colored(result.Band.Msg, pc))))

	if result.SurveyTitle != "" {
		fmt.Fprintf(w, "Survey: %s\n", result.SurveyTitle)
	}
	fmt.Fprintf(w, "Score: %s (achievable %s, band %d of %d %s)\n\n",
		formatScore(result.TotalScore), result.Span, result.BandIndex+1, result.BandCount, result.Band)

	if len(result.Breakdown) == 0 {
		fmt.Fprintln(w, "No answers.")
		fmt.Fprintln(w)
		return nil
	}

	fmt.Fprintln(w, "Answers:")
	for i, a := range result.Breakdown {
		fmt.Fprintf(w, "  %d. %s\n", i+1, a.Question)
		fmt.Fprintf(w, "     %s %s\n", a.Response,
			dim(fmt.Sprintf("(%s of %s..%s)", formatScore(a.Score), formatScore(a.MinScore), formatScore(a.MaxScore))))
	}
	fmt.Fprintln(w)

	return nil
}

func formatScore(v float64) string {
	return survey.FormatNumber(v)
}
