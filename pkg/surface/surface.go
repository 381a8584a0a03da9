// Package surface defines output rendering for surveyscope outcomes.
// Implementations handle different output targets: terminal, Markdown, JSON.
package surface

import (
	"fmt"
	"io"

	"github.com/surveyscope/surveyscope/pkg/scoring"
)

// Renderer produces formatted output from an Outcome.
type Renderer interface {
	// Render writes the formatted outcome to the writer.
	Render(w io.Writer, result *scoring.Outcome) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
}
