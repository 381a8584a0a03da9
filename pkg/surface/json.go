package surface

import (
	"encoding/json"
	"io"

	"github.com/surveyscope/surveyscope/pkg/scoring"
)

// JSONRenderer marshals an Outcome to JSON indented with four spaces.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(result)
}
