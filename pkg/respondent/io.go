package respondent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

// Marshal encodes a submission the way it is stored on disk and in blob
// storage.
func Marshal(sub *Submission) ([]byte, error) {
	return survey.MarshalIndent(sub)
}

// Unmarshal decodes and re-validates a stored submission.
func Unmarshal(data []byte) (*Submission, error) {
	var sub Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("unmarshaling submission: %w", err)
	}
	return &sub, nil
}

// SaveFile writes a submission to a .json path, creating parent directories.
func SaveFile(path string, sub *Submission) error {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return fmt.Errorf("expected a .json file, got %q", path)
	}
	data, err := Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshaling submission: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for submission: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing submission: %w", err)
	}
	return nil
}

// LoadFile reads a submission written by SaveFile.
func LoadFile(path string) (*Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading submission: %w", err)
	}
	return Unmarshal(data)
}
