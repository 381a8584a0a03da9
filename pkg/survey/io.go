package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a survey document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// jsonIndent is the indentation of every JSON document written to disk.
const jsonIndent = "    "

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("expected a .json, .yaml or .yml file, got %q", path)
}

// Decode parses and validates a survey document.
func Decode(data []byte, format Format) (*Survey, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("unmarshaling survey: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshaling survey: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported survey format %q", format)
	}
	return doc.Build()
}

// Encode serializes s. JSON output is indented with four spaces.
func Encode(s *Survey, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalIndent(s.Document())
	case FormatYAML:
		return yaml.Marshal(s.Document())
	}
	return nil, fmt.Errorf("unsupported survey format %q", format)
}

// MarshalIndent encodes v as JSON with the indentation used on disk.
func MarshalIndent(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// LoadFile reads and validates a survey from disk. When the document has
// no id, the file name without extension is used.
func LoadFile(path string) (*Survey, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading survey: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading survey %s: %w", path, err)
	}
	if s.id == "" {
		if stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)); ValidateID(stem) == nil {
			s.id = stem
		}
	}
	return s, nil
}

// SaveFile writes s to path, creating parent directories.
func SaveFile(path string, s *Survey) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(s, format)
	if err != nil {
		return fmt.Errorf("marshaling survey: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for survey: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing survey: %w", err)
	}
	return nil
}
