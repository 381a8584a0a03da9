package survey

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a survey. Decoding a document does
// not validate it; Build does.
type Document struct {
	ID        string      `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string      `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question  `json:"questions" yaml:"questions"`
	Ranges    []OpenRange `json:"ranges" yaml:"ranges"`
}

// Build validates the document and returns the survey.
func (d Document) Build() (*Survey, error) {
	return New(d.Questions, d.Ranges, WithID(d.ID), WithTitle(d.Title))
}

// Document returns the serializable form of s, with ranges in sorted order.
func (s *Survey) Document() Document {
	return Document{
		ID:        s.id,
		Title:     s.title,
		Questions: s.Questions(),
		Ranges:    s.Ranges(),
	}
}

func (s *Survey) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Document())
}

// UnmarshalJSON decodes and validates a survey document.
func (s *Survey) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	built, err := doc.Build()
	if err != nil {
		return err
	}
	*s = *built
	return nil
}

func (s *Survey) MarshalYAML() (interface{}, error) {
	return s.Document(), nil
}

// number is a float64 whose JSON form spells infinities as "inf"/"-inf".
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return nil, fmt.Errorf("cannot encode NaN")
	case math.IsInf(f, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(f)
}

func (n *number) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, ok := parseInfinity(s)
		if !ok {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

func parseInfinity(s string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(1), true
	case "-inf", "-infinity":
		return math.Inf(-1), true
	}
	return 0, false
}

type jsonRange struct {
	Msg    string  `json:"msg"`
	Lower  *number `json:"lower"`
	Higher *number `json:"higher"`
}

func (r OpenRange) MarshalJSON() ([]byte, error) {
	lower, higher := number(r.Lower), number(r.Higher)
	return json.Marshal(jsonRange{Msg: r.Msg, Lower: &lower, Higher: &higher})
}

func (r *OpenRange) UnmarshalJSON(data []byte) error {
	var raw jsonRange
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Lower == nil || raw.Higher == nil {
		return fmt.Errorf("range %q: lower and higher are required", raw.Msg)
	}
	*r = OpenRange{Msg: raw.Msg, Lower: float64(*raw.Lower), Higher: float64(*raw.Higher)}
	return nil
}

type jsonResponse struct {
	Msg   string  `json:"msg"`
	Score *number `json:"score"`
}

func (r Response) MarshalJSON() ([]byte, error) {
	score := number(r.Score)
	return json.Marshal(jsonResponse{Msg: r.Msg, Score: &score})
}

func (r *Response) UnmarshalJSON(data []byte) error {
	var raw jsonResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Score == nil {
		return fmt.Errorf("response %q: score is required", raw.Msg)
	}
	*r = Response{Msg: raw.Msg, Score: float64(*raw.Score)}
	return nil
}

type yamlRange struct {
	Msg    string   `yaml:"msg"`
	Lower  *float64 `yaml:"lower"`
	Higher *float64 `yaml:"higher"`
}

func (r *OpenRange) UnmarshalYAML(value *yaml.Node) error {
	var raw yamlRange
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Lower == nil || raw.Higher == nil {
		return fmt.Errorf("range %q: lower and higher are required", raw.Msg)
	}
	*r = OpenRange{Msg: raw.Msg, Lower: *raw.Lower, Higher: *raw.Higher}
	return nil
}

type yamlResponse struct {
	Msg   string   `yaml:"msg"`
	Score *float64 `yaml:"score"`
}

func (r *Response) UnmarshalYAML(value *yaml.Node) error {
	var raw yamlResponse
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Score == nil {
		return fmt.Errorf("response %q: score is required", raw.Msg)
	}
	*r = Response{Msg: raw.Msg, Score: *raw.Score}
	return nil
}
