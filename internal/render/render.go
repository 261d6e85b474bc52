// Package render writes search matches to an output stream.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/taigrr/minigrep/internal/types"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted values for New.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Sink receives matches in order. Flush is called once after the last match.
type Sink interface {
	Write(m types.Match) error
	Flush() error
}

// New returns a Sink writing to w in the given format. An empty format means text.
func New(format string, w io.Writer) (Sink, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return &textSink{w: w}, nil
	case FormatJSON:
		return &jsonSink{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		return &yamlSink{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(Formats, ", "))
	}
}

// Line formats a match the way the text sink prints it.
func Line(m types.Match) string {
	return fmt.Sprintf("L%d: %s", m.LineNumber, m.LineText)
}

type textSink struct {
	w io.Writer
}

func (s *textSink) Write(m types.Match) error {
	_, err := fmt.Fprintln(s.w, Line(m))
	return err
}

func (s *textSink) Flush() error { return nil }

// jsonSink writes one JSON object per line.
type jsonSink struct {
	enc *json.Encoder
}

func (s *jsonSink) Write(m types.Match) error {
	return s.enc.Encode(m)
}

func (s *jsonSink) Flush() error { return nil }

// yamlSink buffers matches and writes a single sequence document on Flush.
type yamlSink struct {
	w       io.Writer
	matches []types.Match
}

func (s *yamlSink) Write(m types.Match) error {
	s.matches = append(s.matches, m)
	return nil
}

func (s *yamlSink) Flush() error {
	matches := s.matches
	if matches == nil {
		matches = []types.Match{}
	}

	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(matches); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
