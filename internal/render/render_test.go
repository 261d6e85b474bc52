package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/minigrep/internal/types"
	"gopkg.in/yaml.v3"
)

var sample = []types.Match{
	{LineNumber: 2, LineText: "safe, fast, productive."},
	{LineNumber: 4, LineText: "Duct tape."},
}

func writeAll(t *testing.T, format string, matches []types.Match) string {
	t.Helper()
	var buf bytes.Buffer
	sink, err := New(format, &buf)
	require.NoError(t, err)
	for _, m := range matches {
		require.NoError(t, sink.Write(m))
	}
	require.NoError(t, sink.Flush())
	return buf.String()
}

func TestText(t *testing.T) {
	out := writeAll(t, FormatText, sample)
	assert.Equal(t, "L2: safe, fast, productive.\nL4: Duct tape.\n", out)
}

func TestText_DefaultFormat(t *testing.T) {
	out := writeAll(t, "", sample[:1])
	assert.Equal(t, "L2: safe, fast, productive.\n", out)
}

func TestJSON(t *testing.T) {
	out := writeAll(t, "JSON", sample)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var got types.Match
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, sample[1], got)
	assert.Contains(t, lines[0], `"line":2`)
}

func TestYAML(t *testing.T) {
	out := writeAll(t, FormatYAML, sample)

	var got []types.Match
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, sample, got)
}

func TestYAML_Empty(t *testing.T) {
	out := writeAll(t, FormatYAML, nil)
	assert.Equal(t, "[]\n", out)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
	assert.Contains(t, err.Error(), "text, json, yaml")
}

func TestLine(t *testing.T) {
	assert.Equal(t, "L1: Rust:", Line(types.Match{LineNumber: 1, LineText: "Rust:"}))
	assert.Equal(t, "L7: ", Line(types.Match{LineNumber: 7}))
}
