// Package search finds the lines of a text that contain a query.
package search

import (
	"strings"

	"github.com/taigrr/minigrep/internal/types"
)

// Search returns every line of text that contains query, in file order.
// With ignoreCase set, both sides are lowercased for the comparison only;
// the returned LineText is always the original line. An empty query
// matches every line.
func Search(query, text string, ignoreCase bool) []types.Match {
	var matches []types.Match

	needle := query
	if ignoreCase {
		needle = strings.ToLower(query)
	}

	for i, line := range Lines(text) {
		haystack := line
		if ignoreCase {
			haystack = strings.ToLower(line)
		}
		if strings.Contains(haystack, needle) {
			matches = append(matches, types.Match{
				LineNumber: i + 1,
				LineText:   line,
			})
		}
	}

	return matches
}

// Lines splits text on newlines. A trailing newline does not produce an
// empty final line, and a trailing carriage return is dropped from each line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
