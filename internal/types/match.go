// Package types defines the data structures shared across minigrep.
package types

type (
	// Config holds the parameters of a single search run.
	Config struct {
		Query      string `json:"query"`
		FilePath   string `json:"filePath"`
		IgnoreCase bool   `json:"ignoreCase"`
	}

	// Match is a line that contains the query. LineText shares storage with
	// the text that was searched.
	Match struct {
		LineNumber int    `json:"line" yaml:"line"`
		LineText   string `json:"text" yaml:"text"`
	}
)
