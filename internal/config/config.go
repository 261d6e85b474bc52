// Package config builds the run configuration from command-line arguments.
package config

import (
	"errors"
	"os"

	"github.com/taigrr/minigrep/internal/types"
)

// IgnoreCaseEnv is the environment variable that enables case-insensitive
// matching when present, whatever its value.
const IgnoreCaseEnv = "IGNORE_CASE"

// ErrInsufficientArguments is returned when fewer than three arguments are given.
var ErrInsufficientArguments = errors.New("Too few arguments provided.")

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Build creates a Config from argv-style arguments: program name, query,
// file path. The query and path are not validated.
func Build(args []string) (types.Config, error) {
	return BuildWithLookup(args, os.LookupEnv)
}

// BuildWithLookup is Build with an explicit environment lookup.
func BuildWithLookup(args []string, lookup LookupFunc) (types.Config, error) {
	if len(args) < 3 {
		return types.Config{}, ErrInsufficientArguments
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	_, ignoreCase := lookup(IgnoreCaseEnv)

	return types.Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}
