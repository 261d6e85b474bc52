// Package runner ties configuration, file reading, search and output together.
package runner

import (
	"context"
	"log/slog"

	"github.com/taigrr/minigrep/internal/render"
	"github.com/taigrr/minigrep/internal/search"
	"github.com/taigrr/minigrep/internal/types"
)

// Reader loads the text of a file.
type Reader interface {
	Read(path string) (string, error)
}

// Runner executes a single search run.
type Runner struct {
	reader Reader
	sink   render.Sink
	logger *slog.Logger
}

// New creates a Runner. A nil logger discards log output.
func New(reader Reader, sink render.Sink, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		reader: reader,
		sink:   sink,
		logger: logger,
	}
}

// Run reads cfg.FilePath and writes every matching line to the sink.
// Read errors are returned as-is and no search is performed.
func (r *Runner) Run(ctx context.Context, cfg types.Config) error {
	r.logger.DebugContext(ctx, "reading file", "path", cfg.FilePath)

	text, err := r.reader.Read(cfg.FilePath)
	if err != nil {
		r.logger.DebugContext(ctx, "read failed", "path", cfg.FilePath, "error", err)
		return err
	}

	return r.RunText(ctx, cfg, text)
}

// RunText searches text that was already loaded and writes the matches to the sink.
func (r *Runner) RunText(ctx context.Context, cfg types.Config, text string) error {
	matches := search.Search(cfg.Query, text, cfg.IgnoreCase)
	r.logger.DebugContext(ctx, "search complete",
		"query", cfg.Query,
		"ignoreCase", cfg.IgnoreCase,
		"bytes", len(text),
		"matches", len(matches),
	)

	for _, m := range matches {
		if err := r.sink.Write(m); err != nil {
			return err
		}
	}

	return r.sink.Flush()
}
