package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/minigrep/internal/render"
	"github.com/taigrr/minigrep/internal/runner"
	"github.com/taigrr/minigrep/internal/source"
	"github.com/taigrr/minigrep/internal/types"
)

type (
	// SearchInput contains parameters for searching a file.
	SearchInput struct {
		Query      string `json:"query" jsonschema:"Substring to look for; empty matches every line"`
		Path       string `json:"path" jsonschema:"Path of the file to search"`
		IgnoreCase bool   `json:"ignoreCase,omitempty" jsonschema:"Ignore letter case when matching (default: false)"`
	}

	// SearchOutput contains the matching lines of a file.
	SearchOutput struct {
		Matches []types.Match `json:"matches"`
		Total   int           `json:"total"`
	}
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server exposing the search tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := newServer(newLogger(cmd, opts))
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}

func newServer(logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "minigrep",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Return every line of a file that contains the query, with 1-based line numbers. Plain substring match, optionally case-insensitive.",
	}, searchHandler(logger))

	return server
}

func searchHandler(logger *slog.Logger) mcp.ToolHandlerFor[SearchInput, SearchOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		sink := &collectSink{}
		cfg := types.Config{
			Query:      input.Query,
			FilePath:   input.Path,
			IgnoreCase: input.IgnoreCase,
		}

		if err := runner.New(source.New(), sink, logger).Run(ctx, cfg); err != nil {
			return &mcp.CallToolResult{IsError: true}, SearchOutput{}, err
		}

		return nil, SearchOutput{Matches: sink.matches, Total: len(sink.matches)}, nil
	}
}

// collectSink keeps matches in memory for the tool response.
type collectSink struct {
	matches []types.Match
}

var _ render.Sink = (*collectSink)(nil)

func (s *collectSink) Write(m types.Match) error {
	s.matches = append(s.matches, m)
	return nil
}

func (s *collectSink) Flush() error {
	if s.matches == nil {
		s.matches = []types.Match{}
	}
	return nil
}
