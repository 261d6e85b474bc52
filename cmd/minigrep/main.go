// Package main implements the minigrep command.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/minigrep/internal/config"
	"github.com/taigrr/minigrep/internal/render"
	"github.com/taigrr/minigrep/internal/runner"
	"github.com/taigrr/minigrep/internal/source"
)

type options struct {
	format  string
	verbose bool
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "minigrep <query> <file>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep prints every line of a file that contains the query,
prefixed with its line number.

Set the IGNORE_CASE environment variable (to any value) for
case-insensitive matching.`,
		Example: `minigrep duct poem.txt
IGNORE_CASE=1 minigrep rust poem.txt`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "o", render.FormatText, "output format: text, json or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

func runSearch(cmd *cobra.Command, opts *options, args []string) error {
	argv := append([]string{os.Args[0]}, args...)
	cfg, err := config.Build(argv)
	if err != nil {
		return err
	}

	sink, err := render.New(opts.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	r := runner.New(source.New(), sink, newLogger(cmd, opts))
	if err := r.Run(cmd.Context(), cfg); err != nil {
		return fmt.Errorf("application error: %w", err)
	}

	return nil
}

func newLogger(cmd *cobra.Command, opts *options) *slog.Logger {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
