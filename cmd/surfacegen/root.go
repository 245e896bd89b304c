package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ErrUsage indicates a flag value the command cannot act on.
var ErrUsage = errors.New("surfacegen: bad usage")

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "surfacegen",
		Short: "Rotated surface-code circuit and dataset generator",
		Long: `surfacegen lays out rotated surface codes, assembles their
memory-experiment circuits in the stim text format and drives stim to
produce sampled datasets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), ro.logLevel, ro.logFormat)
			if err != nil {
				return err
			}
			ro.logger = logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(
		newCircuitCmd(),
		newLatticeCmd(),
		newInspectCmd(),
		newDatasetCmd(ro),
		newRecodeCmd(),
		newSweepCmd(),
	)
	return cmd
}

// newLogger builds the slog handler selected by --log-level and --log-format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", level, ErrUsage)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format %q: %w", format, ErrUsage)
	}
}

// openOutput returns w for an empty path or "-", otherwise a created file.
func openOutput(w io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// openInput mirrors openOutput for reading.
func openInput(r io.Reader, path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return r, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
