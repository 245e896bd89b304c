// Package stimcli drives the external stim executable for the two jobs the
// dataset generator cannot do itself: sampling a circuit and converting
// measurements into detection events and observable flips.
package stimcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/surfacecode/shotfmt"
)

// DefaultBinary is used when Runner.Binary is empty.
const DefaultBinary = "stim"

var (
	// ErrStimFailed indicates the stim process could not start or exited non-zero.
	ErrStimFailed = errors.New("stimcli: stim failed")
	// ErrTimeout indicates the stim process outlived Runner.Timeout.
	ErrTimeout = errors.New("stimcli: stim timed out")
)

// Runner invokes stim subcommands. The zero value runs "stim" from PATH
// with no timeout and logs to slog.Default().
type Runner struct {
	Binary  string
	Timeout time.Duration // zero means no limit beyond ctx
	Logger  *slog.Logger
}

// ConvertRequest describes one "stim m2d" invocation.
type ConvertRequest struct {
	CircuitPath      string
	MeasurementsPath string
	Format           shotfmt.Format // measurements, sweep and detection events
	SweepPath        string         // optional
	DetectionsPath   string
	ObservablesPath  string // written in 01 format; optional
}

// Sample writes shots samples of the circuit at circuitPath to outPath.
func (r *Runner) Sample(ctx context.Context, circuitPath string, shots int, format shotfmt.Format, outPath string) error {
	if err := format.Validate(); err != nil {
		return fmt.Errorf("Sample: %w", err)
	}
	args := []string{
		"sample",
		"--shots", strconv.Itoa(shots),
		"--out_format", format.String(),
		"--in", circuitPath,
		"--out", outPath,
	}
	return r.run(ctx, args)
}

// Convert turns measurements into detection events (and observable flips)
// using the circuit at req.CircuitPath as reference.
func (r *Runner) Convert(ctx context.Context, req ConvertRequest) error {
	if err := req.Format.Validate(); err != nil {
		return fmt.Errorf("Convert: %w", err)
	}
	f := req.Format.String()
	args := []string{
		"m2d",
		"--circuit", req.CircuitPath,
		"--in", req.MeasurementsPath,
		"--in_format", f,
		"--out", req.DetectionsPath,
		"--out_format", f,
	}
	if req.SweepPath != "" {
		args = append(args, "--sweep", req.SweepPath, "--sweep_format", f)
	}
	if req.ObservablesPath != "" {
		args = append(args, "--obs_out", req.ObservablesPath, "--obs_out_format", shotfmt.Bits01.String())
	}
	return r.run(ctx, args)
}

func (r *Runner) run(ctx context.Context, args []string) error {
	bin := r.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}

	runCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	log.Debug("running stim", "binary", bin, "args", strings.Join(args, " "))
	err := cmd.Run()
	elapsed := time.Since(start)

	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("stim %s after %s: %w", args[0], r.Timeout, ErrTimeout)
	case err != nil:
		msg := strings.TrimSpace(stderr.String())
		log.Error("stim failed", "subcommand", args[0], "err", err, "stderr", msg)
		return fmt.Errorf("stim %s: %w: %v: %s", args[0], ErrStimFailed, err, msg)
	}
	log.Info("stim finished", "subcommand", args[0], "elapsed", elapsed)
	return nil
}
