package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/surfacecode/lattice"
	"github.com/katalvlaran/surfacecode/noise"
	"github.com/katalvlaran/surfacecode/shotfmt"
	"github.com/katalvlaran/surfacecode/surface"
)

var (
	// ErrInvalidJob indicates a job parameter outside its valid range.
	ErrInvalidJob = errors.New("dataset: invalid job")
	// ErrInvalidOptions indicates inconsistent generator options.
	ErrInvalidOptions = errors.New("dataset: invalid options")
)

// Fixed file names inside a job directory.
const (
	FileIdealCircuit = "circuit_ideal.stim"
	FileNoisyCircuit = "circuit_noisy.stim"
	FileObservables  = "obs_flips_actual.01"
	FileManifest     = "manifest.yaml"
)

// MeasurementsFile returns "measurements.{f}".
func MeasurementsFile(f shotfmt.Format) string { return "measurements." + f.String() }

// DetectionEventsFile returns "detection_events.{f}".
func DetectionEventsFile(f shotfmt.Format) string { return "detection_events." + f.String() }

// SweepFile returns "sweep.{f}".
func SweepFile(f shotfmt.Format) string { return "sweep." + f.String() }

// Job is one point of a parameter sweep.
type Job struct {
	Basis     surface.Basis
	Distance  int
	Rounds    int
	ErrorRate float64
}

// Validate checks the job before anything touches the disk. The error rate
// must also yield valid SI1000 channels, which caps it at 0.2.
func (j Job) Validate() error {
	switch {
	case j.Basis.Validate() != nil:
		return fmt.Errorf("job %v: %w: %w", j, ErrInvalidJob, j.Basis.Validate())
	case j.Distance < lattice.MinDistance:
		return fmt.Errorf("job %v: distance %d < %d: %w", j, j.Distance, lattice.MinDistance, ErrInvalidJob)
	case j.Rounds < 1:
		return fmt.Errorf("job %v: rounds %d < 1: %w", j, j.Rounds, ErrInvalidJob)
	case !(j.ErrorRate >= 0 && j.ErrorRate <= 0.5):
		return fmt.Errorf("job %v: error rate %g not in [0,0.5]: %w", j, j.ErrorRate, ErrInvalidJob)
	}
	if _, err := noise.SI1000(j.ErrorRate); err != nil {
		return fmt.Errorf("job %v: %w: %w", j, ErrInvalidJob, err)
	}
	return nil
}

// Dir returns the job's directory name.
func (j Job) Dir() string { return DirName(j.Basis, j.Distance, j.Rounds, j.ErrorRate) }

// String renders the job as its directory name.
func (j Job) String() string { return j.Dir() }

// DirName returns "b{basis}_d{d}_r{rounds:02}_p{p}" with p spelled the way
// existing datasets spell it: 0.001, 0.0035, 1.0, 1e-05.
func DirName(b surface.Basis, d, rounds int, p float64) string {
	return fmt.Sprintf("b%s_d%d_r%02d_p%s", b, d, rounds, formatRate(p))
}

// formatRate renders p in shortest round-trip form, switching to exponent
// notation below 1e-4 or from 1e16, and keeping ".0" on integral values.
func formatRate(p float64) string {
	if p != 0 {
		sci := strconv.FormatFloat(p, 'e', -1, 64)
		exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return sci
		}
	}
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
