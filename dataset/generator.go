package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/shotfmt"
	"github.com/katalvlaran/surfacecode/stimcli"
	"github.com/katalvlaran/surfacecode/surface"
	"github.com/katalvlaran/surfacecode/sweep"
)

// Sampler samples circuits and converts measurements to detection events.
// *stimcli.Runner implements it.
type Sampler interface {
	Sample(ctx context.Context, circuitPath string, shots int, format shotfmt.Format, outPath string) error
	Convert(ctx context.Context, req stimcli.ConvertRequest) error
}

// Options configures a Generator.
type Options struct {
	Root    string             // output root; job directories are created below it
	Shots   int                // shots per job for sweep bits and sampling
	Format  shotfmt.Format     // format of sweep, measurement and detection files
	Sweep   sweep.Distribution // empty disables the sweep file
	Seed    uint64             // base seed; each job derives its own
	Sample  bool               // run the Sampler after writing circuits
	Workers int                // Run concurrency; < 1 means 1
}

// Validate checks the options for consistency.
func (o Options) Validate() error {
	if o.Root == "" {
		return fmt.Errorf("empty output root: %w", ErrInvalidOptions)
	}
	if err := o.Format.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.Shots < 0 {
		return fmt.Errorf("shots %d: %w", o.Shots, ErrInvalidOptions)
	}
	if o.Sweep != "" {
		if err := o.Sweep.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
		if o.Sweep == sweep.HalfHalf && o.Shots%2 != 0 {
			return fmt.Errorf("half-half sweep needs an even shot count, got %d: %w", o.Shots, ErrInvalidOptions)
		}
	}
	if (o.Sample || o.Sweep != "") && o.Shots < 1 {
		return fmt.Errorf("sampling or sweep bits need shots > 0: %w", ErrInvalidOptions)
	}
	return nil
}

// Generator writes job directories. It is safe for concurrent use.
type Generator struct {
	opts    Options
	sampler Sampler
	log     *slog.Logger
	runID   uuid.UUID
	now     func() time.Time
}

// NewGenerator validates opts and tags every manifest it writes with a fresh
// run ID. sampler may be nil when opts.Sample is false; a nil logger means
// slog.Default().
func NewGenerator(opts Options, sampler Sampler, logger *slog.Logger) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	if opts.Sample && sampler == nil {
		return nil, fmt.Errorf("NewGenerator: sampling without a sampler: %w", ErrInvalidOptions)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		opts:    opts,
		sampler: sampler,
		log:     logger,
		runID:   uuid.New(),
		now:     time.Now,
	}, nil
}

// RunID identifies the manifests written by g.
func (g *Generator) RunID() uuid.UUID { return g.runID }

// Generate writes the directory for one job and returns its manifest.
func (g *Generator) Generate(ctx context.Context, job Job) (Manifest, error) {
	if err := job.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("Generate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Manifest{}, err
	}
	dir := filepath.Join(g.opts.Root, job.Dir())
	log := g.log.With("job", job.Dir())
	start := time.Now()

	code, err := surface.New(job.Distance)
	if err != nil {
		return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
	}
	ideal, err := code.BuildIdeal(job.Rounds, job.Basis)
	if err != nil {
		return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
	}
	noisy, err := code.BuildNoisy(job.ErrorRate, job.Rounds, job.Basis)
	if err != nil {
		return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
	}
	files := []string{FileIdealCircuit, FileNoisyCircuit}
	if err := writeCircuit(filepath.Join(dir, FileIdealCircuit), ideal); err != nil {
		return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
	}
	if err := writeCircuit(filepath.Join(dir, FileNoisyCircuit), noisy); err != nil {
		return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
	}

	m := Manifest{
		RunID:        g.runID.String(),
		CreatedAt:    g.now().UTC(),
		Basis:        job.Basis.String(),
		Distance:     job.Distance,
		Rounds:       job.Rounds,
		ErrorRate:    job.ErrorRate,
		Format:       g.opts.Format.String(),
		Qubits:       ideal.NumQubits(),
		Measurements: ideal.NumMeasurements(),
		Detectors:    ideal.NumDetectors(),
		Observables:  ideal.NumObservables(),
	}

	var sweepPath string
	if g.opts.Sweep != "" {
		m.Sweep = g.opts.Sweep.String()
		m.Seed = g.jobSeed(job)
		m.Shots = g.opts.Shots
		rows, err := sweep.Generate(job.Distance, g.opts.Shots, g.opts.Sweep, m.Seed)
		if err != nil {
			return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
		}
		name := SweepFile(g.opts.Format)
		sweepPath = filepath.Join(dir, name)
		if err := writeShots(sweepPath, g.opts.Format, rows); err != nil {
			return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
		}
		files = append(files, name)
	}

	if g.opts.Sample {
		m.Shots = g.opts.Shots
		produced, err := g.sample(ctx, dir, sweepPath)
		if err != nil {
			return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
		}
		files = append(files, produced...)
	}

	m.Files = files
	if err := WriteManifest(filepath.Join(dir, FileManifest), m); err != nil {
		return Manifest{}, fmt.Errorf("Generate %s: %w", job, err)
	}
	log.Info("job written",
		"qubits", m.Qubits,
		"detectors", m.Detectors,
		"files", len(m.Files),
		"elapsed", time.Since(start))
	return m, nil
}

// sample draws measurements from the noisy circuit and converts them against
// the ideal one, returning the file names produced.
func (g *Generator) sample(ctx context.Context, dir, sweepPath string) ([]string, error) {
	f := g.opts.Format
	meas := MeasurementsFile(f)
	dets := DetectionEventsFile(f)

	if err := g.sampler.Sample(ctx, filepath.Join(dir, FileNoisyCircuit), g.opts.Shots, f, filepath.Join(dir, meas)); err != nil {
		return nil, err
	}
	req := stimcli.ConvertRequest{
		CircuitPath:      filepath.Join(dir, FileIdealCircuit),
		MeasurementsPath: filepath.Join(dir, meas),
		Format:           f,
		SweepPath:        sweepPath,
		DetectionsPath:   filepath.Join(dir, dets),
		ObservablesPath:  filepath.Join(dir, FileObservables),
	}
	if err := g.sampler.Convert(ctx, req); err != nil {
		return nil, err
	}
	return []string{meas, dets, FileObservables}, nil
}

// jobSeed mixes the base seed with the job's directory name so that jobs in
// one run draw different sweep bits.
func (g *Generator) jobSeed(job Job) uint64 {
	return g.opts.Seed ^ xxhash.Sum64String(job.Dir())
}

// Run generates every job with at most Options.Workers in flight and returns
// the manifests in job order. All jobs are validated before any is written;
// after that the first error cancels the remaining jobs.
func (g *Generator) Run(ctx context.Context, jobs []Job) ([]Manifest, error) {
	for _, job := range jobs {
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}
	workers := max(g.opts.Workers, 1)
	out := make([]Manifest, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	g.log.Info("dataset run started", "run_id", g.runID, "jobs", len(jobs), "workers", workers)
	for i, job := range jobs {
		eg.Go(func() error {
			m, err := g.Generate(ctx, job)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.log.Error("dataset run failed", "run_id", g.runID, "err", err)
		return nil, err
	}
	g.log.Info("dataset run finished", "run_id", g.runID, "jobs", len(jobs))
	return out, nil
}

func writeCircuit(path string, c circuit.Circuit) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeShots(path string, format shotfmt.Format, rows [][]bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := shotfmt.Encode(f, format, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
