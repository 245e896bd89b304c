// Package config loads the YAML description of a dataset sweep.
//
// A minimal file:
//
//	output: simulated_data
//	distances: [3, 5]
//	rounds: [1, 25]
//	error_rates: [0.004]
//	bases: [X, Z]
//
// Unset fields keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surfacecode/dataset"
	"github.com/katalvlaran/surfacecode/shotfmt"
	"github.com/katalvlaran/surfacecode/stimcli"
	"github.com/katalvlaran/surfacecode/surface"
	"github.com/katalvlaran/surfacecode/sweep"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is a parameter sweep plus the generator settings shared by all jobs.
type Config struct {
	Output     string    `yaml:"output"`
	Distances  []int     `yaml:"distances"`
	Rounds     []int     `yaml:"rounds"`
	ErrorRates []float64 `yaml:"error_rates"`
	Bases      []string  `yaml:"bases"`

	Shots   int    `yaml:"shots"`
	Format  string `yaml:"format"`
	Sweep   string `yaml:"sweep"` // "", "rnd" or "half-half"
	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"`
	Sample  bool   `yaml:"sample"`
	Stim    string `yaml:"stim"` // path to the stim executable
}

// Default returns the training-set sweep: d ∈ {3,5,7},
// p ∈ {0.0035,0.004,0.0045}, rounds ∈ {1,25}, both bases, b8 files.
func Default() Config {
	return Config{
		Output:     "simulated_data",
		Distances:  []int{3, 5, 7},
		Rounds:     []int{1, 25},
		ErrorRates: []float64{0.0035, 0.004, 0.0045},
		Bases:      []string{"X", "Z"},
		Shots:      10000,
		Format:     string(shotfmt.B8),
		Sweep:      string(sweep.Random),
		Workers:    4,
		Stim:       stimcli.DefaultBinary,
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("Load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over Default and validates the result. Unknown
// keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field. Generator-level consistency (shots vs sweep)
// is checked again by dataset.Options.Validate.
func (c Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output: empty: %w", ErrInvalid)
	}
	if len(c.Distances) == 0 || len(c.Rounds) == 0 || len(c.ErrorRates) == 0 || len(c.Bases) == 0 {
		return fmt.Errorf("distances, rounds, error_rates and bases must be non-empty: %w", ErrInvalid)
	}
	for _, b := range c.Bases {
		if _, err := surface.ParseBasis(b); err != nil {
			return fmt.Errorf("bases: %w: %w", ErrInvalid, err)
		}
	}
	if _, err := shotfmt.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w: %w", ErrInvalid, err)
	}
	if c.Sweep != "" {
		if _, err := sweep.ParseDistribution(c.Sweep); err != nil {
			return fmt.Errorf("sweep: %w: %w", ErrInvalid, err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}
	for _, j := range c.Jobs() {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Jobs expands the sweep in a fixed order: basis, distance, error rate,
// rounds. Duplicate values are kept once.
func (c Config) Jobs() []dataset.Job {
	var jobs []dataset.Job
	for _, bs := range uniq(c.Bases) {
		b, err := surface.ParseBasis(bs)
		if err != nil {
			// Kept so Validate can report it through Job.Validate.
			b = surface.Basis(bs)
		}
		for _, d := range uniq(c.Distances) {
			for _, p := range uniq(c.ErrorRates) {
				for _, r := range uniq(c.Rounds) {
					jobs = append(jobs, dataset.Job{Basis: b, Distance: d, Rounds: r, ErrorRate: p})
				}
			}
		}
	}
	return jobs
}

// Options returns the generator settings. Call it on a validated Config;
// unparsable format or sweep names pass through unchanged.
func (c Config) Options() dataset.Options {
	format, err := shotfmt.ParseFormat(c.Format)
	if err != nil {
		format = shotfmt.Format(c.Format)
	}
	dist := sweep.Distribution(c.Sweep)
	if c.Sweep != "" {
		if d, err := sweep.ParseDistribution(c.Sweep); err == nil {
			dist = d
		}
	}
	return dataset.Options{
		Root:    c.Output,
		Shots:   c.Shots,
		Format:  format,
		Sweep:   dist,
		Seed:    c.Seed,
		Sample:  c.Sample,
		Workers: c.Workers,
	}
}

// Write stores c as YAML at path.
func (c Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func uniq[T comparable](in []T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
