package dataset_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/dataset"
	"github.com/katalvlaran/surfacecode/noise"
	"github.com/katalvlaran/surfacecode/shotfmt"
	"github.com/katalvlaran/surfacecode/stimcli"
	"github.com/katalvlaran/surfacecode/surface"
	"github.com/katalvlaran/surfacecode/sweep"
)

// fakeSampler writes placeholder outputs and records requests.
type fakeSampler struct {
	mu       sync.Mutex
	samples  []string
	converts []stimcli.ConvertRequest
	fail     error
}

func (f *fakeSampler) Sample(_ context.Context, circuitPath string, _ int, _ shotfmt.Format, outPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.samples = append(f.samples, circuitPath)
	return os.WriteFile(outPath, []byte("m"), 0o644)
}

func (f *fakeSampler) Convert(_ context.Context, req stimcli.ConvertRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.converts = append(f.converts, req)
	if err := os.WriteFile(req.DetectionsPath, []byte("d"), 0o644); err != nil {
		return err
	}
	return os.WriteFile(req.ObservablesPath, []byte("0\n"), 0o644)
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

var d3 = dataset.Job{Basis: surface.BasisZ, Distance: 3, Rounds: 2, ErrorRate: 0.001}

// TestGenerate_CircuitsOnly writes circuits and a manifest.
func TestGenerate_CircuitsOnly(t *testing.T) {
	root := t.TempDir()
	g, err := dataset.NewGenerator(dataset.Options{Root: root, Format: shotfmt.B8}, nil, quiet())
	require.NoError(t, err)

	m, err := g.Generate(context.Background(), d3)
	require.NoError(t, err)
	assert.Equal(t, []string{dataset.FileIdealCircuit, dataset.FileNoisyCircuit}, m.Files)
	assert.Equal(t, 17, m.Qubits)
	assert.Equal(t, 2*8+9, m.Measurements)
	assert.Equal(t, 4+8+4, m.Detectors)
	assert.Equal(t, 1, m.Observables)
	assert.Equal(t, g.RunID().String(), m.RunID)

	dir := filepath.Join(root, "bZ_d3_r02_p0.001")
	f, err := os.Open(filepath.Join(dir, dataset.FileIdealCircuit))
	require.NoError(t, err)
	defer f.Close()
	ideal, err := circuit.Parse(f)
	require.NoError(t, err)
	require.NoError(t, ideal.Validate())

	want, err := mustCode(t).BuildIdeal(2, surface.BasisZ)
	require.NoError(t, err)
	assert.Equal(t, want.String(), ideal.String())

	back, err := dataset.ReadManifest(filepath.Join(dir, dataset.FileManifest))
	require.NoError(t, err)
	assert.Equal(t, m.Files, back.Files)
	assert.Equal(t, m.Detectors, back.Detectors)
	assert.Equal(t, "Z", back.Basis)
}

// TestGenerate_SweepAndSample runs the full pipeline against a fake sampler.
func TestGenerate_SweepAndSample(t *testing.T) {
	root := t.TempDir()
	fs := &fakeSampler{}
	opts := dataset.Options{
		Root:   root,
		Shots:  10,
		Format: shotfmt.Bits01,
		Sweep:  sweep.HalfHalf,
		Sample: true,
	}
	g, err := dataset.NewGenerator(opts, fs, quiet())
	require.NoError(t, err)

	m, err := g.Generate(context.Background(), d3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		dataset.FileIdealCircuit,
		dataset.FileNoisyCircuit,
		"sweep.01",
		"measurements.01",
		"detection_events.01",
		dataset.FileObservables,
	}, m.Files)
	assert.Equal(t, 10, m.Shots)

	dir := filepath.Join(root, d3.Dir())
	for _, name := range m.Files {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	f, err := os.Open(filepath.Join(dir, "sweep.01"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := shotfmt.Decode01(f, 9)
	require.NoError(t, err)
	assert.Len(t, rows, 10)

	require.Len(t, fs.samples, 1)
	assert.Equal(t, filepath.Join(dir, dataset.FileNoisyCircuit), fs.samples[0])
	require.Len(t, fs.converts, 1)
	assert.Equal(t, filepath.Join(dir, dataset.FileIdealCircuit), fs.converts[0].CircuitPath)
	assert.Equal(t, filepath.Join(dir, "sweep.01"), fs.converts[0].SweepPath)
}

// TestRun_Parallel generates several jobs and keeps result order.
func TestRun_Parallel(t *testing.T) {
	root := t.TempDir()
	g, err := dataset.NewGenerator(dataset.Options{Root: root, Format: shotfmt.B8, Workers: 3}, nil, quiet())
	require.NoError(t, err)

	var jobs []dataset.Job
	for _, b := range []surface.Basis{surface.BasisX, surface.BasisZ} {
		for _, rounds := range []int{1, 3} {
			jobs = append(jobs, dataset.Job{Basis: b, Distance: 3, Rounds: rounds, ErrorRate: 0.002})
		}
	}
	ms, err := g.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, ms, len(jobs))
	for i, m := range ms {
		assert.Equal(t, jobs[i].Rounds, m.Rounds)
		assert.Equal(t, jobs[i].Basis.String(), m.Basis)
		assert.DirExists(t, filepath.Join(root, jobs[i].Dir()))
	}
}

// TestRun_FirstErrorWins reports a sampler failure.
func TestRun_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	fs := &fakeSampler{fail: boom}
	opts := dataset.Options{Root: t.TempDir(), Shots: 4, Format: shotfmt.B8, Sample: true, Workers: 2}
	g, err := dataset.NewGenerator(opts, fs, quiet())
	require.NoError(t, err)

	_, err = g.Run(context.Background(), []dataset.Job{d3, {Basis: surface.BasisX, Distance: 3, Rounds: 1, ErrorRate: 0.001}})
	assert.ErrorIs(t, err, boom)
}

// TestGenerate_JobSeeds is reproducible per job and differs across jobs.
func TestGenerate_JobSeeds(t *testing.T) {
	opts := dataset.Options{Root: t.TempDir(), Shots: 4, Format: shotfmt.B8, Sweep: sweep.Random, Seed: 7}
	other := dataset.Job{Basis: surface.BasisX, Distance: 3, Rounds: 2, ErrorRate: 0.001}

	g1, err := dataset.NewGenerator(opts, nil, quiet())
	require.NoError(t, err)
	a, err := g1.Generate(context.Background(), d3)
	require.NoError(t, err)
	b, err := g1.Generate(context.Background(), other)
	require.NoError(t, err)
	assert.NotEqual(t, a.Seed, b.Seed)

	opts.Root = t.TempDir()
	g2, err := dataset.NewGenerator(opts, nil, quiet())
	require.NoError(t, err)
	again, err := g2.Generate(context.Background(), d3)
	require.NoError(t, err)
	assert.Equal(t, a.Seed, again.Seed)
}

// TestRun_ValidatesBeforeWriting leaves the root empty when any job is bad.
func TestRun_ValidatesBeforeWriting(t *testing.T) {
	root := t.TempDir()
	g, err := dataset.NewGenerator(dataset.Options{Root: root, Format: shotfmt.B8, Workers: 2}, nil, quiet())
	require.NoError(t, err)

	jobs := []dataset.Job{
		{Basis: surface.BasisZ, Distance: 3, Rounds: 1, ErrorRate: 0.001},
		{Basis: surface.BasisZ, Distance: 3, Rounds: 1, ErrorRate: 0.3},
	}
	_, err = g.Run(context.Background(), jobs)
	assert.ErrorIs(t, err, dataset.ErrInvalidJob)
	assert.ErrorIs(t, err, noise.ErrInvalidProbability)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestNewGenerator_Rejects covers invalid options.
func TestNewGenerator_Rejects(t *testing.T) {
	cases := []dataset.Options{
		{Format: shotfmt.B8},
		{Root: "out", Format: "hits"},
		{Root: "out", Format: shotfmt.B8, Shots: -1},
		{Root: "out", Format: shotfmt.B8, Sweep: sweep.HalfHalf, Shots: 3},
		{Root: "out", Format: shotfmt.B8, Sweep: "gauss", Shots: 4},
		{Root: "out", Format: shotfmt.B8, Sample: true},
	}
	for _, o := range cases {
		_, err := dataset.NewGenerator(o, &fakeSampler{}, quiet())
		assert.ErrorIs(t, err, dataset.ErrInvalidOptions, "%+v", o)
	}
	_, err := dataset.NewGenerator(dataset.Options{Root: "out", Format: shotfmt.B8, Shots: 2, Sample: true}, nil, quiet())
	assert.ErrorIs(t, err, dataset.ErrInvalidOptions)

	g, err := dataset.NewGenerator(dataset.Options{Root: t.TempDir(), Format: shotfmt.B8}, nil, quiet())
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), dataset.Job{Basis: surface.BasisZ, Distance: 1, Rounds: 1})
	assert.ErrorIs(t, err, dataset.ErrInvalidJob)
}

func mustCode(t *testing.T) *surface.Code {
	t.Helper()
	c, err := surface.New(3)
	require.NoError(t, err)
	return c
}
