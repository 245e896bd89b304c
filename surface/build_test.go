// SPDX-License-Identifier: MIT

package surface_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/lattice"
	"github.com/katalvlaran/surfacecode/surface"
)

// d3Z1 is the complete distance-3, one-round, Z-basis experiment.
const d3Z1 = `QUBIT_COORDS(0, 0) 0
QUBIT_COORDS(0, 1) 1
QUBIT_COORDS(0, 2) 2
QUBIT_COORDS(1, 0) 3
QUBIT_COORDS(1, 1) 4
QUBIT_COORDS(1, 2) 5
QUBIT_COORDS(2, 0) 6
QUBIT_COORDS(2, 1) 7
QUBIT_COORDS(2, 2) 8
QUBIT_COORDS(0.5, 0.5) 9
QUBIT_COORDS(1.5, 1.5) 10
QUBIT_COORDS(2.5, 0.5) 11
QUBIT_COORDS(-0.5, 1.5) 12
QUBIT_COORDS(0.5, 1.5) 13
QUBIT_COORDS(1.5, 0.5) 14
QUBIT_COORDS(0.5, -0.5) 15
QUBIT_COORDS(1.5, 2.5) 16
TICK
R 0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16
TICK
H 1 3 5 7
TICK
H 9 10 11 12 13 14 15 16
TICK
CZ 0 9 4 10 6 11 13 1 14 3 16 5
TICK
H 0 1 2 3 4 5 6 7 8
TICK
CZ 1 9 5 10 7 11 13 4 14 6 16 8
TICK
CZ 3 9 7 10 1 12 13 2 14 4 15 0
TICK
H 0 1 2 3 4 5 6 7 8
TICK
CZ 4 9 8 10 2 12 13 5 14 7 15 3
TICK
H 9 10 11 12 13 14 15 16
TICK
MR 9 10 11 12 13 14 15 16
TICK
DETECTOR rec[-8]
DETECTOR rec[-7]
DETECTOR rec[-6]
DETECTOR rec[-5]
H 1 3 5 7
TICK
M 0 1 2 3 4 5 6 7 8
TICK
DETECTOR rec[-17] rec[-9] rec[-8] rec[-6] rec[-5]
DETECTOR rec[-16] rec[-5] rec[-4] rec[-2] rec[-1]
DETECTOR rec[-15] rec[-3] rec[-2]
DETECTOR rec[-14] rec[-8] rec[-7]
OBSERVABLE_INCLUDE(0) rec[-9] rec[-6] rec[-3]
`

func mustCode(t testing.TB, d int) *surface.Code {
	t.Helper()
	c, err := surface.New(d)
	require.NoError(t, err)
	return c
}

// TestBuild_D3Z1Golden pins the full text of the smallest useful experiment.
func TestBuild_D3Z1Golden(t *testing.T) {
	got, err := mustCode(t, 3).Build(1, surface.BasisZ)
	require.NoError(t, err)
	if diff := cmp.Diff(d3Z1, got.String()); diff != "" {
		t.Errorf("d=3 Z rounds=1 mismatch (-want +got):\n%s", diff)
	}

	dets := got.Detectors()
	require.Len(t, dets, 8)
	for _, det := range dets[:4] {
		assert.Len(t, det, 1, "init detectors read one ancilla")
	}
	assert.Equal(t, []int{-17, -9, -8, -6, -5}, dets[4])
	assert.Equal(t, []int{-9, -6, -3}, got.Observable(0))
}

// TestBuild_Properties sweeps distances, bases and rounds.
func TestBuild_Properties(t *testing.T) {
	for _, d := range []int{2, 3, 5} {
		c := mustCode(t, d)
		l := c.Lattice()
		anc := len(l.Ancillas())
		for _, b := range []surface.Basis{surface.BasisX, surface.BasisZ} {
			det := len(b.DeterministicAncillas(l))
			for _, rounds := range []int{1, 2, 3, 5} {
				t.Run(fmt.Sprintf("d%d_%s_r%d", d, b, rounds), func(t *testing.T) {
					got, err := c.Build(rounds, b)
					require.NoError(t, err)
					require.NoError(t, got.Validate())

					assert.Equal(t, anc*rounds+d*d, got.NumMeasurements())
					assert.Equal(t, 2*det+anc*(rounds-1), got.NumDetectors())
					assert.Equal(t, l.NumQubits(), got.NumQubits())
					assert.Len(t, got.Observable(0), d)
					assert.Equal(t, 1, got.NumObservables())

					// Round-to-round detectors are exactly the two-target ones.
					pairs := 0
					for _, det := range got.Detectors() {
						if len(det) == 2 {
							pairs++
						}
					}
					assert.Equal(t, anc*(rounds-1), pairs)
				})
			}
		}
	}
}

// TestBuild_Regimes checks the shape each regime produces.
func TestBuild_Regimes(t *testing.T) {
	c := mustCode(t, 3)

	for rounds, want := range map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 25: 1} {
		got, err := c.Build(rounds, surface.BasisZ)
		require.NoError(t, err)
		blocks := 0
		for _, op := range got.Ops() {
			if op.Gate == circuit.RepeatBlock {
				blocks++
				assert.Equal(t, rounds-2, op.Repetitions)
			}
		}
		assert.Equal(t, want, blocks, "rounds=%d", rounds)
		assert.Equal(t, rounds*8+9, got.NumMeasurements())
	}

	cases := []struct {
		rounds int
		want   surface.Regime
	}{
		{1, surface.RegimeSingle},
		{2, surface.RegimeDouble},
		{3, surface.RegimeMulti},
		{100, surface.RegimeMulti},
	}
	for _, tc := range cases {
		r, err := surface.RegimeFor(tc.rounds)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r)
	}
	_, err := surface.RegimeFor(0)
	assert.ErrorIs(t, err, surface.ErrTooFewRounds)
	assert.Equal(t, "multi", surface.RegimeMulti.String())
}

// TestBuild_BasisSymmetry swaps X and Z and compares the roles.
func TestBuild_BasisSymmetry(t *testing.T) {
	c := mustCode(t, 3)
	l := c.Lattice()

	assert.Equal(t, l.XAncillas(), surface.BasisZ.DeterministicAncillas(l))
	assert.Equal(t, l.ZAncillas(), surface.BasisX.DeterministicAncillas(l))
	assert.Equal(t, 1, surface.BasisZ.ObservableAxis())
	assert.Equal(t, 0, surface.BasisX.ObservableAxis())

	z, err := c.Build(1, surface.BasisZ)
	require.NoError(t, err)
	x, err := c.Build(1, surface.BasisX)
	require.NoError(t, err)

	assert.Equal(t, []int{-9, -6, -3}, z.Observable(0))
	assert.Equal(t, []int{-9, -8, -7}, x.Observable(0))
	assert.Equal(t, []int{-4}, x.Detectors()[0], "X basis starts from the first Z ancilla")
	assert.Equal(t, z.NumDetectors(), x.NumDetectors())
}

// TestBuild_Errors covers rejected parameters.
func TestBuild_Errors(t *testing.T) {
	_, err := surface.New(1)
	assert.ErrorIs(t, err, lattice.ErrDistanceTooSmall)

	c := mustCode(t, 3)
	_, err = c.Build(0, surface.BasisZ)
	assert.ErrorIs(t, err, surface.ErrTooFewRounds)
	_, err = c.Build(1, surface.Basis("Y"))
	assert.ErrorIs(t, err, surface.ErrUnknownBasis)

	b, err := surface.ParseBasis(" x ")
	require.NoError(t, err)
	assert.Equal(t, surface.BasisX, b)
	_, err = surface.ParseBasis("XZ")
	assert.ErrorIs(t, err, surface.ErrUnknownBasis)
}

// TestBuild_WithoutInitialize drops coordinates and resets.
func TestBuild_WithoutInitialize(t *testing.T) {
	got, err := mustCode(t, 3).Build(2, surface.BasisZ, surface.WithInitialize(false))
	require.NoError(t, err)
	assert.Zero(t, got.Count(circuit.QubitCoords))
	assert.Zero(t, got.Count(circuit.R))
	assert.Equal(t, "H 1 3 5 7", got.Ops()[0].String())
}
