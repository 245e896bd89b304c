// SPDX-License-Identifier: MIT

package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/record"
	"github.com/katalvlaran/surfacecode/surface"
)

// TestInitStage compares both initialisation modes for each basis.
func TestInitStage(t *testing.T) {
	c := mustCode(t, 3)

	assert.Equal(t, "H 1 3 5 7\nTICK\n", c.InitStage(surface.BasisZ, false).String())
	assert.Equal(t, "H 0 2 4 6 8\nTICK\n", c.InitStage(surface.BasisX, false).String())

	full := c.InitStage(surface.BasisZ, true)
	assert.Equal(t, 17, full.Count(circuit.QubitCoords))
	assert.Equal(t, 1, full.Count(circuit.R), "resets fuse into one instruction")
	assert.Equal(t, 3, full.Count(circuit.Tick))
}

// TestStabilizerStage counts the coupling schedule.
func TestStabilizerStage(t *testing.T) {
	for _, d := range []int{2, 3, 5, 7} {
		c := mustCode(t, d)
		s := c.StabilizerStage()
		assert.Zero(t, s.NumMeasurements())

		// Every data-ancilla adjacency is coupled exactly once.
		want := 0
		for _, q := range c.Lattice().Ancillas() {
			nbrs, err := c.Lattice().DataNeighbors(q)
			require.NoError(t, err)
			want += len(nbrs)
		}
		pairs := 0
		for _, op := range s.Ops() {
			if op.Gate == circuit.CZ {
				pairs += len(op.Targets) / 2
			}
		}
		assert.Equal(t, want, pairs, "d=%d", d)

		// 1 + 4 coupling moments + 3 Hadamard moments.
		assert.Equal(t, 8, s.Count(circuit.Tick), "d=%d", d)
		assert.Equal(t, 4, s.Count(circuit.H), "d=%d", d)
	}
}

// TestStabilizerStage_Orientation checks X ancillas are CZ targets and Z
// ancillas CZ controls.
func TestStabilizerStage_Orientation(t *testing.T) {
	c := mustCode(t, 3)
	l := c.Lattice()
	for _, op := range c.StabilizerStage().Ops() {
		if op.Gate != circuit.CZ {
			continue
		}
		for i := 0; i < len(op.Targets); i += 2 {
			a, b := op.Targets[i].Value, op.Targets[i+1].Value
			ra, err := l.Role(a)
			require.NoError(t, err)
			rb, err := l.Role(b)
			require.NoError(t, err)
			if ra.String() == "data" {
				assert.Equal(t, "x-ancilla", rb.String(), "CZ %d %d", a, b)
			} else {
				assert.Equal(t, "z-ancilla", ra.String(), "CZ %d %d", a, b)
				assert.Equal(t, "data", rb.String(), "CZ %d %d", a, b)
			}
		}
	}
}

// TestMeasuringStages checks histories agree with what the stages measure.
func TestMeasuringStages(t *testing.T) {
	c := mustCode(t, 5)
	l := c.Lattice()

	anc, h := c.AncillaStage()
	assert.Equal(t, l.Ancillas(), h.Qubits())
	assert.Equal(t, h.Len(), anc.NumMeasurements())

	round, rh := c.RoundStage()
	assert.Equal(t, h.Qubits(), rh.Qubits())
	assert.Equal(t, rh.Len(), round.NumMeasurements())

	data, dh := c.DataStage(surface.BasisZ)
	assert.Equal(t, l.DataQubits(), dh.Qubits())
	assert.Equal(t, dh.Len(), data.NumMeasurements())
}

// TestDetectors_D3 pins each detector family at distance 3.
func TestDetectors_D3(t *testing.T) {
	c := mustCode(t, 3)
	_, round := c.AncillaStage()
	_, data := c.DataStage(surface.BasisZ)
	combined := round.Concat(data)

	init, err := c.InitDetectors(round, surface.BasisZ)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-8}, {-7}, {-6}, {-5}}, init.Detectors())

	rd, err := c.RoundDetectors(round)
	require.NoError(t, err)
	dets := rd.Detectors()
	require.Len(t, dets, 8)
	assert.Equal(t, []int{-8, -16}, dets[0])
	assert.Equal(t, []int{-1, -9}, dets[7])
	assert.Equal(t, circuit.Tick, rd.Ops()[rd.Len()-1].Gate)

	fd, err := c.FinalDetectors(combined, round)
	require.NoError(t, err)
	dets = fd.Detectors()
	require.Len(t, dets, 8)
	assert.Equal(t, []int{-13, -21}, dets[0], "Z ancillas come first")
	assert.Equal(t, []int{-17, -25}, dets[4])

	sd, err := c.StabilizerDetectors(combined, surface.BasisX)
	require.NoError(t, err)
	assert.Equal(t, []int{-13, -8, -7, -5, -4}, sd.Detectors()[0])

	obs, err := c.Observable(combined, surface.BasisX)
	require.NoError(t, err)
	assert.Equal(t, []circuit.Target{circuit.Rec(-9), circuit.Rec(-8), circuit.Rec(-7)}, obs)
}

// TestDetectors_MissingQubit reports an invariant violation.
func TestDetectors_MissingQubit(t *testing.T) {
	c := mustCode(t, 3)
	empty := record.NewHistory()

	_, err := c.InitDetectors(empty, surface.BasisZ)
	assert.ErrorIs(t, err, surface.ErrInvariant)
	assert.ErrorIs(t, err, record.ErrNotMeasured)

	_, err = c.RoundDetectors(empty)
	assert.ErrorIs(t, err, surface.ErrInvariant)

	_, err = c.FinalDetectors(empty, empty)
	assert.ErrorIs(t, err, surface.ErrInvariant)

	_, err = c.StabilizerDetectors(record.NewHistory(c.Lattice().Ancillas()...), surface.BasisZ)
	assert.ErrorIs(t, err, surface.ErrInvariant, "data neighbours are absent")

	_, err = c.Observable(empty, surface.BasisZ)
	assert.ErrorIs(t, err, surface.ErrInvariant)

	_, err = c.InitDetectors(empty, surface.Basis("Q"))
	assert.ErrorIs(t, err, surface.ErrUnknownBasis)
}
