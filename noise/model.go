package noise

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/surfacecode/circuit"
)

// ErrInvalidProbability indicates a channel probability outside its valid range.
var ErrInvalidProbability = errors.New("noise: probability out of range")

// Model inserts error instructions into a clean circuit.
type Model interface {
	Apply(c circuit.Circuit) circuit.Circuit
}

// Noiseless is the identity Model.
type Noiseless struct{}

// Apply returns c unchanged.
func (Noiseless) Apply(c circuit.Circuit) circuit.Circuit { return c }

// Upper bounds of the channels used below.
const (
	maxFlip         = 1.0
	maxDepolarize1  = 3.0 / 4
	maxDepolarize2  = 15.0 / 16
	si1000OneQDiv   = 10.0
	si1000Reset     = 2.0
	si1000Measure   = 5.0
	si1000MRIdle    = 2.0
)

// Params is a Model described by one probability per channel.
// A zero probability disables the channel.
type Params struct {
	Clifford1        float64 // DEPOLARIZE1 after single-qubit Cliffords
	Clifford2        float64 // DEPOLARIZE2 after two-qubit Cliffords
	Reset            float64 // X_ERROR after resets
	Measure          float64 // X_ERROR before measurements
	Idle             float64 // DEPOLARIZE1 on idle qubits
	MeasureResetIdle float64 // DEPOLARIZE1 on idle qubits in measure/reset moments
}

// SI1000 returns the superconducting-inspired model for error rate p.
// Returns ErrInvalidProbability if p or any derived rate is out of range.
func SI1000(p float64) (*Params, error) {
	m := &Params{
		Clifford1:        p / si1000OneQDiv,
		Clifford2:        p,
		Reset:            p * si1000Reset,
		Measure:          p * si1000Measure,
		Idle:             p / si1000OneQDiv,
		MeasureResetIdle: p * si1000MRIdle,
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("SI1000(%g): %w", p, err)
	}
	return m, nil
}

// Validate checks every channel against its physical bound.
func (m *Params) Validate() error {
	checks := []struct {
		name string
		p    float64
		max  float64
	}{
		{"clifford1", m.Clifford1, maxDepolarize1},
		{"clifford2", m.Clifford2, maxDepolarize2},
		{"reset", m.Reset, maxFlip},
		{"measure", m.Measure, maxFlip},
		{"idle", m.Idle, maxDepolarize1},
		{"measure_reset_idle", m.MeasureResetIdle, maxDepolarize1},
	}
	for _, c := range checks {
		if !(c.p >= 0 && c.p <= c.max) {
			return fmt.Errorf("%s=%g not in [0,%g]: %w", c.name, c.p, c.max, ErrInvalidProbability)
		}
	}
	return nil
}

// Apply returns the noisy version of c.
// Complexity: O(moments × qubits + total targets).
func (m *Params) Apply(c circuit.Circuit) circuit.Circuit {
	return m.apply(c, usedQubits(c))
}

func (m *Params) apply(c circuit.Circuit, all []int) circuit.Circuit {
	var (
		b      circuit.Builder
		moment []circuit.Op
	)
	flush := func() {
		m.moment(&b, moment, all)
		moment = moment[:0]
	}
	for _, op := range c.Ops() {
		switch op.Gate {
		case circuit.Tick:
			flush()
			b.Tick()
		case circuit.RepeatBlock:
			flush()
			b.Extend(m.apply(op.Body, all).Repeat(op.Repetitions))
		default:
			moment = append(moment, op)
		}
	}
	flush()
	return b.Circuit()
}

// moment emits the ops of one TICK-delimited layer with their noise.
func (m *Params) moment(b *circuit.Builder, ops []circuit.Op, all []int) {
	touched := make(map[int]bool)
	active, measureReset := false, false

	for _, op := range ops {
		g := op.Gate
		if g.Annotation() || g.Noise() {
			b.Add(g, op.Targets, op.Args...)
			continue
		}
		qs := qubitsOf(op.Targets)
		for _, q := range qs {
			touched[q] = true
		}
		active = true

		switch {
		case g.Measures():
			measureReset = true
			emit(b, circuit.XError, qs, m.Measure)
			b.Add(g, op.Targets, op.Args...)
			if g.Resets() {
				emit(b, circuit.XError, qs, m.Reset)
			}
		case g.Resets():
			measureReset = true
			b.Add(g, op.Targets, op.Args...)
			emit(b, circuit.XError, qs, m.Reset)
		case g.TwoQubit():
			b.Add(g, op.Targets, op.Args...)
			emit(b, circuit.Depolarize2, quantumPairs(op.Targets), m.Clifford2)
		case g.Clifford():
			b.Add(g, op.Targets, op.Args...)
			emit(b, circuit.Depolarize1, qs, m.Clifford1)
		default:
			b.Add(g, op.Targets, op.Args...)
		}
	}
	if !active {
		return
	}

	idle := make([]int, 0, len(all))
	for _, q := range all {
		if !touched[q] {
			idle = append(idle, q)
		}
	}
	p := m.Idle
	if measureReset {
		p = m.MeasureResetIdle
	}
	emit(b, circuit.Depolarize1, idle, p)
}

func emit(b *circuit.Builder, g circuit.Gate, qs []int, p float64) {
	if p == 0 || len(qs) == 0 {
		return
	}
	b.Gate(g, qs, p)
}

// qubitsOf returns the qubit targets, skipping rec and sweep controls.
func qubitsOf(ts []circuit.Target) []int {
	qs := make([]int, 0, len(ts))
	for _, t := range ts {
		if t.Kind == circuit.KindQubit {
			qs = append(qs, t.Value)
		}
	}
	return qs
}

// quantumPairs keeps the (a, b) pairs where both sides are qubits; classically
// controlled pairs carry no two-qubit error.
func quantumPairs(ts []circuit.Target) []int {
	qs := make([]int, 0, len(ts))
	for i := 0; i+1 < len(ts); i += 2 {
		a, b := ts[i], ts[i+1]
		if a.Kind == circuit.KindQubit && b.Kind == circuit.KindQubit {
			qs = append(qs, a.Value, b.Value)
		}
	}
	return qs
}

// usedQubits returns every qubit touched anywhere in c, ascending.
func usedQubits(c circuit.Circuit) []int {
	seen := make(map[int]bool)
	var walk func(circuit.Circuit)
	walk = func(c circuit.Circuit) {
		for _, op := range c.Ops() {
			if op.Gate == circuit.RepeatBlock {
				walk(op.Body)
				continue
			}
			for _, q := range qubitsOf(op.Targets) {
				seen[q] = true
			}
		}
	}
	walk(c)

	qs := make([]int, 0, len(seen))
	for q := range seen {
		qs = append(qs, q)
	}
	slices.Sort(qs)
	return qs
}
