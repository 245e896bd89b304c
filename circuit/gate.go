package circuit

// Gate is an instruction name, spelled as in the text form.
type Gate string

// Supported instructions.
const (
	QubitCoords       Gate = "QUBIT_COORDS"
	Tick              Gate = "TICK"
	R                 Gate = "R"
	H                 Gate = "H"
	CX                Gate = "CX"
	CZ                Gate = "CZ"
	M                 Gate = "M"
	MR                Gate = "MR"
	XError            Gate = "X_ERROR"
	Depolarize1       Gate = "DEPOLARIZE1"
	Depolarize2       Gate = "DEPOLARIZE2"
	Detector          Gate = "DETECTOR"
	ObservableInclude Gate = "OBSERVABLE_INCLUDE"
	RepeatBlock       Gate = "REPEAT"
)

// gateInfo describes how a gate treats its targets.
type gateInfo struct {
	fusable  bool // consecutive ops with equal args may merge
	pairs    bool // targets come in (a, b) pairs
	measures bool // each target produces one measurement record entry
	resets   bool // each target is reset
	noise    bool // probabilistic error channel
	recs     bool // targets are rec[-k] only
	controls bool // even-position targets may be rec/sweep bits
	clifford bool // unitary Clifford gate
}

var gates = map[Gate]gateInfo{
	QubitCoords:       {},
	Tick:              {},
	R:                 {fusable: true, resets: true},
	H:                 {fusable: true, clifford: true},
	CX:                {fusable: true, pairs: true, controls: true, clifford: true},
	CZ:                {fusable: true, pairs: true, controls: true, clifford: true},
	M:                 {fusable: true, measures: true},
	MR:                {fusable: true, measures: true, resets: true},
	XError:            {fusable: true, noise: true},
	Depolarize1:       {fusable: true, noise: true},
	Depolarize2:       {fusable: true, pairs: true, noise: true},
	Detector:          {recs: true},
	ObservableInclude: {recs: true},
	RepeatBlock:       {},
}

// Known reports whether g is a supported gate.
func (g Gate) Known() bool {
	_, ok := gates[g]
	return ok
}

// Fusable reports whether consecutive g ops with equal args may be merged.
func (g Gate) Fusable() bool { return gates[g].fusable }

// TwoQubit reports whether g acts on target pairs.
func (g Gate) TwoQubit() bool { return gates[g].pairs }

// Measures reports whether every target of g adds one measurement result.
func (g Gate) Measures() bool { return gates[g].measures }

// Resets reports whether g resets its targets.
func (g Gate) Resets() bool { return gates[g].resets }

// Noise reports whether g is a probabilistic error channel.
func (g Gate) Noise() bool { return gates[g].noise }

// Clifford reports whether g is a unitary Clifford gate.
func (g Gate) Clifford() bool { return gates[g].clifford }

// Annotation reports whether g carries no quantum action (coordinates,
// detectors, observables).
func (g Gate) Annotation() bool {
	return g == QubitCoords || g == Detector || g == ObservableInclude
}
