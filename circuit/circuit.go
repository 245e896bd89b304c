package circuit

import (
	"fmt"
	"slices"
)

// Op is one instruction. Repetitions and Body are set only on REPEAT ops.
// Ops are treated as values: nothing in this package mutates Targets or Args
// after the Op is built, and callers must not either.
type Op struct {
	Gate        Gate
	Targets     []Target
	Args        []float64
	Repetitions int
	Body        Circuit
}

// NewOp builds an Op, copying targets and args.
func NewOp(g Gate, targets []Target, args ...float64) Op {
	return Op{Gate: g, Targets: slices.Clone(targets), Args: slices.Clone(args)}
}

// Circuit is an immutable instruction stream. The zero value is empty.
type Circuit struct {
	ops []Op
}

// New returns a circuit holding ops in order.
func New(ops ...Op) Circuit {
	return Circuit{ops: slices.Clip(slices.Clone(ops))}
}

// Ops returns a copy of the top-level instructions.
func (c Circuit) Ops() []Op { return slices.Clone(c.ops) }

// Len returns the number of top-level instructions.
func (c Circuit) Len() int { return len(c.ops) }

// Empty reports whether c has no instructions.
func (c Circuit) Empty() bool { return len(c.ops) == 0 }

// Concat returns c followed by others. Operands are never modified, so
// a.Concat(b).Concat(d) and a.Concat(b.Concat(d)) are the same stream.
// Complexity: O(total ops).
func (c Circuit) Concat(others ...Circuit) Circuit {
	n := len(c.ops)
	for _, o := range others {
		n += len(o.ops)
	}
	ops := make([]Op, 0, n)
	ops = append(ops, c.ops...)
	for _, o := range others {
		ops = append(ops, o.ops...)
	}
	return Circuit{ops: ops}
}

// Repeat returns c executed n times: empty for n <= 0, c itself for n == 1,
// otherwise a single REPEAT block.
func (c Circuit) Repeat(n int) Circuit {
	switch {
	case n <= 0 || c.Empty():
		return Circuit{}
	case n == 1:
		return c
	default:
		return Circuit{ops: []Op{{Gate: RepeatBlock, Repetitions: n, Body: c}}}
	}
}

// Flatten unrolls every REPEAT block.
func (c Circuit) Flatten() Circuit {
	var ops []Op
	for _, op := range c.ops {
		if op.Gate != RepeatBlock {
			ops = append(ops, op)
			continue
		}
		body := op.Body.Flatten().ops
		for i := 0; i < op.Repetitions; i++ {
			ops = append(ops, body...)
		}
	}
	return Circuit{ops: slices.Clip(ops)}
}

// walk visits every op as executed, expanding REPEAT blocks.
func (c Circuit) walk(visit func(Op)) {
	for _, op := range c.ops {
		if op.Gate != RepeatBlock {
			visit(op)
			continue
		}
		for i := 0; i < op.Repetitions; i++ {
			op.Body.walk(visit)
		}
	}
}

// NumMeasurements returns the number of measurement results c produces.
func (c Circuit) NumMeasurements() int {
	n := 0
	c.walk(func(op Op) {
		if op.Gate.Measures() {
			n += len(op.Targets)
		}
	})
	return n
}

// NumDetectors returns the number of DETECTOR instructions executed.
func (c Circuit) NumDetectors() int { return c.Count(Detector) }

// NumObservables returns one more than the largest observable index used.
func (c Circuit) NumObservables() int {
	n := 0
	c.walk(func(op Op) {
		if op.Gate == ObservableInclude && len(op.Args) > 0 {
			n = max(n, int(op.Args[0])+1)
		}
	})
	return n
}

// NumQubits returns one more than the largest qubit index used.
func (c Circuit) NumQubits() int {
	n := 0
	c.walk(func(op Op) {
		for _, t := range op.Targets {
			if t.Kind == KindQubit {
				n = max(n, t.Value+1)
			}
		}
	})
	return n
}

// Count returns how many times an op with gate g is executed.
func (c Circuit) Count(g Gate) int {
	n := 0
	c.walk(func(op Op) {
		if op.Gate == g {
			n++
		}
	})
	return n
}

// Detectors returns the record offsets of every executed DETECTOR, in order.
func (c Circuit) Detectors() [][]int {
	var out [][]int
	c.walk(func(op Op) {
		if op.Gate == Detector {
			out = append(out, recOffsets(op.Targets))
		}
	})
	return out
}

// Observable returns the record offsets included in observable k.
func (c Circuit) Observable(k int) []int {
	var out []int
	c.walk(func(op Op) {
		if op.Gate == ObservableInclude && len(op.Args) > 0 && int(op.Args[0]) == k {
			out = append(out, recOffsets(op.Targets)...)
		}
	})
	return out
}

func recOffsets(ts []Target) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		if t.Kind == KindRec {
			out = append(out, t.Value)
		}
	}
	return out
}

// Validate checks gate names, target kinds, pair counts and that every
// rec[-k] refers to a measurement that already happened.
// Complexity: O(total targets) with REPEAT bodies checked once.
func (c Circuit) Validate() error {
	_, err := c.validate(0)
	return err
}

// validate checks c given measured results before it and returns the count after.
func (c Circuit) validate(measured int) (int, error) {
	for i, op := range c.ops {
		info, ok := gates[op.Gate]
		if !ok {
			return 0, fmt.Errorf("op %d: %q: %w", i, op.Gate, ErrUnknownGate)
		}
		if op.Gate == RepeatBlock {
			if op.Repetitions < 0 {
				return 0, fmt.Errorf("op %d: REPEAT %d: %w", i, op.Repetitions, ErrSyntax)
			}
			// The first iteration sees the fewest prior results.
			after, err := op.Body.validate(measured)
			if err != nil {
				return 0, fmt.Errorf("op %d: REPEAT: %w", i, err)
			}
			measured += (after - measured) * op.Repetitions
			continue
		}
		if info.pairs && len(op.Targets)%2 != 0 {
			return 0, fmt.Errorf("op %d: %s with %d targets: %w", i, op.Gate, len(op.Targets), ErrPairTargets)
		}
		for k, t := range op.Targets {
			if err := checkTarget(op.Gate, info, k, t, measured); err != nil {
				return 0, fmt.Errorf("op %d: %w", i, err)
			}
		}
		if info.measures {
			measured += len(op.Targets)
		}
	}
	return measured, nil
}

func checkTarget(g Gate, info gateInfo, k int, t Target, measured int) error {
	switch {
	case g == Tick:
		return fmt.Errorf("%s takes no targets: %w", g, ErrTargetKind)
	case info.recs && t.Kind != KindRec:
		return fmt.Errorf("%s target %s: %w", g, t, ErrTargetKind)
	case !info.recs && t.Kind != KindQubit && !(info.controls && k%2 == 0):
		return fmt.Errorf("%s target %s: %w", g, t, ErrTargetKind)
	case t.Kind == KindRec && (t.Value >= 0 || -t.Value > measured):
		return fmt.Errorf("%s %s with %d results recorded: %w", g, t, measured, ErrRecordRange)
	}
	return nil
}
