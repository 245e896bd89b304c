package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetKind distinguishes what a Target value refers to.
type TargetKind uint8

const (
	// KindQubit targets a qubit index.
	KindQubit TargetKind = iota
	// KindRec targets a backward measurement record offset (always < 0).
	KindRec
	// KindSweep targets a sweep bit index.
	KindSweep
)

// Target is one operand of an Op.
type Target struct {
	Kind  TargetKind
	Value int
}

// Qubit returns a qubit target.
func Qubit(q int) Target { return Target{Kind: KindQubit, Value: q} }

// Rec returns a measurement record target; offset -1 is the latest result.
func Rec(offset int) Target { return Target{Kind: KindRec, Value: offset} }

// SweepBit returns a sweep-bit target.
func SweepBit(i int) Target { return Target{Kind: KindSweep, Value: i} }

// Qubits converts qubit indices to targets.
func Qubits(qs ...int) []Target {
	ts := make([]Target, len(qs))
	for i, q := range qs {
		ts[i] = Qubit(q)
	}
	return ts
}

// Recs converts record offsets to targets.
func Recs(offsets ...int) []Target {
	ts := make([]Target, len(offsets))
	for i, o := range offsets {
		ts[i] = Rec(o)
	}
	return ts
}

// String renders t as "7", "rec[-3]" or "sweep[2]".
func (t Target) String() string {
	switch t.Kind {
	case KindRec:
		return "rec[" + strconv.Itoa(t.Value) + "]"
	case KindSweep:
		return "sweep[" + strconv.Itoa(t.Value) + "]"
	default:
		return strconv.Itoa(t.Value)
	}
}

// parseTarget is the inverse of Target.String.
func parseTarget(s string) (Target, error) {
	bracket := func(prefix string) (int, bool, error) {
		if !strings.HasPrefix(s, prefix+"[") || !strings.HasSuffix(s, "]") {
			return 0, false, nil
		}
		v, err := strconv.Atoi(s[len(prefix)+1 : len(s)-1])
		return v, true, err
	}

	if v, ok, err := bracket("rec"); ok {
		if err != nil || v >= 0 {
			return Target{}, fmt.Errorf("target %q: %w", s, ErrSyntax)
		}
		return Rec(v), nil
	}
	if v, ok, err := bracket("sweep"); ok {
		if err != nil || v < 0 {
			return Target{}, fmt.Errorf("target %q: %w", s, ErrSyntax)
		}
		return SweepBit(v), nil
	}
	q, err := strconv.Atoi(s)
	if err != nil || q < 0 {
		return Target{}, fmt.Errorf("target %q: %w", s, ErrSyntax)
	}
	return Qubit(q), nil
}
