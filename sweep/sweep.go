// Package sweep generates the sweep bits that drive the conditional data
// qubit flips at the start of the dataset circuits.
//
// Sweep bit i controls a CX onto data qubit i, so a shot carries d² bits. Both
// distributions flip either every data qubit or none of them in a shot.
package sweep

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrUnknownDistribution indicates a name other than "rnd" or "half-half".
	ErrUnknownDistribution = errors.New("sweep: unknown distribution")
	// ErrBadCount indicates a non-positive distance or a negative shot count.
	ErrBadCount = errors.New("sweep: bad distance or shot count")
)

// Distribution selects how shots are assigned all-ones or all-zeros rows.
type Distribution string

const (
	// Random picks each row independently with probability ½.
	Random Distribution = "rnd"
	// HalfHalf emits ⌊shots/2⌋ all-ones rows followed by as many all-zeros rows.
	HalfHalf Distribution = "half-half"
)

// ParseDistribution accepts "rnd" or "half-half".
func ParseDistribution(s string) (Distribution, error) {
	dist := Distribution(strings.ToLower(strings.TrimSpace(s)))
	if err := dist.Validate(); err != nil {
		return "", err
	}
	return dist, nil
}

// Validate returns ErrUnknownDistribution for unsupported values.
func (dist Distribution) Validate() error {
	if dist != Random && dist != HalfHalf {
		return fmt.Errorf("distribution %q: %w", string(dist), ErrUnknownDistribution)
	}
	return nil
}

// String returns the distribution name.
func (dist Distribution) String() string { return string(dist) }

// Bits returns the number of sweep bits per shot for distance d.
func Bits(d int) int { return d * d }

// Generate returns the sweep rows for shots shots of a distance-d circuit.
// Random yields exactly shots rows drawn from a PCG source seeded with seed;
// HalfHalf yields 2⌊shots/2⌋ rows and ignores seed.
func Generate(d, shots int, dist Distribution, seed uint64) ([][]bool, error) {
	if d < 1 || shots < 0 {
		return nil, fmt.Errorf("Generate(d=%d, shots=%d): %w", d, shots, ErrBadCount)
	}
	if err := dist.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	n := Bits(d)
	switch dist {
	case HalfHalf:
		half := shots / 2
		rows := make([][]bool, 0, 2*half)
		for i := 0; i < half; i++ {
			rows = append(rows, row(n, true))
		}
		for i := 0; i < half; i++ {
			rows = append(rows, row(n, false))
		}
		return rows, nil
	default:
		coin := distuv.Bernoulli{P: 0.5, Src: rand.NewPCG(seed, seed^pcgStream)}
		rows := make([][]bool, shots)
		for i := range rows {
			rows[i] = row(n, coin.Rand() == 1)
		}
		return rows, nil
	}
}

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

func row(n int, v bool) []bool {
	r := make([]bool, n)
	if v {
		for i := range r {
			r[i] = true
		}
	}
	return r
}
