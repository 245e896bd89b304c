// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

// ErrUnknownBasis indicates a basis other than X or Z.
var ErrUnknownBasis = errors.New("surface: unknown basis")

// ErrTooFewRounds indicates fewer than one stabilizer round.
var ErrTooFewRounds = errors.New("surface: rounds must be at least 1")

// ErrInvariant indicates an internal construction inconsistency.
// Callers should treat it as fatal; retrying with the same inputs fails again.
var ErrInvariant = errors.New("surface: construction invariant violated")

// invariantf wraps cause with method context so that errors.Is matches both
// ErrInvariant and the cause.
func invariantf(method string, cause error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrInvariant, cause)
}
