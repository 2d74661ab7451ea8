package fft

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidNorm reports an unknown normalization mode token.
var ErrInvalidNorm = errors.New("fft: invalid normalization mode")

// Norm selects the scaling convention applied to transform output.
type Norm int

// Normalization modes, matching the reference library's tokens.
const (
	// Backward leaves the forward transform unscaled and scales the
	// inverse by 1/N.
	Backward Norm = iota
	// Ortho scales both directions by 1/sqrt(N).
	Ortho
	// Forward scales the forward transform by 1/N and leaves the
	// inverse unscaled.
	Forward
)

// String returns the reference library's token for n.
func (n Norm) String() string {
	switch n {
	case Backward:
		return "backward"
	case Ortho:
		return "ortho"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// ParseNorm maps a mode token to its Norm; the empty string selects the
// default Backward mode.
func ParseNorm(s string) (Norm, error) {
	switch s {
	case "", "backward":
		return Backward, nil
	case "ortho":
		return Ortho, nil
	case "forward":
		return Forward, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNorm, s)
	}
}

// scaleFactor computes the multiplier forwarded to the engine, where n is
// the product of the transform lengths along the active axes. The engine
// never normalizes on its own.
func scaleFactor(norm Norm, forward bool, n int) (float64, error) {
	switch norm {
	case Backward:
		if forward {
			return 1, nil
		}

		return 1 / float64(n), nil
	case Ortho:
		return 1 / math.Sqrt(float64(n)), nil
	case Forward:
		if forward {
			return 1 / float64(n), nil
		}

		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidNorm, int(norm))
	}
}
