package fft

import (
	"errors"
	"fmt"
)

// Axis validation errors, reported before any foreign call.
var (
	ErrAxisOutOfRange = errors.New("fft: axis out of range")
	ErrDuplicateAxes  = errors.New("fft: axes must be unique")
	ErrEmptyAxes      = errors.New("fft: axes must not be empty")
)

// resolveAxis maps a possibly negative axis index onto [0, ndim).
func resolveAxis(axis, ndim int) (int, error) {
	resolved := axis
	if resolved < 0 {
		resolved += ndim
	}
	if resolved < 0 || resolved >= ndim {
		return 0, fmt.Errorf("%w: %d for rank %d", ErrAxisOutOfRange, axis, ndim)
	}

	return resolved, nil
}

// resolveAxes resolves every entry against ndim and rejects duplicates,
// including collisions introduced by negative-index wraparound. The
// result references distinct logical dimensions or an error is returned.
func resolveAxes(axes []int, ndim int) ([]int, error) {
	if len(axes) == 0 {
		return nil, ErrEmptyAxes
	}

	resolved := make([]int, len(axes))
	seen := make(map[int]struct{}, len(axes))

	for i, ax := range axes {
		r, err := resolveAxis(ax, ndim)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: axis %d repeats", ErrDuplicateAxes, r)
		}

		seen[r] = struct{}{}
		resolved[i] = r
	}

	return resolved, nil
}
