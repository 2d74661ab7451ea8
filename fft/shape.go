package fft

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pocketfft/array"
)

// ErrShapeAxesMismatch reports inconsistent shape and axes arguments.
var ErrShapeAxesMismatch = errors.New("fft: shape and axes have different lengths")

// resolveShapeAxes applies the reference library's inference rules for
// multi-axis transforms: with neither shape nor axes given the transform
// covers every axis at its natural length; a shape without axes selects
// the trailing dimensions; axes without a shape keep the input's extents.
// A shape entry of -1 keeps the corresponding input extent.
func resolveShapeAxes(x *array.Array, s, axes []int, hasAxes bool) (lengths, resolved []int, err error) {
	ndim := x.Ndim()
	shape := x.Shape()

	switch {
	case hasAxes:
		resolved, err = resolveAxes(axes, ndim)
		if err != nil {
			return nil, nil, err
		}
	case s != nil:
		if len(s) > ndim {
			return nil, nil, fmt.Errorf("%w: shape has %d entries for rank %d", ErrShapeAxesMismatch, len(s), ndim)
		}

		resolved = make([]int, len(s))
		for i := range s {
			resolved[i] = ndim - len(s) + i
		}
	default:
		if ndim == 0 {
			return nil, nil, ErrEmptyAxes
		}

		resolved = make([]int, ndim)
		for i := range resolved {
			resolved[i] = i
		}
	}

	if s == nil {
		lengths = make([]int, len(resolved))
		for i, ax := range resolved {
			lengths[i] = shape[ax]
		}

		return lengths, resolved, nil
	}

	if len(s) != len(resolved) {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrShapeAxesMismatch, len(s), len(resolved))
	}

	lengths = make([]int, len(s))
	for i, n := range s {
		if n == -1 {
			n = shape[resolved[i]]
		}
		if n < 1 {
			return nil, nil, fmt.Errorf("%w: %d along axis %d", ErrInvalidLength, n, resolved[i])
		}

		lengths[i] = n
	}

	return lengths, resolved, nil
}

// resizeTo pads or crops x along each listed axis until its extents match
// lengths, returning x unchanged when nothing differs.
func resizeTo(x *array.Array, axes, lengths []int) (*array.Array, error) {
	out := x
	shape := x.Shape()

	for i, ax := range axes {
		if shape[ax] == lengths[i] {
			continue
		}

		var err error

		out, err = out.ResizeAxis(ax, lengths[i])
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
