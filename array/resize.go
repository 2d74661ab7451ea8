package array

import "fmt"

// ResizeAxis returns a fresh array whose extent along axis is n. Elements
// within the overlapping range are copied; a grown axis is zero-padded at
// the end, a shrunk axis is cropped. Negative axis indices resolve against
// the rank.
func (a *Array) ResizeAxis(axis, n int) (*Array, error) {
	if axis < 0 {
		axis += len(a.shape)
	}
	if axis < 0 || axis >= len(a.shape) {
		return nil, fmt.Errorf("%w: %d for rank %d", ErrAxisRange, axis, len(a.shape))
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidShape, n)
	}

	shape := a.Shape()
	old := shape[axis]
	shape[axis] = n

	out, err := New(a.dtype, shape...)
	if err != nil {
		return nil, err
	}
	if n == 0 || a.Len() == 0 {
		return out, nil
	}

	// Bytes per step along the resized axis, and the number of
	// independent outer blocks before it.
	inner := a.dtype.Size()
	for _, s := range a.shape[axis+1:] {
		inner *= s
	}

	outer := 1
	for _, s := range a.shape[:axis] {
		outer *= s
	}

	keep := min(old, n)
	for o := range outer {
		src := a.data[o*old*inner:]
		dst := out.data[o*n*inner:]
		copy(dst[:keep*inner], src[:keep*inner])
	}

	return out, nil
}
