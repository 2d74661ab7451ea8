package pocketfft

import "unsafe"

// Integer is any fixed-width or platform integer element type an axis list
// may arrive as.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// NormalizeAxes returns axes in the engine's canonical form: a densely
// packed, natively ordered sequence of 64-bit values.
//
// When the element type is already 8 bytes wide the input storage is
// reinterpreted without copying, so the result aliases axes. Any narrower
// element type produces a fresh copy with element-wise widening. Axis
// values must be non-negative by the calling convention; callers resolve
// negative indices before reaching this layer.
func NormalizeAxes[T Integer](axes []T) []uint64 {
	var zero T
	if unsafe.Sizeof(zero) == 8 {
		if len(axes) == 0 {
			return nil
		}

		return unsafe.Slice((*uint64)(unsafe.Pointer(&axes[0])), len(axes))
	}

	out := make([]uint64, len(axes))
	for i, ax := range axes {
		out[i] = uint64(ax)
	}

	return out
}
