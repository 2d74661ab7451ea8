// Package array provides the minimal N-dimensional array layer the FFT
// bindings operate on.
//
// Arrays are always C-contiguous with native element order; this is the
// only layout the native transform engine accepts, so the package never
// produces anything else. The package intentionally implements no
// arithmetic: it exists to carry element type, shape, and stride metadata
// across the foreign boundary and to perform the casting and zero-pad/crop
// bookkeeping the high-level wrappers need before a transform runs.
package array
