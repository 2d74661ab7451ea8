// Package pocketfft exposes the native pocketfft bridge library as typed
// Go callables.
//
// The package implements no transform mathematics. It locates the bridge
// artifact once per process, resolves its ten entry points, and for each
// one provides a Go function that validates argument metadata, normalizes
// the axis list into the dense 64-bit form the engine expects, lowers
// array arguments to the C record the bridge reads, and performs exactly
// one foreign call. Results are written in place into the caller-supplied
// output array.
//
// The engine performs no checking of its own: every precondition the
// functions here enforce (equal input/output rank, in-range axes,
// contiguous buffers from package array) exists to keep an invalid call
// from ever reaching the boundary.
package pocketfft
