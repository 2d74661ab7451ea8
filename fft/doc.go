// Package fft provides the user-facing transform functions on top of the
// native pocketfft bridge, mirroring the call surface of the reference
// scipy.fft module: optional target length or shape, axis selection with
// the familiar defaults, normalization modes, an overwrite hint, a worker
// count, and kind/orthogonalize settings for the cosine and sine families.
//
// The package decides, from the input's element type and the requested
// semantics, which foreign primitive runs and with which scale factor; the
// transform mathematics itself happens entirely inside the native engine.
// All argument validation (axis range, duplicate axes, unsupported element
// types) happens before any foreign call.
package fft
