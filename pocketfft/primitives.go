package pocketfft

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-pocketfft/array"
)

// Binding errors. Every one of them is reported before the foreign call;
// once a call is emitted the engine either returns or the process faults.
var (
	ErrNotLoaded     = errors.New("pocketfft: bridge library not loaded")
	ErrNdimMismatch  = errors.New("pocketfft: input and output array must have the same number of dimensions")
	ErrAxisRange     = errors.New("pocketfft: axis out of range")
	ErrInvalidKind   = errors.New("pocketfft: transform kind must be 1, 2, 3, or 4")
	ErrInvalidThread = errors.New("pocketfft: thread count must be non-negative")
)

// symbol indexes the resolved foreign entry points.
type symbol int

const (
	symC2C symbol = iota
	symR2C
	symC2R
	symC2CSym
	symDCT
	symDST
	symSeparableHartley
	symGenuineHartley
	symFFTPack
	symGoodSize
	symCount
)

// symbolNames lists the exported names of the bridge artifact, in symbol
// order. The foreign signatures are fixed; see bridge.go for the exact
// calling convention of each group.
var symbolNames = [symCount]string{
	"pocketfft_c2c",
	"pocketfft_r2c",
	"pocketfft_c2r",
	"pocketfft_c2c_sym",
	"pocketfft_dct",
	"pocketfft_dst",
	"pocketfft_r2r_separable_hartley",
	"pocketfft_r2r_genuine_hartley",
	"pocketfft_r2r_fftpack",
	"pocketfft_good_size",
}

func validate(in, out *array.Array, axes []uint64, nthreads int) error {
	if in.Ndim() != out.Ndim() {
		return fmt.Errorf("%w: %d vs %d", ErrNdimMismatch, in.Ndim(), out.Ndim())
	}
	if nthreads < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThread, nthreads)
	}

	ndim := uint64(in.Ndim())
	for _, ax := range axes {
		if ax >= ndim {
			return fmt.Errorf("%w: %d for rank %d", ErrAxisRange, ax, ndim)
		}
	}

	return nil
}

func callCmplx[T Integer](sym symbol, in, out *array.Array, axes []T, forward bool, fct float64, nthreads int) error {
	canon := NormalizeAxes(axes)
	if err := validate(in, out, canon, nthreads); err != nil {
		return err
	}

	b, err := load()
	if err != nil {
		return err
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	b.callCmplx(sym, uint64(in.Ndim()),
		lowerArray(in, &pin), lowerArray(out, &pin), lowerAxes(canon, &pin),
		forward, fct, uint64(nthreads))

	return nil
}

// C2C runs the complex-to-complex transform over the given axes, scaling
// the result by fct. The output array is written in place.
func C2C[T Integer](in, out *array.Array, axes []T, forward bool, fct float64, nthreads int) error {
	return callCmplx(symC2C, in, out, axes, forward, fct, nthreads)
}

// R2C runs the real-to-complex transform producing the half spectrum
// along the last transformed axis.
func R2C[T Integer](in, out *array.Array, axes []T, forward bool, fct float64, nthreads int) error {
	return callCmplx(symR2C, in, out, axes, forward, fct, nthreads)
}

// C2R runs the complex-to-real inverse of R2C; the output extent along
// the last transformed axis determines the reconstructed length.
func C2R[T Integer](in, out *array.Array, axes []T, forward bool, fct float64, nthreads int) error {
	return callCmplx(symC2R, in, out, axes, forward, fct, nthreads)
}

// C2CSym runs the complex transform of a real-valued input, exploiting
// Hermitian symmetry internally while still producing the full complex
// spectrum.
func C2CSym[T Integer](in, out *array.Array, axes []T, forward bool, fct float64, nthreads int) error {
	return callCmplx(symC2CSym, in, out, axes, forward, fct, nthreads)
}

func callReal[T Integer](sym symbol, in, out *array.Array, axes []T, kind int, fct float64, ortho bool, nthreads int) error {
	if kind < 1 || kind > 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidKind, kind)
	}

	canon := NormalizeAxes(axes)
	if err := validate(in, out, canon, nthreads); err != nil {
		return err
	}

	b, err := load()
	if err != nil {
		return err
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	b.callReal(sym, uint64(in.Ndim()),
		lowerArray(in, &pin), lowerArray(out, &pin), lowerAxes(canon, &pin),
		uint64(kind), fct, ortho, uint64(nthreads))

	return nil
}

// DCT runs the discrete cosine transform of the given kind (1-4).
func DCT[T Integer](in, out *array.Array, axes []T, kind int, fct float64, ortho bool, nthreads int) error {
	return callReal(symDCT, in, out, axes, kind, fct, ortho, nthreads)
}

// DST runs the discrete sine transform of the given kind (1-4).
func DST[T Integer](in, out *array.Array, axes []T, kind int, fct float64, ortho bool, nthreads int) error {
	return callReal(symDST, in, out, axes, kind, fct, ortho, nthreads)
}

func callHartley[T Integer](sym symbol, in, out *array.Array, axes []T, fct float64, nthreads int) error {
	canon := NormalizeAxes(axes)
	if err := validate(in, out, canon, nthreads); err != nil {
		return err
	}

	b, err := load()
	if err != nil {
		return err
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	b.callHartley(sym, uint64(in.Ndim()),
		lowerArray(in, &pin), lowerArray(out, &pin), lowerAxes(canon, &pin),
		fct, uint64(nthreads))

	return nil
}

// SeparableHartley runs the axis-separable Hartley transform.
func SeparableHartley[T Integer](in, out *array.Array, axes []T, fct float64, nthreads int) error {
	return callHartley(symSeparableHartley, in, out, axes, fct, nthreads)
}

// GenuineHartley runs the genuine multi-dimensional Hartley transform.
func GenuineHartley[T Integer](in, out *array.Array, axes []T, fct float64, nthreads int) error {
	return callHartley(symGenuineHartley, in, out, axes, fct, nthreads)
}

// R2RFFTPack runs the FFTPACK-layout packed real transform.
func R2RFFTPack[T Integer](in, out *array.Array, axes []T, real2hermitian, forward bool, fct float64, nthreads int) error {
	canon := NormalizeAxes(axes)
	if err := validate(in, out, canon, nthreads); err != nil {
		return err
	}

	b, err := load()
	if err != nil {
		return err
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	b.callFFTPack(uint64(in.Ndim()),
		lowerArray(in, &pin), lowerArray(out, &pin), lowerAxes(canon, &pin),
		real2hermitian, forward, fct, uint64(nthreads))

	return nil
}

// GoodSize returns the smallest length >= target the engine can factor
// efficiently; real selects the real-transform heuristic.
func GoodSize(target uint64, real bool) (uint64, error) {
	b, err := load()
	if err != nil {
		return 0, err
	}

	return b.callGoodSize(target, real), nil
}
