package fft

import (
	"fmt"

	"github.com/cwbudde/algo-pocketfft/array"
	"github.com/cwbudde/algo-pocketfft/pocketfft"
)

// FFT computes the one-dimensional discrete Fourier transform along the
// selected axis (the last by default). Real and integer input dispatches
// to the symmetric primitive and yields the complex companion type per
// the dispatch table; complex input transforms in its own precision.
func FFT(x *array.Array, opts ...Option) (*array.Array, error) {
	return c2c1d(x, true, applyOptions(opts))
}

// IFFT computes the inverse of FFT, scaled according to the
// normalization mode (1/N by default).
func IFFT(x *array.Array, opts ...Option) (*array.Array, error) {
	return c2c1d(x, false, applyOptions(opts))
}

// FFT2 computes the discrete Fourier transform over the last two axes by
// default.
func FFT2(x *array.Array, opts ...Option) (*array.Array, error) {
	return c2cnd(x, true, applyOptions(opts), []int{-2, -1})
}

// IFFT2 computes the inverse of FFT2.
func IFFT2(x *array.Array, opts ...Option) (*array.Array, error) {
	return c2cnd(x, false, applyOptions(opts), []int{-2, -1})
}

// FFTN computes the discrete Fourier transform over all axes by default,
// or over the axes selected with WithAxes/WithShape.
func FFTN(x *array.Array, opts ...Option) (*array.Array, error) {
	return c2cnd(x, true, applyOptions(opts), nil)
}

// IFFTN computes the inverse of FFTN.
func IFFTN(x *array.Array, opts ...Option) (*array.Array, error) {
	return c2cnd(x, false, applyOptions(opts), nil)
}

func c2c1d(x *array.Array, forward bool, cfg config) (*array.Array, error) {
	axis := -1
	if cfg.hasAxis {
		axis = cfg.axis
	}

	resolved, err := resolveAxis(axis, x.Ndim())
	if err != nil {
		return nil, err
	}

	n := x.Shape()[resolved]
	if cfg.hasN {
		n = cfg.n
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return transformC2C(x, forward, cfg, []int{resolved}, []int{n})
}

func c2cnd(x *array.Array, forward bool, cfg config, defaultAxes []int) (*array.Array, error) {
	axes, hasAxes := cfg.axes, cfg.hasAxes
	if !hasAxes && defaultAxes != nil {
		axes, hasAxes = defaultAxes, true
	}

	lengths, resolved, err := resolveShapeAxes(x, cfg.shape, axes, hasAxes)
	if err != nil {
		return nil, err
	}

	return transformC2C(x, forward, cfg, resolved, lengths)
}

// transformC2C is the shared tail of the complex transform family:
// resolve dtype and scale, pad or crop, pick the plain or symmetric
// primitive, allocate (or reuse) the result, and emit the foreign call.
func transformC2C(x *array.Array, forward bool, cfg config, axes, lengths []int) (*array.Array, error) {
	cdt, err := complexType(x.DType())
	if err != nil {
		return nil, err
	}

	workers, err := resolveWorkers(cfg.workers)
	if err != nil {
		return nil, err
	}

	total := 1
	for i, n := range lengths {
		if n < 1 {
			return nil, fmt.Errorf("%w: %d along axis %d", ErrInvalidLength, n, axes[i])
		}
		total *= n
	}

	fct, err := scaleFactor(cfg.norm, forward, total)
	if err != nil {
		return nil, err
	}

	work, err := resizeTo(x, axes, lengths)
	if err != nil {
		return nil, err
	}

	if !x.DType().IsComplex() {
		// Real-valued input: the symmetric primitive reads a real
		// buffer and fills the full complex spectrum.
		if work.DType() != cdt.Real() {
			if work, err = work.AsType(cdt.Real()); err != nil {
				return nil, err
			}
		}

		out, err := array.New(cdt, work.Shape()...)
		if err != nil {
			return nil, err
		}
		if err := pocketfft.C2CSym(work, out, axes, forward, fct, workers); err != nil {
			return nil, err
		}

		return out, nil
	}

	out := work
	switch {
	case work != x:
		// work is a private resized copy; transform it in place.
	case cfg.overwrite:
		// Caller allows clobbering x; the engine supports in-place c2c.
	default:
		if out, err = array.New(cdt, work.Shape()...); err != nil {
			return nil, err
		}
	}

	if err := pocketfft.C2C(work, out, axes, forward, fct, workers); err != nil {
		return nil, err
	}

	return out, nil
}
