package fft

import (
	"fmt"

	"github.com/cwbudde/algo-pocketfft/array"
	"github.com/cwbudde/algo-pocketfft/pocketfft"
)

// RFFT computes the discrete Fourier transform of real input, storing
// only the non-redundant half spectrum: the active axis shrinks to
// n/2 + 1 bins. Complex input is rejected.
func RFFT(x *array.Array, opts ...Option) (*array.Array, error) {
	cfg := applyOptions(opts)

	fdt, err := realType(x.DType())
	if err != nil {
		return nil, err
	}

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

	workers, err := resolveWorkers(cfg.workers)
	if err != nil {
		return nil, err
	}

	fct, err := scaleFactor(cfg.norm, true, n)
	if err != nil {
		return nil, err
	}

	work, err := resizeTo(x, []int{resolved}, []int{n})
	if err != nil {
		return nil, err
	}
	if work.DType() != fdt {
		if work, err = work.AsType(fdt); err != nil {
			return nil, err
		}
	}

	shape := work.Shape()
	shape[resolved] = n/2 + 1

	out, err := array.New(fdt.Complex(), shape...)
	if err != nil {
		return nil, err
	}
	if err := pocketfft.R2C(work, out, []int{resolved}, true, fct, workers); err != nil {
		return nil, err
	}

	return out, nil
}

// IRFFT inverts RFFT, reconstructing a real signal of length n along the
// active axis; without WithLength the output length defaults to
// 2*(m-1) for an input extent of m bins.
func IRFFT(x *array.Array, opts ...Option) (*array.Array, error) {
	cfg := applyOptions(opts)

	cdt, err := complexType(x.DType())
	if err != nil {
		return nil, err
	}

	axis := -1
	if cfg.hasAxis {
		axis = cfg.axis
	}

	resolved, err := resolveAxis(axis, x.Ndim())
	if err != nil {
		return nil, err
	}

	n := 2 * (x.Shape()[resolved] - 1)
	if cfg.hasN {
		n = cfg.n
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	workers, err := resolveWorkers(cfg.workers)
	if err != nil {
		return nil, err
	}

	fct, err := scaleFactor(cfg.norm, false, n)
	if err != nil {
		return nil, err
	}

	// The engine reads exactly n/2+1 spectrum bins; pad or crop the
	// spectrum first, then hand it over in the complex companion type.
	work := x
	if work.DType() != cdt {
		if work, err = work.AsType(cdt); err != nil {
			return nil, err
		}
	}
	if work, err = resizeTo(work, []int{resolved}, []int{n/2 + 1}); err != nil {
		return nil, err
	}

	shape := work.Shape()
	shape[resolved] = n

	out, err := array.New(cdt.Real(), shape...)
	if err != nil {
		return nil, err
	}
	if err := pocketfft.C2R(work, out, []int{resolved}, false, fct, workers); err != nil {
		return nil, err
	}

	return out, nil
}
