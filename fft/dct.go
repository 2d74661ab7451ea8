package fft

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pocketfft/array"
	"github.com/cwbudde/algo-pocketfft/pocketfft"
)

// ErrInvalidKind reports a cosine/sine transform kind outside 1..4, or a
// length too short for the requested kind.
var ErrInvalidKind = errors.New("fft: invalid cosine/sine transform kind")

// DCT computes the discrete cosine transform of the given kind (2 by
// default) along the selected axis. Complex input is rejected.
func DCT(x *array.Array, opts ...Option) (*array.Array, error) {
	return r2r(x, true, true, applyOptions(opts))
}

// IDCT computes the inverse discrete cosine transform; kinds 2 and 3 are
// each other's inverses, kinds 1 and 4 are their own.
func IDCT(x *array.Array, opts ...Option) (*array.Array, error) {
	return r2r(x, false, true, applyOptions(opts))
}

// DST computes the discrete sine transform of the given kind (2 by
// default) along the selected axis. Complex input is rejected.
func DST(x *array.Array, opts ...Option) (*array.Array, error) {
	return r2r(x, true, false, applyOptions(opts))
}

// IDST computes the inverse discrete sine transform.
func IDST(x *array.Array, opts ...Option) (*array.Array, error) {
	return r2r(x, false, false, applyOptions(opts))
}

// inverseKind maps a transform kind to the kind that inverts it.
var inverseKind = map[int]int{1: 1, 2: 3, 3: 2, 4: 4}

// logicalLength returns the length the normalization convention of the
// cosine/sine families is defined over: twice the sample count, adjusted
// for the boundary conditions of the kind-1 transforms.
func logicalLength(cosine bool, kind, n int) int {
	if kind == 1 {
		if cosine {
			return 2 * (n - 1)
		}

		return 2 * (n + 1)
	}

	return 2 * n
}

func r2r(x *array.Array, forward, cosine bool, cfg config) (*array.Array, error) {
	fdt, err := realType(x.DType())
	if err != nil {
		return nil, err
	}

	kind := cfg.kind
	if kind < 1 || kind > 4 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
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
	if cosine && kind == 1 && n < 2 {
		return nil, fmt.Errorf("%w: kind 1 needs at least 2 points, got %d", ErrInvalidKind, n)
	}

	workers, err := resolveWorkers(cfg.workers)
	if err != nil {
		return nil, err
	}

	fct, err := scaleFactor(cfg.norm, forward, logicalLength(cosine, kind, n))
	if err != nil {
		return nil, err
	}

	ortho := cfg.norm == Ortho
	if cfg.ortho != nil {
		ortho = *cfg.ortho
	}
	if !forward {
		kind = inverseKind[kind]
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

	out := work
	if work == x && !cfg.overwrite {
		if out, err = array.New(fdt, work.Shape()...); err != nil {
			return nil, err
		}
	}

	call := pocketfft.DCT[int]
	if !cosine {
		call = pocketfft.DST[int]
	}
	if err := call(work, out, []int{resolved}, kind, fct, ortho, workers); err != nil {
		return nil, err
	}

	return out, nil
}
