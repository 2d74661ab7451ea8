package fft

import (
	"fmt"

	"github.com/cwbudde/algo-pocketfft/array"
	"github.com/cwbudde/algo-pocketfft/pocketfft"
)

// DHT computes the discrete Hartley transform over all axes by default,
// using the engine's genuine multi-dimensional kernel. The Hartley
// transform is its own inverse up to scaling; IDHT applies the inverse
// scaling convention.
func DHT(x *array.Array, opts ...Option) (*array.Array, error) {
	return hartley(x, true, applyOptions(opts))
}

// IDHT computes the inverse discrete Hartley transform (1/N scaled under
// the default normalization).
func IDHT(x *array.Array, opts ...Option) (*array.Array, error) {
	return hartley(x, false, applyOptions(opts))
}

func hartley(x *array.Array, forward bool, cfg config) (*array.Array, error) {
	fdt, err := realType(x.DType())
	if err != nil {
		return nil, err
	}

	axes, hasAxes := cfg.axes, cfg.hasAxes
	if cfg.hasAxis && !hasAxes {
		axes, hasAxes = []int{cfg.axis}, true
	}

	lengths, resolved, err := resolveShapeAxes(x, cfg.shape, axes, hasAxes)
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
			return nil, fmt.Errorf("%w: %d along axis %d", ErrInvalidLength, n, resolved[i])
		}
		total *= n
	}

	fct, err := scaleFactor(cfg.norm, forward, total)
	if err != nil {
		return nil, err
	}

	work, err := resizeTo(x, resolved, lengths)
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

	if err := pocketfft.GenuineHartley(work, out, resolved, fct, workers); err != nil {
		return nil, err
	}

	return out, nil
}
