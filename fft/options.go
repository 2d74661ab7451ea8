package fft

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
)

// Option and worker errors.
var (
	ErrInvalidLength  = errors.New("fft: transform length must be positive")
	ErrInvalidWorkers = errors.New("fft: workers must not resolve to less than one")
)

type config struct {
	n         int
	hasN      bool
	shape     []int
	axis      int
	hasAxis   bool
	axes      []int
	hasAxes   bool
	norm      Norm
	overwrite bool
	workers   int
	kind      int
	ortho     *bool
}

// Option adjusts a transform call; the defaults replicate the reference
// library's keyword defaults.
type Option func(*config)

func applyOptions(opts []Option) config {
	cfg := config{kind: 2}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLength sets the transform length for single-axis transforms. The
// input is zero-padded or cropped along the active axis to match.
func WithLength(n int) Option {
	return func(cfg *config) { cfg.n, cfg.hasN = n, true }
}

// WithShape sets the per-axis transform lengths for multi-axis
// transforms. An entry of -1 keeps the input's extent along that axis.
func WithShape(s ...int) Option {
	return func(cfg *config) { cfg.shape = slices.Clone(s) }
}

// WithAxis selects the active axis for single-axis transforms; negative
// values count from the last dimension. The default is the last axis.
func WithAxis(axis int) Option {
	return func(cfg *config) { cfg.axis, cfg.hasAxis = axis, true }
}

// WithAxes selects the active axes for multi-axis transforms; negative
// values count from the last dimension.
func WithAxes(axes ...int) Option {
	return func(cfg *config) { cfg.axes, cfg.hasAxes = slices.Clone(axes), true }
}

// WithNorm sets the normalization mode. The default is Backward.
func WithNorm(norm Norm) Option {
	return func(cfg *config) { cfg.norm = norm }
}

// WithOverwrite permits reusing the input's buffer for the result when
// element type and shape allow it.
func WithOverwrite(overwrite bool) Option {
	return func(cfg *config) { cfg.overwrite = overwrite }
}

// WithWorkers sets the engine's worker thread count. Negative values wrap
// around the CPU count, so -1 means all CPUs. The default is one worker.
func WithWorkers(workers int) Option {
	return func(cfg *config) { cfg.workers = workers }
}

// WithKind sets the cosine/sine transform kind (1 through 4); the default
// is 2. Ignored by the complex transform family.
func WithKind(kind int) Option {
	return func(cfg *config) { cfg.kind = kind }
}

// WithOrthogonalize overrides the orthogonalization flag of the cosine
// and sine transforms; the default follows the normalization mode.
func WithOrthogonalize(ortho bool) Option {
	return func(cfg *config) { cfg.ortho = &ortho }
}

func resolveWorkers(workers int) (int, error) {
	switch {
	case workers == 0:
		return 1, nil
	case workers > 0:
		return workers, nil
	default:
		w := runtime.NumCPU() + 1 + workers
		if w < 1 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
		}

		return w, nil
	}
}
