package fft

import (
	"fmt"

	"github.com/cwbudde/algo-pocketfft/pocketfft"
)

// NextFastLen returns the smallest length >= target that the engine can
// transform efficiently; real selects the heuristic for the real
// transform family. The factorization heuristic itself lives inside the
// native engine.
func NextFastLen(target int, real bool) (int, error) {
	if target < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, target)
	}

	n, err := pocketfft.GoodSize(uint64(target), real)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
