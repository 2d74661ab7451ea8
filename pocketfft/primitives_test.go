package pocketfft

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pocketfft/array"
)

func TestValidationRunsBeforeForeignCall(t *testing.T) {
	// All of these must fail regardless of whether the bridge library
	// is present: the checks precede loading and dispatch.
	in1, _ := array.New(array.Complex128, 4)
	in2, _ := array.New(array.Complex128, 2, 2)
	out1, _ := array.New(array.Complex128, 4)
	out2, _ := array.New(array.Complex128, 2, 2)

	t.Run("ndim mismatch", func(t *testing.T) {
		err := C2C(in1, out2, []int{0}, true, 1, 1)
		if !errors.Is(err, ErrNdimMismatch) {
			t.Fatalf("got %v, want ErrNdimMismatch", err)
		}
	})

	t.Run("axis out of range", func(t *testing.T) {
		err := C2C(in1, out1, []int{1}, true, 1, 1)
		if !errors.Is(err, ErrAxisRange) {
			t.Fatalf("got %v, want ErrAxisRange", err)
		}
	})

	t.Run("negative axis rejected", func(t *testing.T) {
		// Negative indices widen to huge uint64 values; the layer
		// never resolves them here, it rejects them.
		err := C2C(in2, out2, []int{-1}, true, 1, 1)
		if !errors.Is(err, ErrAxisRange) {
			t.Fatalf("got %v, want ErrAxisRange", err)
		}
	})

	t.Run("negative thread count", func(t *testing.T) {
		err := GenuineHartley(in1, out1, []int{0}, 1, -1)
		if !errors.Is(err, ErrInvalidThread) {
			t.Fatalf("got %v, want ErrInvalidThread", err)
		}
	})

	t.Run("bad dct kind", func(t *testing.T) {
		err := DCT(in1, out1, []int{0}, 0, 1, false, 1)
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("got %v, want ErrInvalidKind", err)
		}

		err = DST(in1, out1, []int{0}, 5, 1, false, 1)
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("got %v, want ErrInvalidKind", err)
		}
	})
}

func requireEngine(t *testing.T) {
	t.Helper()

	if !Available() {
		t.Skip("pocketfft bridge library not available")
	}
}

func TestC2CRoundTrip(t *testing.T) {
	requireEngine(t)

	const n = 16

	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(float64(i%5)-2, float64(i%3))
	}

	in, _ := array.FromComplex128(data)
	mid, _ := array.New(array.Complex128, n)
	out, _ := array.New(array.Complex128, n)

	if err := C2C(in, mid, []int{0}, true, 1, 1); err != nil {
		t.Fatalf("forward C2C: %v", err)
	}
	if err := C2C(mid, out, []int{0}, false, 1.0/n, 1); err != nil {
		t.Fatalf("inverse C2C: %v", err)
	}

	for i := range data {
		if d := out.Complex128s()[i] - data[i]; math.Hypot(real(d), imag(d)) > 1e-12 {
			t.Fatalf("round trip diverged at %d: %v vs %v", i, out.Complex128s()[i], data[i])
		}
	}
}

func TestR2CHalfSpectrum(t *testing.T) {
	requireEngine(t)

	const n = 8

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / n)
	}

	in, _ := array.FromFloat64(signal)
	out, _ := array.New(array.Complex128, n/2+1)

	if err := R2C(in, out, []int{0}, true, 1, 1); err != nil {
		t.Fatalf("R2C: %v", err)
	}

	// A single-cycle sine concentrates in bin 1 with magnitude n/2.
	bins := out.Complex128s()
	if got := math.Hypot(real(bins[1]), imag(bins[1])); math.Abs(got-n/2) > 1e-9 {
		t.Fatalf("bin 1 magnitude = %v, want %v", got, float64(n)/2)
	}
	if got := math.Hypot(real(bins[2]), imag(bins[2])); got > 1e-9 {
		t.Fatalf("bin 2 magnitude = %v, want 0", got)
	}
}

func TestGoodSize(t *testing.T) {
	requireEngine(t)

	got, err := GoodSize(42, false)
	if err != nil {
		t.Fatalf("GoodSize: %v", err)
	}
	if got < 42 {
		t.Fatalf("GoodSize(42) = %d, want >= 42", got)
	}
}

func TestGoodSizeWithoutEngine(t *testing.T) {
	if Available() {
		t.Skip("bridge library present")
	}

	if _, err := GoodSize(42, false); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("got %v, want ErrNotLoaded", err)
	}
}
