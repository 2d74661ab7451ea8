package fft

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pocketfft/array"
)

// naiveDCT2 evaluates the unnormalized DCT-II definition directly:
// y[k] = 2 * sum_j x[j] * cos(pi*k*(2j+1)/(2N)).
func naiveDCT2(x []float64) []float64 {
	n := len(x)
	y := make([]float64, n)

	for k := range y {
		var sum float64
		for j, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*(2*float64(j)+1)/(2*float64(n)))
		}

		y[k] = 2 * sum
	}

	return y
}

func TestDCTValidation(t *testing.T) {
	x, _ := array.New(array.Float64, 8)

	if _, err := DCT(x, WithKind(0)); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("got %v, want ErrInvalidKind", err)
	}
	if _, err := DCT(x, WithKind(5)); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("got %v, want ErrInvalidKind", err)
	}
	if _, err := DCT(x, WithKind(1), WithLength(1)); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("kind 1 length 1: got %v, want ErrInvalidKind", err)
	}

	c, _ := array.New(array.Complex128, 8)
	if _, err := DCT(c); !errors.Is(err, ErrComplexInput) {
		t.Fatalf("got %v, want ErrComplexInput", err)
	}
	if _, err := DST(c); !errors.Is(err, ErrComplexInput) {
		t.Fatalf("got %v, want ErrComplexInput", err)
	}
}

func TestDCTLength42MatchesDefinition(t *testing.T) {
	requireEngine(t)

	source := make([]float64, 42)
	for i := range source {
		source[i] = math.Sin(0.11*float64(i)) + 0.25*math.Cos(1.9*float64(i))
	}

	want := naiveDCT2(source)

	for _, dt := range []array.DType{array.Float64, array.Float32, array.Int32} {
		base, _ := array.FromFloat64(source)

		x, err := base.AsType(dt)
		if err != nil {
			t.Fatalf("AsType(%v): %v", dt, err)
		}

		y, err := DCT(x)
		if err != nil {
			t.Fatalf("DCT(%v): %v", dt, err)
		}

		tol := 1e-9
		if dt == array.Float32 {
			tol = 1e-2
		}

		ref := want
		if dt == array.Int32 {
			// Casting truncates the source first; rebuild the oracle
			// from the truncated values.
			truncated := make([]float64, len(source))
			for i, v := range source {
				truncated[i] = float64(int32(v))
			}

			ref = naiveDCT2(truncated)
		}

		for i := range ref {
			var got float64
			if dt == array.Float32 {
				got = float64(y.Float32s()[i])
			} else {
				got = y.Float64s()[i]
			}

			if math.Abs(got-ref[i]) > tol {
				t.Fatalf("dtype %v: bin %d = %v, want %v", dt, i, got, ref[i])
			}
		}
	}
}

func TestDCTRoundTrip(t *testing.T) {
	requireEngine(t)

	source := make([]float64, 42)
	for i := range source {
		source[i] = math.Cos(0.4 * float64(i))
	}

	x, _ := array.FromFloat64(source)

	for _, norm := range []Norm{Backward, Ortho, Forward} {
		for kind := 1; kind <= 4; kind++ {
			y, err := DCT(x, WithKind(kind), WithNorm(norm))
			if err != nil {
				t.Fatalf("DCT(kind=%d, norm=%v): %v", kind, norm, err)
			}

			z, err := IDCT(y, WithKind(kind), WithNorm(norm))
			if err != nil {
				t.Fatalf("IDCT(kind=%d, norm=%v): %v", kind, norm, err)
			}

			for i := range source {
				if math.Abs(z.Float64s()[i]-source[i]) > 1e-10 {
					t.Fatalf("kind %d norm %v: element %d = %v, want %v",
						kind, norm, i, z.Float64s()[i], source[i])
				}
			}
		}
	}
}

func TestDSTRoundTrip(t *testing.T) {
	requireEngine(t)

	source := make([]float64, 17)
	for i := range source {
		source[i] = math.Sin(0.9 * float64(i+1))
	}

	x, _ := array.FromFloat64(source)

	for kind := 1; kind <= 4; kind++ {
		y, err := DST(x, WithKind(kind))
		if err != nil {
			t.Fatalf("DST(kind=%d): %v", kind, err)
		}

		z, err := IDST(y, WithKind(kind))
		if err != nil {
			t.Fatalf("IDST(kind=%d): %v", kind, err)
		}

		for i := range source {
			if math.Abs(z.Float64s()[i]-source[i]) > 1e-10 {
				t.Fatalf("kind %d: element %d = %v, want %v", kind, i, z.Float64s()[i], source[i])
			}
		}
	}
}
