package array

import (
	"errors"
	"testing"
)

func TestNewShapeAndStrides(t *testing.T) {
	a, err := New(Float64, 2, 3, 4)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if a.Ndim() != 3 || a.Len() != 24 {
		t.Fatalf("got ndim=%d len=%d, want 3 and 24", a.Ndim(), a.Len())
	}

	strides := a.Strides()
	want := []int{96, 32, 8}

	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("Strides() = %v, want %v", strides, want)
		}
	}
}

func TestNewRejectsBadArguments(t *testing.T) {
	if _, err := New(Invalid, 4); !errors.Is(err, ErrInvalidDType) {
		t.Fatalf("got %v, want ErrInvalidDType", err)
	}
	if _, err := New(Float64, -1); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("got %v, want ErrInvalidShape", err)
	}
}

func TestFromSlice(t *testing.T) {
	a, err := FromFloat64([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("FromFloat64() error: %v", err)
	}
	if a.DType() != Float64 {
		t.Fatalf("DType() = %v, want float64", a.DType())
	}

	v := a.Float64s()
	if v[0] != 1 || v[5] != 6 {
		t.Fatalf("unexpected elements %v", v)
	}

	// The array owns its buffer; mutating the source must not leak in.
	src := []float64{9, 9}

	b, err := FromFloat64(src)
	if err != nil {
		t.Fatalf("FromFloat64() error: %v", err)
	}

	src[0] = 1
	if b.Float64s()[0] != 9 {
		t.Fatal("array aliases caller slice")
	}

	if _, err := FromFloat64([]float64{1, 2, 3}, 2, 2); !errors.Is(err, ErrLenMismatch) {
		t.Fatalf("got %v, want ErrLenMismatch", err)
	}
}

func TestTypedViews(t *testing.T) {
	a, err := FromComplex128([]complex128{1 + 2i, 3 - 4i})
	if err != nil {
		t.Fatalf("FromComplex128() error: %v", err)
	}

	if v := a.Complex128s(); v == nil || v[1] != 3-4i {
		t.Fatalf("Complex128s() = %v", v)
	}
	if a.Float64s() != nil {
		t.Fatal("mismatched view should be nil")
	}
}

func TestClone(t *testing.T) {
	a, _ := FromFloat64([]float64{1, 2, 3})
	b := a.Clone()

	b.Float64s()[0] = 7
	if a.Float64s()[0] != 1 {
		t.Fatal("Clone shares backing buffer")
	}
	if !a.SameShape(b) {
		t.Fatal("Clone changed shape")
	}
}

func TestAsType(t *testing.T) {
	tests := []struct {
		name string
		src  func() *Array
		to   DType
		want []complex128
	}{
		{
			name: "int to float64",
			src: func() *Array {
				a, _ := FromSlice([]int32{1, -2, 3})
				return a
			},
			to:   Float64,
			want: []complex128{1, -2, 3},
		},
		{
			name: "float64 to complex128",
			src: func() *Array {
				a, _ := FromFloat64([]float64{1.5, -0.5})
				return a
			},
			to:   Complex128,
			want: []complex128{1.5, -0.5},
		},
		{
			name: "complex to real keeps real part",
			src: func() *Array {
				a, _ := FromComplex128([]complex128{1 + 9i, 2 - 9i})
				return a
			},
			to:   Float64,
			want: []complex128{1, 2},
		},
		{
			name: "bool to float64",
			src: func() *Array {
				a, _ := FromSlice([]bool{true, false, true})
				return a
			},
			to:   Float64,
			want: []complex128{1, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.src().AsType(tt.to)
			if err != nil {
				t.Fatalf("AsType() error: %v", err)
			}
			if out.DType() != tt.to {
				t.Fatalf("DType() = %v, want %v", out.DType(), tt.to)
			}

			for i, want := range tt.want {
				if got := out.atComplex(i); got != want {
					t.Fatalf("element %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestAsTypeAlwaysCopies(t *testing.T) {
	a, _ := FromFloat64([]float64{1, 2})

	b, err := a.AsType(Float64)
	if err != nil {
		t.Fatalf("AsType() error: %v", err)
	}

	b.Float64s()[0] = 5
	if a.Float64s()[0] != 1 {
		t.Fatal("AsType aliases source")
	}
}
