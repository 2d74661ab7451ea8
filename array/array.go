package array

import (
	"errors"
	"fmt"
	"slices"
	"unsafe"
)

// Array construction and access errors.
var (
	ErrInvalidDType = errors.New("array: invalid element type")
	ErrInvalidShape = errors.New("array: shape entries must be non-negative")
	ErrLenMismatch  = errors.New("array: data length does not match shape")
	ErrAxisRange    = errors.New("array: axis out of range")
)

// Array is a C-contiguous N-dimensional buffer with native element order.
//
// The zero value is not usable; construct arrays with New or the From*
// helpers. The backing buffer is owned by the Array and is never shared
// with caller-provided slices.
type Array struct {
	dtype   DType
	shape   []int
	strides []int // bytes
	data    []byte
}

// New allocates a zero-filled array of the given element type and shape.
// A zero-dimensional shape yields a single-element scalar array.
func New(dtype DType, shape ...int) (*Array, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDType, dtype)
	}

	n := 1
	for _, s := range shape {
		if s < 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShape, shape)
		}
		n *= s
	}

	return &Array{
		dtype:   dtype,
		shape:   slices.Clone(shape),
		strides: contiguousStrides(shape, dtype.Size()),
		data:    make([]byte, n*dtype.Size()),
	}, nil
}

// Scalar is a supported Go element type.
type Scalar interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// FromSlice copies v into a fresh array of the matching element type.
// With no shape the array is one-dimensional of length len(v).
func FromSlice[T Scalar](v []T, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(v)}
	}

	var zero T

	a, err := New(dtypeOf(zero), shape...)
	if err != nil {
		return nil, err
	}
	if a.Len() != len(v) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrLenMismatch, len(v), shape)
	}
	if len(v) > 0 {
		copy(a.data, unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(zero))))
	}

	return a, nil
}

// FromFloat64 copies v into a float64 array.
func FromFloat64(v []float64, shape ...int) (*Array, error) { return FromSlice(v, shape...) }

// FromFloat32 copies v into a float32 array.
func FromFloat32(v []float32, shape ...int) (*Array, error) { return FromSlice(v, shape...) }

// FromComplex128 copies v into a complex128 array.
func FromComplex128(v []complex128, shape ...int) (*Array, error) { return FromSlice(v, shape...) }

// FromComplex64 copies v into a complex64 array.
func FromComplex64(v []complex64, shape ...int) (*Array, error) { return FromSlice(v, shape...) }

func dtypeOf[T Scalar](zero T) DType {
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return Invalid
	}
}

func contiguousStrides(shape []int, elemSize int) []int {
	strides := make([]int, len(shape))
	acc := elemSize
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return strides
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int { return len(a.shape) }

// Len returns the total element count.
func (a *Array) Len() int {
	n := 1
	for _, s := range a.shape {
		n *= s
	}

	return n
}

// Shape returns a copy of the dimension extents.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Strides returns a copy of the per-dimension strides in bytes.
func (a *Array) Strides() []int { return slices.Clone(a.strides) }

// Dim returns the extent along axis, resolving negative indices against
// the rank.
func (a *Array) Dim(axis int) (int, error) {
	if axis < 0 {
		axis += len(a.shape)
	}
	if axis < 0 || axis >= len(a.shape) {
		return 0, fmt.Errorf("%w: %d for rank %d", ErrAxisRange, axis, len(a.shape))
	}

	return a.shape[axis], nil
}

// Data returns a pointer to the first element. The pointer stays valid for
// the lifetime of the Array; the caller must keep the Array reachable
// across any foreign call that uses it.
func (a *Array) Data() unsafe.Pointer {
	if len(a.data) == 0 {
		return nil
	}

	return unsafe.Pointer(&a.data[0])
}

// Bytes returns the raw backing buffer.
func (a *Array) Bytes() []byte { return a.data }

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{
		dtype:   a.dtype,
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
		data:    slices.Clone(a.data),
	}
}

// SameShape reports whether a and b have identical extents.
func (a *Array) SameShape(b *Array) bool { return slices.Equal(a.shape, b.shape) }

func view[T Scalar](a *Array, want DType) []T {
	if a.dtype != want || len(a.data) == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), a.Len())
}

// Float64s returns the elements as a []float64 view sharing the backing
// buffer, or nil if the element type differs.
func (a *Array) Float64s() []float64 { return view[float64](a, Float64) }

// Float32s returns a []float32 view, or nil on type mismatch.
func (a *Array) Float32s() []float32 { return view[float32](a, Float32) }

// Complex128s returns a []complex128 view, or nil on type mismatch.
func (a *Array) Complex128s() []complex128 { return view[complex128](a, Complex128) }

// Complex64s returns a []complex64 view, or nil on type mismatch.
func (a *Array) Complex64s() []complex64 { return view[complex64](a, Complex64) }

// Int64s returns an []int64 view, or nil on type mismatch.
func (a *Array) Int64s() []int64 { return view[int64](a, Int64) }

// Uint64s returns a []uint64 view, or nil on type mismatch.
func (a *Array) Uint64s() []uint64 { return view[uint64](a, Uint64) }

// String implements fmt.Stringer with a compact descriptor form.
func (a *Array) String() string {
	return fmt.Sprintf("array(%v, shape=%v)", a.dtype, a.shape)
}
