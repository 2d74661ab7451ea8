package array

import (
	"fmt"
	"unsafe"
)

// AsType returns a fresh array with the same shape and elements cast to
// dtype. Casting a complex array to a real type keeps the real component;
// casting to bool yields true for every non-zero element. AsType always
// copies, even when dtype equals the current element type, so the result
// never aliases the receiver.
func (a *Array) AsType(dtype DType) (*Array, error) {
	out, err := New(dtype, a.shape...)
	if err != nil {
		return nil, err
	}

	n := a.Len()
	for i := range n {
		out.setComplex(i, a.atComplex(i))
	}

	return out, nil
}

func (a *Array) atComplex(i int) complex128 {
	p := unsafe.Pointer(&a.data[i*a.dtype.Size()])

	switch a.dtype {
	case Bool:
		if *(*bool)(p) {
			return 1
		}
		return 0
	case Int8:
		return complex(float64(*(*int8)(p)), 0)
	case Int16:
		return complex(float64(*(*int16)(p)), 0)
	case Int32:
		return complex(float64(*(*int32)(p)), 0)
	case Int64:
		return complex(float64(*(*int64)(p)), 0)
	case Uint8:
		return complex(float64(*(*uint8)(p)), 0)
	case Uint16:
		return complex(float64(*(*uint16)(p)), 0)
	case Uint32:
		return complex(float64(*(*uint32)(p)), 0)
	case Uint64:
		return complex(float64(*(*uint64)(p)), 0)
	case Float32:
		return complex(float64(*(*float32)(p)), 0)
	case Float64:
		return complex(*(*float64)(p), 0)
	case Complex64:
		return complex128(*(*complex64)(p))
	case Complex128:
		return *(*complex128)(p)
	default:
		panic(fmt.Sprintf("array: atComplex on %v", a.dtype))
	}
}

func (a *Array) setComplex(i int, v complex128) {
	p := unsafe.Pointer(&a.data[i*a.dtype.Size()])

	switch a.dtype {
	case Bool:
		*(*bool)(p) = v != 0
	case Int8:
		*(*int8)(p) = int8(real(v))
	case Int16:
		*(*int16)(p) = int16(real(v))
	case Int32:
		*(*int32)(p) = int32(real(v))
	case Int64:
		*(*int64)(p) = int64(real(v))
	case Uint8:
		*(*uint8)(p) = uint8(real(v))
	case Uint16:
		*(*uint16)(p) = uint16(real(v))
	case Uint32:
		*(*uint32)(p) = uint32(real(v))
	case Uint64:
		*(*uint64)(p) = uint64(real(v))
	case Float32:
		*(*float32)(p) = float32(real(v))
	case Float64:
		*(*float64)(p) = real(v)
	case Complex64:
		*(*complex64)(p) = complex64(v)
	case Complex128:
		*(*complex128)(p) = v
	default:
		panic(fmt.Sprintf("array: setComplex on %v", a.dtype))
	}
}
