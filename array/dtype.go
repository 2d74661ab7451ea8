package array

import "fmt"

// DType identifies the element type of an Array.
type DType int

// Supported element types.
const (
	Invalid DType = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the element size in bytes.
func (dt DType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// String returns the lower-case type name.
func (dt DType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return fmt.Sprintf("DType(%d)", int(dt))
	}
}

// IsComplex reports whether dt is a complex element type.
func (dt DType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsFloat reports whether dt is a real floating-point element type.
func (dt DType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsInteger reports whether dt is a signed or unsigned integer type.
func (dt DType) IsInteger() bool {
	switch dt {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// Valid reports whether dt names a supported element type.
func (dt DType) Valid() bool {
	return dt > Invalid && dt <= Complex128
}

// Complex returns the complex companion type of dt: the complex type whose
// component precision matches dt. Complex types map to themselves.
func (dt DType) Complex() DType {
	switch dt {
	case Float32, Complex64:
		return Complex64
	default:
		return Complex128
	}
}

// Real returns the real component type of a complex dt. Real types map to
// themselves.
func (dt DType) Real() DType {
	switch dt {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return dt
	}
}
