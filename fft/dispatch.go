package fft

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pocketfft/array"
)

// Dispatch errors.
var (
	ErrUnsupportedDType = errors.New("fft: unsupported element type")
	ErrComplexInput     = errors.New("fft: transform requires real-valued input")
)

// complexLUT maps every supported input element type to the complex
// element type its transform runs in. float32 input selects the
// single-precision code path; every other real or integer type widens to
// the double-precision path. Built once, read-only thereafter.
var complexLUT = map[array.DType]array.DType{
	array.Bool:       array.Complex128,
	array.Int8:       array.Complex128,
	array.Int16:      array.Complex128,
	array.Int32:      array.Complex128,
	array.Int64:      array.Complex128,
	array.Uint8:      array.Complex128,
	array.Uint16:     array.Complex128,
	array.Uint32:     array.Complex128,
	array.Uint64:     array.Complex128,
	array.Float32:    array.Complex64,
	array.Float64:    array.Complex128,
	array.Complex64:  array.Complex64,
	array.Complex128: array.Complex128,
}

// complexType resolves the complex companion type for any supported
// input element type.
func complexType(dt array.DType) (array.DType, error) {
	cdt, ok := complexLUT[dt]
	if !ok {
		return array.Invalid, fmt.Errorf("%w: %v", ErrUnsupportedDType, dt)
	}

	return cdt, nil
}

// realType resolves the floating-point element type a real-to-real
// transform runs in, rejecting complex input the way the reference
// library does.
func realType(dt array.DType) (array.DType, error) {
	if dt.IsComplex() {
		return array.Invalid, fmt.Errorf("%w: got %v", ErrComplexInput, dt)
	}

	cdt, ok := complexLUT[dt]
	if !ok {
		return array.Invalid, fmt.Errorf("%w: %v", ErrUnsupportedDType, dt)
	}

	return cdt.Real(), nil
}
