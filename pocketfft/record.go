package pocketfft

import (
	"runtime"
	"unsafe"

	"github.com/cwbudde/algo-pocketfft/array"
)

// ndarray mirrors the C record the bridge library reads array arguments
// through: element buffer, per-axis extents, per-axis strides in bytes.
// The layout must stay three pointer-sized words; the engine treats the
// record as opaque input and this layer never touches it after
// construction.
type ndarray struct {
	data    unsafe.Pointer
	shape   unsafe.Pointer // *uint64, ndim entries
	strides unsafe.Pointer // *int64, ndim entries, bytes
}

// lowerArray builds the call record for a. The record borrows a's element
// buffer; everything the record points at is pinned until the caller's
// Unpin, which must happen after the foreign call returns.
func lowerArray(a *array.Array, pin *runtime.Pinner) unsafe.Pointer {
	dims := a.Shape()
	byteStrides := a.Strides()

	rec := &ndarray{}
	if d := a.Data(); d != nil {
		pin.Pin(d)
		rec.data = d
	}

	if len(dims) > 0 {
		shape := make([]uint64, len(dims))
		strides := make([]int64, len(byteStrides))

		for i, s := range dims {
			shape[i] = uint64(s)
		}
		for i, s := range byteStrides {
			strides[i] = int64(s)
		}

		pin.Pin(&shape[0])
		pin.Pin(&strides[0])

		rec.shape = unsafe.Pointer(&shape[0])
		rec.strides = unsafe.Pointer(&strides[0])
	}

	return unsafe.Pointer(rec)
}

// lowerAxes builds the one-dimensional call record for a canonical axis
// list.
func lowerAxes(axes []uint64, pin *runtime.Pinner) unsafe.Pointer {
	rec := &ndarray{}
	if len(axes) > 0 {
		pin.Pin(&axes[0])
		rec.data = unsafe.Pointer(&axes[0])
	}

	shape := []uint64{uint64(len(axes))}
	strides := []int64{8}

	pin.Pin(&shape[0])
	pin.Pin(&strides[0])

	rec.shape = unsafe.Pointer(&shape[0])
	rec.strides = unsafe.Pointer(&strides[0])

	return unsafe.Pointer(rec)
}
