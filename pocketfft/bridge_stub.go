//go:build !cgo || !(linux || darwin)

package pocketfft

import "unsafe"

// Without cgo (or on platforms the dlopen loader does not cover) the
// bridge cannot be reached; every primitive reports ErrNotLoaded and the
// pure-Go parts of the package remain usable.

type bridge struct {
	path string
}

func load() (*bridge, error) {
	return nil, ErrNotLoaded
}

func (b *bridge) callCmplx(symbol, uint64, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer, bool, float64, uint64) {
}

func (b *bridge) callReal(symbol, uint64, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer, uint64, float64, bool, uint64) {
}

func (b *bridge) callHartley(symbol, uint64, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer, float64, uint64) {
}

func (b *bridge) callFFTPack(uint64, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer, bool, bool, float64, uint64) {
}

func (b *bridge) callGoodSize(uint64, bool) uint64 { return 0 }
