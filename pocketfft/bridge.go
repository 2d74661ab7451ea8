//go:build cgo && (linux || darwin)

package pocketfft

/*
#cgo linux LDFLAGS: -ldl

#include <dlfcn.h>
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

// Foreign calling conventions of the bridge entry points. Argument order
// and widths are fixed by the bridge ABI; the engine performs no dynamic
// checking, so these typedefs are the single place the convention is
// spelled out.
typedef void (*pfft_cmplx_fn)(uint64_t ndim, void *ain, void *aout, void *axes,
                              bool forward, double fct, uint64_t nthreads);
typedef void (*pfft_real_fn)(uint64_t ndim, void *ain, void *aout, void *axes,
                             uint64_t type, double fct, bool ortho, uint64_t nthreads);
typedef void (*pfft_hartley_fn)(uint64_t ndim, void *ain, void *aout, void *axes,
                                double fct, uint64_t nthreads);
typedef void (*pfft_fftpack_fn)(uint64_t ndim, void *ain, void *aout, void *axes,
                                bool real2hermitian, bool forward, double fct,
                                uint64_t nthreads);
typedef uint64_t (*pfft_good_size_fn)(uint64_t target, bool real);

static void *pfft_dlopen(const char *path) {
	return dlopen(path, RTLD_NOW | RTLD_LOCAL);
}

static const char *pfft_dlerror(void) {
	return dlerror();
}

// Clear dlerror, resolve, and hand back the error alongside the symbol so
// a NULL result can be told apart from a NULL-valued symbol.
static void *pfft_dlsym(void *h, const char *name, char **err) {
	dlerror();
	void *p = dlsym(h, name);
	char *e = dlerror();
	if (e) {
		if (err) *err = e;
		return NULL;
	}
	if (err) *err = NULL;
	return p;
}

// Call-through shims: cgo cannot call C function pointers directly, so
// each signature group gets one dispatcher.
static void pfft_call_cmplx(void *fn, uint64_t ndim, void *ain, void *aout,
                            void *axes, bool forward, double fct, uint64_t nthreads) {
	((pfft_cmplx_fn)fn)(ndim, ain, aout, axes, forward, fct, nthreads);
}

static void pfft_call_real(void *fn, uint64_t ndim, void *ain, void *aout,
                           void *axes, uint64_t type, double fct, bool ortho,
                           uint64_t nthreads) {
	((pfft_real_fn)fn)(ndim, ain, aout, axes, type, fct, ortho, nthreads);
}

static void pfft_call_hartley(void *fn, uint64_t ndim, void *ain, void *aout,
                              void *axes, double fct, uint64_t nthreads) {
	((pfft_hartley_fn)fn)(ndim, ain, aout, axes, fct, nthreads);
}

static void pfft_call_fftpack(void *fn, uint64_t ndim, void *ain, void *aout,
                              void *axes, bool real2hermitian, bool forward,
                              double fct, uint64_t nthreads) {
	((pfft_fftpack_fn)fn)(ndim, ain, aout, axes, real2hermitian, forward, fct, nthreads);
}

static uint64_t pfft_call_good_size(void *fn, uint64_t target, bool real) {
	return ((pfft_good_size_fn)fn)(target, real);
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

type bridge struct {
	handle unsafe.Pointer
	fn     [symCount]unsafe.Pointer
	path   string
}

var loader struct {
	once sync.Once
	b    *bridge
	err  error
}

// load opens the bridge artifact and resolves all entry points, once per
// process. The handle is never closed; the engine stays mapped for the
// process lifetime.
func load() (*bridge, error) {
	loader.once.Do(func() {
		loader.b, loader.err = open()
	})

	return loader.b, loader.err
}

func open() (*bridge, error) {
	var lastErr error

	for _, path := range candidatePaths() {
		cs := C.CString(path)
		h := C.pfft_dlopen(cs)
		C.free(unsafe.Pointer(cs))

		if h == nil {
			lastErr = fmt.Errorf("%w: dlopen(%q): %s", ErrNotLoaded, path, dlerr())
			continue
		}

		b := &bridge{handle: h, path: path}
		if err := b.resolve(); err != nil {
			return nil, err
		}

		return b, nil
	}

	if lastErr == nil {
		lastErr = ErrNotLoaded
	}

	return nil, lastErr
}

func (b *bridge) resolve() error {
	for sym, name := range symbolNames {
		cs := C.CString(name)

		var cerr *C.char

		p := C.pfft_dlsym(b.handle, cs, &cerr)
		C.free(unsafe.Pointer(cs))

		if cerr != nil || p == nil {
			return fmt.Errorf("%w: %q missing symbol %q: %s", ErrNotLoaded, b.path, name, dlerr())
		}

		b.fn[sym] = p
	}

	return nil
}

func dlerr() string {
	if e := C.pfft_dlerror(); e != nil {
		return C.GoString(e)
	}

	return "unknown dlerror"
}

func (b *bridge) callCmplx(sym symbol, ndim uint64, ain, aout, axes unsafe.Pointer, forward bool, fct float64, nthreads uint64) {
	C.pfft_call_cmplx(b.fn[sym], C.uint64_t(ndim), ain, aout, axes,
		C.bool(forward), C.double(fct), C.uint64_t(nthreads))
}

func (b *bridge) callReal(sym symbol, ndim uint64, ain, aout, axes unsafe.Pointer, kind uint64, fct float64, ortho bool, nthreads uint64) {
	C.pfft_call_real(b.fn[sym], C.uint64_t(ndim), ain, aout, axes,
		C.uint64_t(kind), C.double(fct), C.bool(ortho), C.uint64_t(nthreads))
}

func (b *bridge) callHartley(sym symbol, ndim uint64, ain, aout, axes unsafe.Pointer, fct float64, nthreads uint64) {
	C.pfft_call_hartley(b.fn[sym], C.uint64_t(ndim), ain, aout, axes,
		C.double(fct), C.uint64_t(nthreads))
}

func (b *bridge) callFFTPack(ndim uint64, ain, aout, axes unsafe.Pointer, real2hermitian, forward bool, fct float64, nthreads uint64) {
	C.pfft_call_fftpack(b.fn[symFFTPack], C.uint64_t(ndim), ain, aout, axes,
		C.bool(real2hermitian), C.bool(forward), C.double(fct), C.uint64_t(nthreads))
}

func (b *bridge) callGoodSize(target uint64, real bool) uint64 {
	return uint64(C.pfft_call_good_size(b.fn[symGoodSize], C.uint64_t(target), C.bool(real)))
}
