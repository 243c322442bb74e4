// Command libvhdlparser builds the C library:
//
//	go build -buildmode=c-shared -o libvhdlparser.so ./cmd/libvhdlparser
//
// The caller-side C++ adapter lives in include/vhdl_parser.h.
package main

/*
#include <stdbool.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"context"
	"sync"
	"unsafe"

	"vhdlparser/internal/boundary"
	"vhdlparser/internal/docjson"
)

// cAllocator hands out malloc'd, NUL-terminated buffers so the caller can
// read them as C strings. Only pointers it returned may be passed to Free.
type cAllocator struct {
	mu   sync.Mutex
	live map[boundary.Handle]cBuf
}

type cBuf struct {
	p unsafe.Pointer
	n int
}

var alloc = &cAllocator{live: make(map[boundary.Handle]cBuf)}

func (a *cAllocator) Alloc(n int) (boundary.Handle, []byte) {
	p := C.malloc(C.size_t(n + 1))
	if p == nil {
		panic("libvhdlparser: out of memory")
	}
	buf := unsafe.Slice((*byte)(p), n+1)
	buf[n] = 0
	h := boundary.Handle(uintptr(p))
	a.mu.Lock()
	a.live[h] = cBuf{p: p, n: n}
	a.mu.Unlock()
	return h, buf[:n]
}

func (a *cAllocator) lookup(h boundary.Handle) (cBuf, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.live[h]
	return b, ok
}

func (a *cAllocator) Bytes(h boundary.Handle) ([]byte, error) {
	b, ok := a.lookup(h)
	if !ok {
		return nil, boundary.ErrForeignHandle
	}
	return unsafe.Slice((*byte)(b.p), b.n), nil
}

func (a *cAllocator) Free(h boundary.Handle) error {
	a.mu.Lock()
	b, ok := a.live[h]
	delete(a.live, h)
	a.mu.Unlock()
	if !ok {
		return boundary.ErrForeignHandle
	}
	C.free(b.p)
	return nil
}

// export runs one boundary call and returns the C string to hand out, or
// nil when nothing could be allocated. No panic gets past it.
func export(in []byte) (ok bool, out unsafe.Pointer) {
	defer func() {
		if r := recover(); r != nil {
			ok, out = false, nil
		}
	}()
	ok, h := boundary.Export(context.Background(), alloc, in, boundary.Options{
		JSON: docjson.Options{Pretty: true},
	})
	b, found := alloc.lookup(h)
	if !found {
		return false, nil
	}
	return ok, b.p
}

// vhdl_as_json parses src and stores a malloc'd string in *out: the JSON
// document on success, the "[parse error]" message otherwise, NULL if the
// library ran out of memory. Release it with vhdl_free.
//
//export vhdl_as_json
func vhdl_as_json(src *C.char, out **C.char) C.bool {
	if out == nil {
		return C.bool(false)
	}
	var in []byte
	if src != nil {
		in = C.GoBytes(unsafe.Pointer(src), C.int(C.strlen(src)))
	}
	ok, p := export(in)
	*out = (*C.char)(p)
	return C.bool(ok)
}

// vhdl_free releases a string returned through vhdl_as_json. Passing NULL
// is a no-op; any other pointer not obtained from vhdl_as_json is ignored.
//
//export vhdl_free
func vhdl_free(p *C.char) {
	if p == nil {
		return
	}
	_ = alloc.Free(boundary.Handle(uintptr(unsafe.Pointer(p))))
}

func main() {}
