//go:build wasip1

// Command vhdlparser-wasm is the WebAssembly guest:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o vhdlparser.wasm ./cmd/vhdlparser-wasm
//
// Hosts write the source into a buffer from vhdl_alloc, call vhdl_as_json
// and release both buffers with vhdl_free. internal/wasmhost is such a host.
package main

import (
	"context"
	"sync"
	"unsafe"

	"vhdlparser/internal/boundary"
)

// guestAllocator pins Go slices by their linear-memory address.
type guestAllocator struct {
	mu   sync.Mutex
	live map[boundary.Handle][]byte
}

var alloc = &guestAllocator{live: make(map[boundary.Handle][]byte)}

func (a *guestAllocator) Alloc(n int) (boundary.Handle, []byte) {
	// a zero-length slice has no stable address
	buf := make([]byte, max(n, 1))
	h := boundary.Handle(uintptr(unsafe.Pointer(&buf[0])))
	buf = buf[:n]
	a.mu.Lock()
	a.live[h] = buf
	a.mu.Unlock()
	return h, buf
}

func (a *guestAllocator) Bytes(h boundary.Handle) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	buf, ok := a.live[h]
	if !ok {
		return nil, boundary.ErrForeignHandle
	}
	return buf, nil
}

func (a *guestAllocator) Free(h boundary.Handle) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.live[h]; !ok {
		return boundary.ErrForeignHandle
	}
	delete(a.live, h)
	return nil
}

// Result packing for vhdl_as_json: bit 63 is the ok flag, bits 32..62 the
// length and the low 32 bits the address.
const (
	okBit   = uint64(1) << 63
	lenMask = uint64(1)<<31 - 1
)

func pack(ok bool, ptr, n uint32) uint64 {
	r := uint64(n)&lenMask<<32 | uint64(ptr)
	if ok {
		r |= okBit
	}
	return r
}

//go:wasmexport vhdl_alloc
func vhdlAlloc(size uint32) uint32 {
	h, _ := alloc.Alloc(int(size))
	return uint32(h)
}

//go:wasmexport vhdl_free
func vhdlFree(ptr uint32) {
	_ = alloc.Free(boundary.Handle(ptr))
}

//go:wasmexport vhdl_as_json
func vhdlAsJSON(ptr, size uint32) uint64 {
	var src []byte
	if size > 0 {
		in, err := alloc.Bytes(boundary.Handle(ptr))
		if err != nil || int(size) > len(in) {
			return pack(false, 0, 0)
		}
		src = in[:size]
	}
	ok, h := boundary.Export(context.Background(), alloc, src, boundary.Options{})
	out, _ := alloc.Bytes(h)
	return pack(ok, uint32(h), uint32(len(out)))
}

func main() {}
