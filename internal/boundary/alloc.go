// Package boundary hands parse results across an ownership boundary: the
// producer allocates exactly one buffer per call and the consumer releases
// it exactly once.
package boundary

import (
	"errors"
	"fmt"
	"sync"
)

// Handle names a buffer owned by an Allocator. Zero is never a valid handle.
type Handle uint64

// Allocator owns the buffers that cross the boundary. The C library backs it
// with malloc/free, the wasm guest with its linear memory, and tests with
// HeapAllocator.
type Allocator interface {
	// Alloc returns a fresh handle and its writable n-byte buffer.
	Alloc(n int) (Handle, []byte)
	// Bytes returns the live buffer behind h.
	Bytes(h Handle) ([]byte, error)
	// Free releases h; freeing twice or freeing a foreign handle fails.
	Free(h Handle) error
}

var (
	ErrDoubleFree    = errors.New("boundary: buffer already released")
	ErrForeignHandle = errors.New("boundary: handle was not allocated here")
	ErrAllocFailed   = errors.New("boundary: allocator failed")
)

// HeapAllocator is an Allocator over Go memory that counts allocations and
// releases. It keeps no record of released buffers. Safe for concurrent use.
type HeapAllocator struct {
	mu     sync.Mutex
	next   Handle
	live   map[Handle][]byte
	allocs int
	frees  int
}

func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{live: make(map[Handle][]byte)}
}

func (a *HeapAllocator) Alloc(n int) (Handle, []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	buf := make([]byte, n)
	a.live[a.next] = buf
	a.allocs++
	return a.next, buf
}

func (a *HeapAllocator) Bytes(h Handle) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	buf, ok := a.live[h]
	if !ok {
		return nil, a.missing(h)
	}
	return buf, nil
}

func (a *HeapAllocator) Free(h Handle) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.live[h]; !ok {
		return a.missing(h)
	}
	delete(a.live, h)
	a.frees++
	return nil
}

// missing is called with a.mu held. Handles are issued in sequence, so a
// handle at or below next that is no longer live has been released.
func (a *HeapAllocator) missing(h Handle) error {
	if h != 0 && h <= a.next {
		return fmt.Errorf("handle %d: %w", h, ErrDoubleFree)
	}
	return fmt.Errorf("handle %d: %w", h, ErrForeignHandle)
}

// Stats reports how many buffers were allocated and released so far.
func (a *HeapAllocator) Stats() (allocs, frees int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs, a.frees
}

// Live reports the number of buffers not yet released.
func (a *HeapAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}
