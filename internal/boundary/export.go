package boundary

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"vhdlparser/internal/docjson"
	"vhdlparser/internal/vhdl"
)

// ErrorPrefix starts every failure message handed across the boundary.
const ErrorPrefix = "[parse error]\n"

type Options struct {
	Parse vhdl.Options
	JSON  docjson.Options
}

// Export runs the pipeline over src and stores the outcome in one buffer
// from alloc: the JSON document when ok, otherwise the failure message
// starting with ErrorPrefix. Export never panics; a fault inside the
// pipeline becomes a failure message, and a fault inside the allocator
// yields (false, 0) with nothing allocated.
func Export(ctx context.Context, alloc Allocator, src []byte, opts Options) (ok bool, out Handle) {
	payload, err := run(ctx, src, opts)
	if err != nil {
		payload = []byte(ErrorPrefix + err.Error())
	}
	h, placed := place(alloc, payload)
	if !placed {
		return false, 0
	}
	return err == nil, h
}

func place(alloc Allocator, payload []byte) (h Handle, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			h, ok = 0, false
		}
	}()
	h, buf := alloc.Alloc(len(payload))
	copy(buf, payload)
	return h, true
}

// internalFault is a recovered panic.
type internalFault struct {
	value any
}

func (f *internalFault) Error() string {
	return fmt.Sprintf("internal error: %v", f.value)
}

func run(ctx context.Context, src []byte, opts Options) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &internalFault{value: r}
		}
	}()
	return pipeline(ctx, src, opts.Parse, opts.JSON)
}

var pipeline = vhdl.ToJSON

// Owned is a buffer taken from an Allocator. Release it exactly once,
// usually with defer right after Take.
type Owned struct {
	alloc Allocator
	h     Handle
	once  sync.Once
	err   error
}

// Take acquires ownership of h.
func Take(alloc Allocator, h Handle) *Owned {
	return &Owned{alloc: alloc, h: h}
}

// Bytes returns the buffer contents without copying. The slice is invalid
// after Release.
func (o *Owned) Bytes() ([]byte, error) {
	return o.alloc.Bytes(o.h)
}

// String copies the buffer into Go memory.
func (o *Owned) String() (string, error) {
	b, err := o.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Release frees the buffer. Later calls return the first call's result.
func (o *Owned) Release() error {
	o.once.Do(func() { o.err = o.alloc.Free(o.h) })
	return o.err
}

// ParseError is a failed boundary call as seen by the consumer.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return "parse error: " + e.Message }

var defaultAlloc = NewHeapAllocator()

// AsJSON parses src and returns its JSON document, or a *ParseError with
// the producer's message.
func AsJSON(src string) (string, error) {
	return AsJSONWith(context.Background(), defaultAlloc, []byte(src), Options{})
}

// AsJSONWith is AsJSON over an explicit allocator and options.
func AsJSONWith(ctx context.Context, alloc Allocator, src []byte, opts Options) (text string, err error) {
	ok, h := Export(ctx, alloc, src, opts)
	if h == 0 {
		return "", ErrAllocFailed
	}
	owned := Take(alloc, h)
	defer func() {
		if rerr := owned.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	text, err = owned.String()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &ParseError{Message: strings.TrimPrefix(text, ErrorPrefix)}
	}
	return text, nil
}
