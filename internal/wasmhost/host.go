// Package wasmhost runs the WebAssembly build of the parser under wazero and
// calls it through the same ownership rules as the C library.
package wasmhost

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"vhdlparser/internal/boundary"
)

const (
	fnAlloc  = "vhdl_alloc"
	fnFree   = "vhdl_free"
	fnAsJSON = "vhdl_as_json"
)

// Host owns one guest instance. Calls are serialised; a Host is safe for
// concurrent use.
type Host struct {
	mu      sync.Mutex
	runtime wazero.Runtime
	module  api.Module
	alloc   api.Function
	free    api.Function
	asJSON  api.Function
	logger  *zap.Logger

	closeOnce sync.Once
	closeErr  error
}

// Load compiles the guest at path and instantiates it.
func Load(ctx context.Context, path string, logger *zap.Logger) (*Host, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guest: %w", err)
	}
	return New(ctx, path, data, logger)
}

// New compiles and instantiates guest bytecode. name labels errors and logs.
func New(ctx context.Context, name string, wasm []byte, logger *zap.Logger) (*Host, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "wasm-host"))

	r := wazero.NewRuntime(ctx)
	h, err := instantiate(ctx, r, name, wasm, logger)
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}
	return h, nil
}

func instantiate(ctx context.Context, r wazero.Runtime, name string, wasm []byte, logger *zap.Logger) (*Host, error) {
	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return nil, &CompilationError{Name: name, Err: err}
	}
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return nil, &InstantiationError{Name: name, Err: err}
	}

	// reactor builds initialise the Go runtime in _initialize
	start := []string{}
	if _, ok := compiled.ExportedFunctions()["_initialize"]; ok {
		start = append(start, "_initialize")
	}
	mod, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().
		WithName("vhdlparser").
		WithStartFunctions(start...))
	if err != nil {
		return nil, &InstantiationError{Name: name, Err: err}
	}

	h := &Host{runtime: r, module: mod, logger: logger}
	for _, exp := range []struct {
		name string
		fn   *api.Function
	}{{fnAlloc, &h.alloc}, {fnFree, &h.free}, {fnAsJSON, &h.asJSON}} {
		f := mod.ExportedFunction(exp.name)
		if f == nil {
			return nil, &MissingExportError{Function: exp.name}
		}
		*exp.fn = f
	}
	logger.Info("guest instantiated",
		zap.String("guest", name),
		zap.Uint32("memory_bytes", mod.Memory().Size()),
	)
	return h, nil
}

// Close releases the runtime. Safe to call more than once.
func (h *Host) Close(ctx context.Context) error {
	h.closeOnce.Do(func() {
		h.closeErr = h.runtime.Close(ctx)
	})
	return h.closeErr
}

// AsJSON parses src inside the guest. It returns the JSON document or a
// *boundary.ParseError with the guest's message.
func (h *Host) AsJSON(ctx context.Context, src string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	in, err := h.write(ctx, []byte(src))
	if err != nil {
		return "", err
	}
	defer h.release(ctx, in)

	res, err := h.call(ctx, h.asJSON, fnAsJSON, uint64(in), uint64(len(src)))
	if err != nil {
		return "", err
	}
	ok, ptr, n := unpack(res)
	if ptr == 0 {
		return "", &CallError{Function: fnAsJSON, Err: fmt.Errorf("guest returned no buffer")}
	}
	defer h.release(ctx, ptr)

	buf, found := h.module.Memory().Read(ptr, n)
	if !found {
		return "", &MemoryAccessError{Op: "read", Addr: ptr, Length: n}
	}
	text := string(buf)
	if !ok {
		return "", &boundary.ParseError{Message: strings.TrimPrefix(text, boundary.ErrorPrefix)}
	}
	return text, nil
}

// write copies data into a fresh guest buffer.
func (h *Host) write(ctx context.Context, data []byte) (uint32, error) {
	res, err := h.call(ctx, h.alloc, fnAlloc, uint64(len(data)))
	if err != nil {
		return 0, err
	}
	ptr := uint32(res)
	if !h.module.Memory().Write(ptr, data) {
		h.release(ctx, ptr)
		return 0, &MemoryAccessError{Op: "write", Addr: ptr, Length: uint32(len(data))}
	}
	return ptr, nil
}

func (h *Host) release(ctx context.Context, ptr uint32) {
	if _, err := h.call(ctx, h.free, fnFree, uint64(ptr)); err != nil {
		h.logger.Warn("guest free failed", zap.Uint32("ptr", ptr), zap.Error(err))
	}
}

func (h *Host) call(ctx context.Context, fn api.Function, name string, args ...uint64) (uint64, error) {
	res, err := fn.Call(ctx, args...)
	if err != nil {
		return 0, &CallError{Function: name, Err: err}
	}
	if len(res) == 0 {
		return 0, nil
	}
	return res[0], nil
}

// unpack splits a vhdl_as_json result: bit 63 is the ok flag, bits 32..62
// the length and the low 32 bits the address.
func unpack(r uint64) (ok bool, ptr, n uint32) {
	return r>>63 == 1, uint32(r), uint32(r>>32) & (1<<31 - 1)
}
