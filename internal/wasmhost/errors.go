package wasmhost

import "fmt"

// CompilationError reports a guest binary wazero could not compile.
type CompilationError struct {
	Name string
	Err  error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compile guest %q: %v", e.Name, e.Err)
}

func (e *CompilationError) Unwrap() error { return e.Err }

// InstantiationError reports a guest that compiled but failed to start.
type InstantiationError struct {
	Name string
	Err  error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("instantiate guest %q: %v", e.Name, e.Err)
}

func (e *InstantiationError) Unwrap() error { return e.Err }

// MissingExportError reports a guest lacking one of the boundary functions.
type MissingExportError struct {
	Function string
}

func (e *MissingExportError) Error() string {
	return fmt.Sprintf("guest does not export %q", e.Function)
}

// CallError wraps a trap or failure while calling into the guest.
type CallError struct {
	Function string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call %s: %v", e.Function, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// MemoryAccessError reports an out-of-bounds read or write of guest memory.
type MemoryAccessError struct {
	Op     string
	Addr   uint32
	Length uint32
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("memory %s out of range (addr=%d, len=%d)", e.Op, e.Addr, e.Length)
}
