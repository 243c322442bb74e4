package wasmhost

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"vhdlparser/internal/boundary"
)

// emptyModule is a valid wasm binary with no exports.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestCompilationError(t *testing.T) {
	_, err := New(context.Background(), "junk", []byte("not wasm"), zaptest.NewLogger(t))
	var ce *CompilationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompilationError, got %v", err)
	}
	if ce.Name != "junk" || errors.Unwrap(err) == nil {
		t.Fatalf("unexpected error %+v", ce)
	}
}

func TestMissingExport(t *testing.T) {
	_, err := New(context.Background(), "empty", emptyModule, nil)
	var me *MissingExportError
	if !errors.As(err, &me) || me.Function != fnAlloc {
		t.Fatalf("expected missing %s, got %v", fnAlloc, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir()+"/absent.wasm", nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestUnpack(t *testing.T) {
	cases := []struct {
		in  uint64
		ok  bool
		ptr uint32
		n   uint32
	}{
		{0, false, 0, 0},
		{1<<63 | 12<<32 | 4096, true, 4096, 12},
		{uint64(1<<31-1)<<32 | 0xffffffff, false, 0xffffffff, 1<<31 - 1},
	}
	for _, c := range cases {
		ok, ptr, n := unpack(c.in)
		if ok != c.ok || ptr != c.ptr || n != c.n {
			t.Fatalf("unpack(%#x) = %v %d %d", c.in, ok, ptr, n)
		}
	}
}

// TestGuestRoundTrip needs a guest built with
// GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared ./cmd/vhdlparser-wasm
// and its path in VHDLPARSER_WASM.
func TestGuestRoundTrip(t *testing.T) {
	path := os.Getenv("VHDLPARSER_WASM")
	if path == "" {
		t.Skip("VHDLPARSER_WASM not set")
	}
	ctx := context.Background()
	h, err := Load(ctx, path, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer h.Close(ctx)

	out, err := h.AsJSON(ctx, "entity e is end entity e;")
	if err != nil {
		t.Fatalf("as json: %v", err)
	}
	if !strings.HasPrefix(out, `{"root":{"kind":"design-file"`) {
		t.Fatalf("unexpected output %s", out)
	}

	_, err = h.AsJSON(ctx, "")
	var pe *boundary.ParseError
	if !errors.As(err, &pe) || pe.Message == "" {
		t.Fatalf("expected parse error, got %v", err)
	}

	// buffers are returned to the guest, so repeated calls must not grow memory unboundedly
	before := h.module.Memory().Size()
	for range 200 {
		if _, err := h.AsJSON(ctx, "entity e is end;"); err != nil {
			t.Fatalf("as json: %v", err)
		}
	}
	if after := h.module.Memory().Size(); after > before*4 {
		t.Fatalf("guest memory grew from %d to %d", before, after)
	}
}
