package lexer

import (
	"testing"

	"vhdlparser/internal/source"
)

func TestCursorLookahead(t *testing.T) {
	fs := source.NewFileSet()
	c := NewCursor(fs.Get(fs.AddVirtual("c.vhd", []byte("?/="))))

	if b0, b1, b2, ok := c.Peek3(); !ok || string([]byte{b0, b1, b2}) != "?/=" {
		t.Fatalf("Peek3 = %q ok=%v", []byte{b0, b1, b2}, ok)
	}
	c.Bump()
	if _, _, _, ok := c.Peek3(); ok {
		t.Fatalf("Peek3 must fail with two bytes left")
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != '/' || b1 != '=' {
		t.Fatalf("Peek2 = %q %q ok=%v", b0, b1, ok)
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2 must fail with one byte left")
	}
	c.Bump()
	if !c.EOF() || c.Bump() != 0 || c.Off != 3 {
		t.Fatalf("cursor ran past the end: off=%d", c.Off)
	}
}
