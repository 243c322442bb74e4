package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("top.vhd", []byte("entity a is end;"), 0)
	id2 := fs.Add("top.vhd", []byte("entity b is end;"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", id1, id2)
	}

	latest, ok := fs.GetLatest("top.vhd")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "entity a is end;" {
		t.Errorf("first version lost: %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestResolvePositions(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.vhd", []byte("library ieee;\nuse ieee.std_logic_1164.all;\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{8, LineCol{1, 9}},
		{13, LineCol{1, 14}}, // the newline itself
		{14, LineCol{2, 1}},
		{18, LineCol{2, 5}},
	}
	f := fs.Get(id)
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	start, end := fs.Resolve(Span{File: id, Start: 14, End: 17})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 4}) {
		t.Errorf("Resolve = %+v..%+v", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.vhd", []byte("first\nsecond\n\nfourth"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "fourth"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.vhd")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("entity e is\r\nend;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path, EncodingAuto)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "entity e is\nend;\n" {
		t.Fatalf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if f.Flags&FileVirtual != 0 {
		t.Errorf("loaded file marked virtual")
	}
}

func TestFormatPath(t *testing.T) {
	f := &File{Path: "/very/long/directory/name/for/testing/purposes/design/top.vhd"}
	if got := f.FormatPath("basename", ""); got != "top.vhd" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "top.vhd" {
		t.Errorf("auto = %q", got)
	}
	if got := f.FormatPath("relative", "/very/long/directory/name/for/testing/purposes"); got != "design/top.vhd" {
		t.Errorf("relative = %q", got)
	}
	virtual := &File{Path: "<input>", Flags: FileVirtual}
	if got := virtual.FormatPath("absolute", ""); got != "<input>" {
		t.Errorf("virtual path rewritten: %q", got)
	}
}
