package source

import (
	"bytes"
	"testing"
)

func TestNormalizeEncodings(t *testing.T) {
	latin := []byte("-- r\xe9sum\xe9\n")
	tests := []struct {
		name  string
		in    []byte
		enc   Encoding
		want  string
		flags FileFlags
	}{
		{"utf8 passthrough", []byte("signal s : bit;"), EncodingAuto, "signal s : bit;", 0},
		{"auto falls back to latin-1", latin, EncodingAuto, "-- résumé\n", FileDecodedLatin1},
		{"forced latin-1", []byte("\xe9"), EncodingLatin1, "é", FileDecodedLatin1},
		{"strict utf-8 keeps bytes", []byte("\xe9"), EncodingUTF8, "\xe9", 0},
		{"bom and crlf", []byte("\xef\xbb\xbfa\r\nb"), EncodingAuto, "a\nb", FileHadBOM | FileNormalizedCRLF},
		{"lone cr kept", []byte("a\rb"), EncodingAuto, "a\rb", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags, err := Normalize(tt.in, tt.enc)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if flags != tt.flags {
				t.Errorf("flags = %b, want %b", flags, tt.flags)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{
		"":           EncodingAuto,
		"AUTO":       EncodingAuto,
		"utf8":       EncodingUTF8,
		"Latin-1":    EncodingLatin1,
		"iso-8859-1": EncodingLatin1,
	} {
		got, err := ParseEncoding(in)
		if err != nil || got != want {
			t.Errorf("ParseEncoding(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseEncoding("ebcdic"); err == nil {
		t.Errorf("expected error for unknown encoding")
	}
}

func TestSpanHelpers(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 10}
	b := Span{File: 1, Start: 8, End: 20}
	if c := a.Cover(b); c.Start != 4 || c.End != 20 {
		t.Errorf("Cover = %v", c)
	}
	if !a.Cover(b).Contains(a) || a.Contains(b) {
		t.Errorf("Contains misbehaves")
	}
	if other := (Span{File: 2, Start: 0, End: 100}); a.Cover(other) != a {
		t.Errorf("cross-file cover should be a no-op")
	}
	if z := a.ZeroideToEnd(); !z.Empty() || z.Start != 10 {
		t.Errorf("ZeroideToEnd = %v", z)
	}
	if !a.Before(Span{File: 1, Start: 10, End: 12}) {
		t.Errorf("Before should accept touching spans")
	}
}
