package diag

import (
	"testing"

	"vhdlparser/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	top := fs.Add("/workspace/rtl/top.vhd", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynNewerStandard,
			Message:  "another",
			Primary:  source.Span{File: top, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: top, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: top, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevError,
			Code:     SynExpectSemicolon,
			Message:  "unresolvable",
			Primary:  source.Span{File: 42},
		},
	}

	expected := "error SYN2001 rtl/top.vhd:1:1 first line second\n" +
		"note SYN2001 rtl/top.vhd:2:1 note line\n" +
		"warning SYN2013 rtl/top.vhd:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
