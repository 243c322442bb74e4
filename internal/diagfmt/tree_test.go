package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vhdlparser/internal/driver"
	"vhdlparser/internal/token"
	"vhdlparser/internal/vhdl"
)

func TestFormatTreePretty(t *testing.T) {
	src := "entity e is\n  generic (n : natural := 4);\nend entity e;\n"
	doc, err := vhdl.Parse(context.Background(), []byte(src), vhdl.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, doc.Root, doc.File, TreeOpts{}); err != nil {
		t.Fatalf("tree: %v", err)
	}
	out := buf.String()
	lines := strings.Split(out, "\n")
	if lines[0] != "design-file 1:1-4:1" {
		t.Fatalf("root line %q", lines[0])
	}
	for _, want := range []string{
		"└─ units",
		"[0] entity-declaration 1:1-3:14",
		`name: "e"`,
		`end_name: "e"`,
		"generics",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ports: []") {
		t.Fatalf("empty lists must be hidden:\n%s", out)
	}

	buf.Reset()
	if err := FormatTreePretty(&buf, doc.Root, doc.File, TreeOpts{ShowEmpty: true}); err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(buf.String(), "ports: []") {
		t.Fatalf("ShowEmpty must keep empty lists:\n%s", buf.String())
	}
}

func TestFormatTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.vhd")
	if err := os.WriteFile(path, []byte("x <= '1'; -- set\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	res, err := driver.Tokenize(path, token.DefaultStandard, 0, 0)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, res.Tokens, res.File); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if n := strings.Count(pretty.String(), "\n"); n != len(res.Tokens) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(res.Tokens), n, pretty.String())
	}
	if !strings.Contains(pretty.String(), "at 1:1-1:2") {
		t.Fatalf("missing position:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, res.Tokens, res.File); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	last := out[len(out)-1]
	if len(out) != len(res.Tokens) || len(last.Leading) == 0 || last.Start.Line != 2 {
		t.Fatalf("unexpected tokens %+v", out)
	}
}
