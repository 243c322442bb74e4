package docjson_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"vhdlparser/internal/diag"
	"vhdlparser/internal/docjson"
	"vhdlparser/internal/lexer"
	"vhdlparser/internal/parser"
	"vhdlparser/internal/source"
)

func buildDoc(t *testing.T, src string) docjson.Document {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte(src))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := parser.ParseFile(context.Background(), lx, parser.Options{Reporter: rep})
	return docjson.Document{File: fs.Get(id), Root: res.Root, Diagnostics: bag.Items()}
}

const entityJSON = `{"root":{"kind":"design-file","span":{"start":{"line":1,"col":1},"end":{"line":1,"col":26}},` +
	`"children":{"units":[{"kind":"entity-declaration","span":{"start":{"line":1,"col":1},"end":{"line":1,"col":26}},` +
	`"children":{"context":[],"name":"e","generics":[],"ports":[],"declarations":[],"statements":[],"end_name":"e"}}]}},` +
	`"diagnostics":[]}`

func TestEncodeMinimalEntity(t *testing.T) {
	out, err := docjson.Encode(buildDoc(t, "entity e is end entity e;"), docjson.Options{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if diff := cmp.Diff(entityJSON, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if !json.Valid(out) {
		t.Fatalf("invalid JSON")
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	src := `library ieee;
use ieee.std_logic_1164.all;
entity top is
  generic (N : integer := 4);
  port (a : in std_logic_vector(N - 1 downto 0); y : out std_logic);
end entity;
architecture rtl of top is
  signal s1 : bit
  signal s2 : bit;
begin
  y <= a(0) and a(1);
end architecture rtl;
`
	first, err := docjson.Encode(buildDoc(t, src), docjson.Options{Pretty: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for range 5 {
		again, err := docjson.Encode(buildDoc(t, src), docjson.Options{Pretty: true})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("output differs between runs")
		}
	}
}

func TestDiagnosticsBesideRoot(t *testing.T) {
	doc := buildDoc(t, "entity e is end entity f;\nentity g is end entity h;")
	dj, err := docjson.Build(doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(dj.Diagnostics) != 2 {
		t.Fatalf("diagnostics=%d", len(dj.Diagnostics))
	}
	first := dj.Diagnostics[0]
	if got := first.Keys(); !cmp.Equal(got, []string{"severity", "code", "message", "span"}) {
		t.Fatalf("diagnostic keys %v", got)
	}
	if first.String("severity") != "error" || first.String("code") != "SYN2005" {
		t.Fatalf("diagnostic %v", first)
	}
	span, _ := first.Get("span")
	start, _ := span.(docjson.Object).Get("start")
	if line, _ := start.(docjson.Object).Get("line"); line != uint32(1) {
		t.Fatalf("first diagnostic line %v", line)
	}
	out, err := dj.Marshal(docjson.Options{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Count(string(out), `"code"`) != 2 {
		t.Fatalf("diagnostics must appear only at the top level")
	}
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"entity e is end entity e;",
		"package p is constant s : string := \"a\"\"<b>&c\"; end package;",
		"architecture a of e is begin x <= y when c = '1' else z; end;",
		"entity e is end entity f;",
	}
	for _, src := range srcs {
		for _, opts := range []docjson.Options{{}, {Pretty: true}, {Pretty: true, Indent: "\t"}} {
			out, err := docjson.Encode(buildDoc(t, src), opts)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			dj, err := docjson.Decode(out)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			again, err := dj.Marshal(opts)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if diff := cmp.Diff(string(out), string(again)); diff != "" {
				t.Fatalf("round trip mismatch for %q (-want +got):\n%s", src, diff)
			}
		}
	}
}

func TestStringsAreNotHTMLEscaped(t *testing.T) {
	out, err := docjson.Encode(buildDoc(t, "package p is constant c : integer := a <= b; end package;"), docjson.Options{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(out), `"operator":"<="`) {
		t.Fatalf("operator not found verbatim in %s", out)
	}
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"root":`,
		"array":         `[]`,
		"missing diags": `{"root":{}}`,
		"swapped keys":  `{"diagnostics":[],"root":{}}`,
		"root scalar":   `{"root":1,"diagnostics":[]}`,
		"diag scalar":   `{"root":{},"diagnostics":[1]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := docjson.Decode([]byte(in)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestEncodeWithoutRoot(t *testing.T) {
	if _, err := docjson.Encode(docjson.Document{}, docjson.Options{}); err == nil {
		t.Fatalf("expected error for a document without root")
	}
}

func TestYAMLKeepsOrder(t *testing.T) {
	dj, err := docjson.Build(buildDoc(t, "entity e is end entity e;"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := dj.YAML()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	text := string(out)
	if !strings.HasPrefix(text, "root:\n") {
		t.Fatalf("unexpected prefix:\n%s", text)
	}
	if strings.Index(text, "kind:") > strings.Index(text, "span:") {
		t.Fatalf("kind must precede span:\n%s", text)
	}
	var back map[string]any
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if _, ok := back["diagnostics"]; !ok {
		t.Fatalf("diagnostics key missing")
	}
}
