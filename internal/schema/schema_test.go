package schema_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vhdlparser/internal/docjson"
	"vhdlparser/internal/schema"
	"vhdlparser/internal/vhdl"
)

func TestParsedDocumentsValidate(t *testing.T) {
	v, err := schema.New()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	srcs := []string{
		"entity e is end entity e;",
		`library ieee;
use ieee.std_logic_1164.all;
entity counter is
  generic (WIDTH : natural := 8);
  port (clk : in std_logic; q : out std_logic_vector(WIDTH - 1 downto 0));
end entity counter;
architecture rtl of counter is
  signal cnt : unsigned(WIDTH - 1 downto 0) := (others => '0');
begin
  process (clk)
  begin
    if rising_edge(clk) then
      cnt <= cnt + 1;
    end if;
  end process;
  q <= std_logic_vector(cnt);
end architecture rtl;
`,
		// documents with error diagnostics still validate
		"entity e is end entity f;",
	}
	for _, src := range srcs {
		doc, err := vhdl.Parse(context.Background(), []byte(src), vhdl.Options{})
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		for _, pretty := range []bool{false, true} {
			out, err := doc.JSON(docjson.Options{Pretty: pretty})
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if err := v.ValidateJSON(out); err != nil {
				t.Fatalf("validate %q: %v", src, err)
			}
		}
	}
}

func TestInvalidDocuments(t *testing.T) {
	v, err := schema.New()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	span := `{"start":{"line":1,"col":1},"end":{"line":1,"col":2}}`
	cases := map[string]string{
		"missing diagnostics": `{"root":{"kind":"design-file","span":` + span + `,"children":{}}}`,
		"wrong root kind":     `{"root":{"kind":"entity-declaration","span":` + span + `,"children":{}},"diagnostics":[]}`,
		"zero line":           `{"root":{"kind":"design-file","span":{"start":{"line":0,"col":1},"end":{"line":1,"col":1}},"children":{}},"diagnostics":[]}`,
		"bad severity":        `{"root":{"kind":"design-file","span":` + span + `,"children":{}},"diagnostics":[{"severity":"bad","code":"SYN2001","message":"m","span":` + span + `}]}`,
		"bad code":            `{"root":{"kind":"design-file","span":` + span + `,"children":{}},"diagnostics":[{"severity":"error","code":"E1","message":"m","span":` + span + `}]}`,
		"number child":        `{"root":{"kind":"design-file","span":` + span + `,"children":{"x":1}},"diagnostics":[]}`,
		"extra key":           `{"root":{"kind":"design-file","span":` + span + `,"children":{}},"diagnostics":[],"extra":1}`,
		"missing children":    `{"root":{"kind":"design-file","span":` + span + `},"diagnostics":[]}`,
		"missing root":        `{"diagnostics":[]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(in))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var verr *schema.ValidationError
			if !errors.As(err, &verr) || len(verr.Problems) == 0 {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestSourceIsPublished(t *testing.T) {
	if !strings.Contains(schema.Source(), "#Document") {
		t.Fatalf("schema source missing #Document")
	}
}
