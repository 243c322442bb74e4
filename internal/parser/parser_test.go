package parser_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/lexer"
	"vhdlparser/internal/parser"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

func TestMinimalEntity(t *testing.T) {
	root := parseClean(t, "entity e is end entity e;")
	if len(root.Units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(root.Units))
	}
	ent, ok := root.Units[0].(*ast.EntityDecl)
	if !ok {
		t.Fatalf("expected entity, got %s", root.Units[0].Kind())
	}
	if ent.Name != "e" || ent.EndName != "e" {
		t.Fatalf("name=%q end=%q", ent.Name, ent.EndName)
	}
	if ent.Kind() != "entity-declaration" {
		t.Fatalf("kind=%q", ent.Kind())
	}
}

func TestEndLabels(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"omitted", "entity e is end;", nil},
		{"keyword only", "entity e is end entity;", nil},
		{"case insensitive", "entity Counter is end entity COUNTER;", nil},
		{"mismatch", "entity e is end entity f;", []string{"SYN2005"}},
		{"architecture mismatch", "architecture a of e is begin end architecture b;", []string{"SYN2005"}},
		{"process mismatch", "architecture a of e is begin p : process begin wait; end process q; end;", []string{"SYN2005"}},
		{"unlabeled process with end label", "architecture a of e is begin process begin wait; end process q; end;", []string{"SYN2005"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseSrc(t, tc.src)
			if got := codes(p.bag); !slices.Equal(got, tc.want) {
				t.Fatalf("codes=%v want %v (%s)", got, tc.want, diagnosticsSummary(p.bag))
			}
		})
	}
}

func TestMissingSemicolonReportedOnce(t *testing.T) {
	src := `architecture rtl of top is
  signal s1 : bit
  signal s2 : bit;
  signal s3 : bit;
begin
end architecture rtl;
`
	p := parseSrc(t, src)
	if got := codes(p.bag); !slices.Equal(got, []string{"SYN2002"}) {
		t.Fatalf("codes=%v (%s)", got, diagnosticsSummary(p.bag))
	}
	arch := p.res.Root.Units[0].(*ast.ArchitectureBody)
	if len(arch.Decls) != 3 {
		t.Fatalf("expected 3 declarations after recovery, got %d", len(arch.Decls))
	}
	for i, want := range []string{"s1", "s2", "s3"} {
		sig, ok := arch.Decls[i].(*ast.SignalDecl)
		if !ok || sig.Names[0] != want {
			t.Fatalf("decl %d: %#v", i, arch.Decls[i])
		}
	}
	d := p.bag.Items()[0]
	if !strings.Contains(d.Message, "';'") {
		t.Fatalf("message %q", d.Message)
	}
	// the diagnostic points just past 'bit' on the first line
	if pos := p.file.Position(d.Primary.Start); pos.Line != 2 {
		t.Fatalf("diagnostic on line %d", pos.Line)
	}
}

func TestFixSuggestions(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code string
		want diag.FixEdit
	}{
		{"missing semicolon", "entity e is\n  port (a : in bit)\nend;", "SYN2002", diag.FixEdit{NewText: ";"}},
		{"end label", "entity e is end entity f;", "SYN2005", diag.FixEdit{NewText: "e"}},
		{"stray label", "architecture a of e is begin process begin wait; end process q; end;", "SYN2005", diag.FixEdit{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseSrc(t, tc.src)
			items := p.bag.Items()
			if len(items) != 1 || items[0].Code.ID() != tc.code {
				t.Fatalf("diagnostics: %s", diagnosticsSummary(p.bag))
			}
			d := items[0]
			if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
				t.Fatalf("fixes %+v", d.Fixes)
			}
			edit := d.Fixes[0].Edits[0]
			if edit.Span != d.Primary || edit.NewText != tc.want.NewText {
				t.Fatalf("edit %+v for primary %+v", edit, d.Primary)
			}
		})
	}
}

// parseWith checks span nesting on every tree; these inputs leave holes
// the parser has to fill with empty nodes.
func TestRecoverySpansStayNested(t *testing.T) {
	for _, src := range []string{
		"package p is\n  signal s :\nend;\n",
		"entity e is generic (A ",
		"entity e is port (a : in );\nend;",
		"package p is constant c : bit_vector := (; end;",
		"package p is constant c : integer := ; end;",
		"architecture a of e is begin\n  x <= ;\n  y <= (others => );\nend;",
		"architecture a of e is begin p : process begin x := := 1; end process; end;",
	} {
		t.Run(src, func(t *testing.T) {
			p := parseSrc(t, src)
			if p.bag.Len() == 0 {
				t.Fatalf("expected a diagnostic")
			}
		})
	}
}

func TestOneDiagnosticPerSyntaxError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"open aggregate", "package p is constant c : bit_vector := (; end;", "SYN2007"},
		{"doubled assignment", "architecture a of e is begin p : process begin x := := 1; end process; end;", "SYN2007"},
		{"missing semicolon", "package p is\n  signal s : bit\n  signal t : bit;\nend;", "SYN2002"},
		{"missing expression", "package p is constant c : integer := ; end;", "SYN2007"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseSrc(t, tc.src)
			if got := codes(p.bag); !slices.Equal(got, []string{tc.want}) {
				t.Fatalf("codes=%v want [%s] (%s)", got, tc.want, diagnosticsSummary(p.bag))
			}
		})
	}
}

func TestEmptyInputIsFatal(t *testing.T) {
	for _, src := range []string{"", "   \n\t", "-- just a comment\n", "/* block */"} {
		p := parseSrc(t, src)
		if !p.res.Fatal {
			t.Fatalf("%q: expected fatal result", src)
		}
		if got := codes(p.bag); !slices.Equal(got, []string{"FAT9001"}) {
			t.Fatalf("%q: codes=%v", src, got)
		}
		if len(p.res.Root.Units) != 0 {
			t.Fatalf("%q: expected no units", src)
		}
	}
}

func TestGarbageWithoutUnitsIsFatal(t *testing.T) {
	p := parseSrc(t, "foo bar baz;")
	if !p.res.Fatal {
		t.Fatalf("expected fatal: %s", diagnosticsSummary(p.bag))
	}
	got := codes(p.bag)
	if !slices.Contains(got, "SYN2006") || got[len(got)-1] != "FAT9001" {
		t.Fatalf("codes=%v", got)
	}
}

func TestDepthLimit(t *testing.T) {
	nested := func(n int) string {
		return "package p is constant c : integer := " +
			strings.Repeat("(", n) + "1" + strings.Repeat(")", n) + "; end package;"
	}

	p := parseSrc(t, nested(100))
	if p.res.Fatal || p.bag.Len() != 0 {
		t.Fatalf("depth 100 should parse: %s", diagnosticsSummary(p.bag))
	}

	p = parseSrc(t, nested(parser.DefaultMaxDepth+10))
	if !p.res.Fatal {
		t.Fatalf("expected fatal for deep nesting")
	}
	fatal, ok := p.bag.Fatal()
	if !ok || fatal.Code != diag.FatDepthExceeded {
		t.Fatalf("expected depth diagnostic, got %s", diagnosticsSummary(p.bag))
	}

	p = parseWith(t, nested(10), token.DefaultStandard, parser.Options{MaxDepth: 6})
	if !p.res.Fatal {
		t.Fatalf("expected fatal with a small MaxDepth")
	}
}

func TestDeepStatementNesting(t *testing.T) {
	var b strings.Builder
	b.WriteString("architecture a of e is begin process begin\n")
	for range 300 {
		b.WriteString("if c then\n")
	}
	for range 300 {
		b.WriteString("end if;\n")
	}
	b.WriteString("end process; end;")
	p := parseSrc(t, b.String())
	if !p.res.Fatal {
		t.Fatalf("expected fatal")
	}
	if d, _ := p.bag.Fatal(); d.Code != diag.FatDepthExceeded {
		t.Fatalf("codes=%v", codes(p.bag))
	}
}

func TestExpressionShapes(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"a + b * c", "(+ a (* b c))"},
		{"a - b - c", "(- (- a b) c)"},
		{"-a * b", "(- (* a b))"},
		{"a ** 2 * b", "(* (** a 2) b)"},
		{"not a and b", "(and (not a) b)"},
		{"a = b and c /= d", "(and (= a b) (/= c d))"},
		{"a and b and c", "(and (and a b) c)"},
		{"a & b & c", "(& (& a b) c)"},
		{"x sll 2 + 1", "(sll x (+ 2 1))"},
		{"abs a - 1", "(- (abs a) 1)"},
		{"(a + b) * c", "(* (+ a b) c)"},
		{"A MOD B", "(mod A B)"},
		{"10 ns + 5 ns", "(+ 10 ns 5 ns)"},
		{"2.5 us", "2.5 us"},
		{"16#FF#", "16#FF#"},
		{"x\"AB\" & '1'", "(& x\"AB\" '1')"},
		{"?? a", "(?? a)"},
		{"a ?= b", "(?= a b)"},
		{"and v", "(and v)"},
		{"f(x)(1)", "f(x)(1)"},
		{"f(a, b => c)", "f(a, b=>c)"},
		{"v(7 downto 0)", "v(7 downto 0)"},
		{"v(i to j + 1)", "v(i to (+ j 1))"},
		{"v(t'range)", "v(t'range)"},
		{"s'event", "s'event"},
		{"clk'delayed(5 ns)", "clk'delayed(5 ns)"},
		{"work.pkg.c", "work.pkg.c"},
		{"t'(others => '0')", "t'([others=>'0'])"},
		{"(others => '0')", "[others=>'0']"},
		{"(1, 2, 3)", "[1, 2, 3]"},
		{"(0 | 2 => '1', 1 to 3 => '0')", "[0|2=>'1', 1 to 3=>'0']"},
		{"(a => 1, b => 2)", "[a=>1, b=>2]"},
		{"<<signal .tb.dut.s : bit>>", "<<signal .tb.dut.s>>"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			src := "package p is constant c : integer := " + tc.expr + "; end package;"
			root := parseClean(t, src)
			pkg := root.Units[0].(*ast.PackageDecl)
			c := pkg.Decls[0].(*ast.ConstantDecl)
			if got := render(c.Default); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestExpressionErrors(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"a and b or c", "SYN2011"},
		{"a nand b nand c", "SYN2011"},
		{"a = b = c", "SYN2001"},
		{"a +", "SYN2007"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			src := "package p is constant c : integer := " + tc.expr + "; end package;"
			p := parseSrc(t, src)
			if got := codes(p.bag); !slices.Contains(got, tc.want) {
				t.Fatalf("codes=%v want %s", got, tc.want)
			}
			if p.res.Fatal {
				t.Fatalf("expression errors must not be fatal")
			}
		})
	}
	// parenthesised mixing is fine
	parseClean(t, "package p is constant c : boolean := (a and b) or c; end package;")
}

const fsmSource = `library ieee;
use ieee.std_logic_1164.all, ieee.numeric_std.all;

entity fsm is
  generic (WIDTH : integer := 8);
  port (
    clk, rst : in  std_logic;
    data     : out std_logic_vector(WIDTH - 1 downto 0);
    busy     : out std_logic
  );
end entity fsm;

architecture rtl of fsm is
  type state_t is (idle, run, done);
  signal state : state_t := idle;
  signal count : unsigned(7 downto 0);

  component cell is
    port (a : in std_logic; b : out std_logic);
  end component;
begin
  step : process (clk, rst)
    variable n : integer := 0;
  begin
    if rst = '1' then
      state <= idle;
    elsif rising_edge(clk) then
      case state is
        when idle => state <= run;
        when run =>
          if count = 255 then
            state <= done;
          end if;
          count <= count + 1;
          n := n + 1;
        when others => null;
      end case;
    end if;
  end process step;

  data <= std_logic_vector(count) when state = done else (others => '0');

  gen : for i in 0 to 3 generate
    u : entity work.cell(rtl) port map (a => data(i), b => open);
  end generate gen;

  c0 : cell port map (a => clk, b => open);

  with state select
    busy <= '1' when run, '0' when others;

  assert WIDTH > 0 report "bad width" severity failure;
end architecture rtl;
`

func TestFSMDesign(t *testing.T) {
	root := parseClean(t, fsmSource)
	if len(root.Units) != 2 {
		t.Fatalf("units=%d", len(root.Units))
	}
	ent := root.Units[0].(*ast.EntityDecl)
	if len(ent.Context) != 2 || len(ent.Generics) != 1 || len(ent.Ports) != 3 {
		t.Fatalf("entity header: ctx=%d generics=%d ports=%d", len(ent.Context), len(ent.Generics), len(ent.Ports))
	}
	clk := ent.Ports[0].(*ast.InterfaceDecl)
	if !slices.Equal(clk.Names, []string{"clk", "rst"}) || clk.Mode != "in" {
		t.Fatalf("port 0: %+v", clk)
	}

	arch := root.Units[1].(*ast.ArchitectureBody)
	if arch.Entity != "fsm" || arch.EndName != "rtl" {
		t.Fatalf("arch %q of %q end %q", arch.Name, arch.Entity, arch.EndName)
	}

	kinds := countKinds(root)
	want := map[string]int{
		"process-statement":             1,
		"case-statement":                1,
		"case-alternative":              3,
		"if-statement":                  2,
		"conditional-signal-assignment": 1,
		"selected-signal-assignment":    1,
		"for-generate-statement":        1,
		"component-instantiation":       2,
		"concurrent-assertion":          1,
		"variable-assignment":           1,
		"null-statement":                1,
		"component-declaration":         1,
	}
	for k, n := range want {
		if kinds[k] != n {
			t.Errorf("%s: got %d want %d", k, kinds[k], n)
		}
	}

	var units []string
	ast.Inspect(root, func(n ast.Node) bool {
		if u, ok := n.(*ast.InstantiatedUnit); ok {
			units = append(units, u.UnitKind+":"+render(u.Name)+":"+u.Architecture)
		}
		return true
	})
	if !slices.Equal(units, []string{"entity:work.cell:rtl", "component:cell:"}) {
		t.Fatalf("instantiated units %v", units)
	}
}

func TestPackagesAndTypes(t *testing.T) {
	src := `package types is
  constant N : natural := 4;
  type word is array (natural range <>) of bit;
  type matrix is array (0 to 3, 0 to 3) of integer;
  type rec is record
    a, b : integer;
  end record rec;
  type t_time is range 0 to 1000
    units
      fs;
      ps = 1000 fs;
      ns = 1000 ps;
    end units t_time;
  type ptr;
  type ptr is access rec;
  type text_file is file of string;
  subtype small is integer range 0 to 7;
  subtype resolved_word is resolve_fn word(7 downto 0);
  function inc (x : integer) return integer;
  procedure swap (signal a, b : inout bit);
  type counter is protected
    procedure bump;
  end protected counter;
  alias w is word;
  attribute keep : boolean;
  attribute keep of N : constant is true;
  shared variable cnt : counter;
  file log_f : text_file open write_mode is "log.txt";
  signal bus_s : bit bus;
end package types;

package body types is
  function inc (x : integer) return integer is
  begin
    return x + 1;
  end function inc;
  procedure swap (signal a, b : inout bit) is
  begin
    a <= b;
    b <= a;
  end procedure;
  type counter is protected body
    variable v : integer := 0;
    procedure bump is begin v := v + 1; end procedure;
  end protected body counter;
end package body types;
`
	root := parseClean(t, src)
	pkg := root.Units[0].(*ast.PackageDecl)
	if len(pkg.Decls) != 19 {
		t.Fatalf("package decls=%d", len(pkg.Decls))
	}
	kinds := countKinds(root)
	for k, n := range map[string]int{
		"physical-type-definition":    1,
		"secondary-unit-declaration":  2,
		"record-type-definition":      1,
		"index-subtype-definition":    1,
		"access-type-definition":      1,
		"file-type-definition":        1,
		"protected-type-declaration":  1,
		"protected-type-body":         1,
		"subprogram-declaration":      3,
		"subprogram-body":             3,
		"attribute-specification":     1,
		"alias-declaration":           1,
		"package-body":                1,
		"return-statement":            1,
	} {
		if kinds[k] != n {
			t.Errorf("%s: got %d want %d", k, kinds[k], n)
		}
	}
	incomplete := pkg.Decls[5].(*ast.TypeDecl)
	if incomplete.Name != "ptr" || incomplete.Def != nil {
		t.Fatalf("incomplete type: %+v", incomplete)
	}
	sub := pkg.Decls[9].(*ast.SubtypeDecl)
	if render(sub.Subtype.Resolution) != "resolve_fn" || render(sub.Subtype.TypeMark) != "word" {
		t.Fatalf("resolution=%s mark=%s", render(sub.Subtype.Resolution), render(sub.Subtype.TypeMark))
	}
}

func TestMixedArrayIndexes(t *testing.T) {
	p := parseSrc(t, "package p is type a is array (natural range <>, 0 to 3) of bit; end package;")
	if got := codes(p.bag); !slices.Equal(got, []string{"SYN2001"}) {
		t.Fatalf("codes=%v", got)
	}
}

func TestConfigurationAndContext(t *testing.T) {
	src := `context project_ctx is
  library ieee;
  use ieee.std_logic_1164.all;
end context project_ctx;

context work.project_ctx;
package p8 is new work.gen_pkg generic map (W => 8);

configuration cfg of fsm is
  for rtl
    for gen
      for u : cell use entity work.cell(rtl); end for;
    end for;
    for all : cell
      use configuration work.cell_cfg;
    end for;
  end for;
end configuration cfg;
`
	root := parseClean(t, src)
	if len(root.Units) != 3 {
		t.Fatalf("units=%d", len(root.Units))
	}
	if _, ok := root.Units[0].(*ast.ContextDecl); !ok {
		t.Fatalf("unit 0 is %s", root.Units[0].Kind())
	}
	inst := root.Units[1].(*ast.PackageInstantiation)
	if inst.Name != "p8" || len(inst.Context) != 1 || len(inst.GenericMap) != 1 {
		t.Fatalf("instantiation %+v", inst)
	}
	cfg := root.Units[2].(*ast.ConfigurationDecl)
	if cfg.Block == nil || len(cfg.Block.Items) != 2 {
		t.Fatalf("block configuration %+v", cfg.Block)
	}
	if countKinds(root)["component-configuration"] != 2 {
		t.Fatalf("component configurations: %v", countKinds(root))
	}
}

func TestGenerateForms(t *testing.T) {
	src := `architecture a of e is
begin
  g1 : if fast : USE_FAST generate
    x <= y;
  elsif slow : USE_SLOW generate
    signal t : bit;
  begin
    x <= t;
  end slow;
  else generate
    x <= '0';
  end generate g1;

  g2 : case MODE generate
    when 0 => x <= '1';
    when others => x <= '0';
  end generate;

  b1 : block (en = '1')
    port (p : in bit);
    port map (p => y);
  begin
    x <= guarded p;
  end block b1;
end architecture;
`
	root := parseClean(t, src)
	kinds := countKinds(root)
	if kinds["if-generate-statement"] != 1 || kinds["case-generate-statement"] != 1 || kinds["block-statement"] != 1 {
		t.Fatalf("kinds %v", kinds)
	}
	if kinds["generate-branch"] != 5 {
		t.Fatalf("generate branches %d", kinds["generate-branch"])
	}
}

func TestStandardGating(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"process all", "architecture a of e is begin process (all) begin end process; end;"},
		{"matching case", "architecture a of e is begin process begin case? s is when others => null; end case?; end process; end;"},
		{"sequential conditional", "architecture a of e is begin process begin x <= a when c else b; end process; end;"},
		{"conditional variable", "architecture a of e is begin process begin v := a when c else b; end process; end;"},
		{"generic type", "entity e is generic (type t); end;"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseWith(t, tc.src, token.Std2008, parser.Options{})
			if p.bag.Len() != 0 {
				t.Fatalf("2008: %s", diagnosticsSummary(p.bag))
			}
			p = parseWith(t, tc.src, token.Std1993, parser.Options{})
			if got := codes(p.bag); !slices.Contains(got, "SYN2013") {
				t.Fatalf("1993 codes=%v", got)
			}
		})
	}
}

func TestStatementRecovery(t *testing.T) {
	src := `architecture a of e is
begin
  process
  begin
    x <= ;
    y <= 1;
    z := 2;
  end process;
  w <= 3;
end architecture;
`
	p := parseSrc(t, src)
	if p.res.Fatal {
		t.Fatalf("recoverable error produced fatal result")
	}
	if got := codes(p.bag); !slices.Equal(got, []string{"SYN2007"}) {
		t.Fatalf("codes=%v (%s)", got, diagnosticsSummary(p.bag))
	}
	kinds := countKinds(p.res.Root)
	if kinds["variable-assignment"] != 1 || kinds["concurrent-signal-assignment"] != 1 {
		t.Fatalf("later statements lost: %v", kinds)
	}
}

func TestDeclarationAfterBegin(t *testing.T) {
	p := parseSrc(t, "architecture a of e is begin signal s : bit; x <= s; end;")
	if got := codes(p.bag); len(got) != 1 {
		t.Fatalf("codes=%v", got)
	}
	if countKinds(p.res.Root)["concurrent-signal-assignment"] != 1 {
		t.Fatalf("statement after misplaced declaration lost")
	}
}

func TestMaxErrors(t *testing.T) {
	var b strings.Builder
	b.WriteString("architecture a of e is begin\n")
	for range 20 {
		b.WriteString("x <= ;\n")
	}
	b.WriteString("end;")
	p := parseWith(t, b.String(), token.DefaultStandard, parser.Options{MaxErrors: 5})
	if p.bag.Len() != 5 {
		t.Fatalf("expected 5 diagnostics, got %d", p.bag.Len())
	}
	if len(p.res.Root.Units) != 1 {
		t.Fatalf("parsing should continue past the error limit")
	}
}

func TestContextCancelled(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte("entity a is end; entity b is end;"))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := parser.ParseFile(ctx, lx, parser.Options{Reporter: rep})
	if res.Err == nil {
		t.Fatalf("expected context error")
	}
	if res.Root == nil {
		t.Fatalf("root must be set even when cancelled")
	}
}

func TestUnitSpansCoverSource(t *testing.T) {
	src := "entity e is end;\n\narchitecture a of e is begin end;\n"
	root := parseClean(t, src)
	if root.Sp.Start != 0 || int(root.Sp.End) != len(src) {
		t.Fatalf("root span %v", root.Sp)
	}
	first := root.Units[0].Span()
	if got := src[first.Start:first.End]; got != "entity e is end;" {
		t.Fatalf("entity span text %q", got)
	}
}
