package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"vhdlparser/internal/diag"
	"vhdlparser/internal/lexer"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) codes() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code.ID())
	}
	return out
}

func (r *testReporter) messages() string {
	var b strings.Builder
	for _, d := range r.diagnostics {
		fmt.Fprintf(&b, "[%s] %s: %s\n", d.Code.ID(), d.Severity, d.Message)
	}
	return b.String()
}

func makeTestLexer(input string, std token.Standard) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vhd", []byte(input))
	reporter := &testReporter{}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter, Standard: std})
	return lx, reporter
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func expectKinds(t *testing.T, input string, std token.Standard, want ...token.Kind) []token.Token {
	t.Helper()
	lx, rep := makeTestLexer(input, std)
	toks := lx.All()
	got := kinds(toks)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v (%q), want %v", input, i, got[i], toks[i].Text, want[i])
		}
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("%q: unexpected diagnostics:\n%s", input, rep.messages())
	}
	return toks
}

func TestKeywordsIgnoreCaseAndKeepSpelling(t *testing.T) {
	toks := expectKinds(t, "ENTITY Foo IS End Entity;", token.Std2008,
		token.KwEntity, token.Ident, token.KwIs, token.KwEnd, token.KwEntity, token.Semicolon)
	if toks[0].Text != "ENTITY" || toks[3].Text != "End" {
		t.Fatalf("original spelling lost: %q %q", toks[0].Text, toks[3].Text)
	}
}

func TestKeywordSetFollowsStandard(t *testing.T) {
	expectKinds(t, "context protected", token.Std1993, token.Ident, token.Ident)
	expectKinds(t, "context protected", token.Std2002, token.Ident, token.KwProtected)
	expectKinds(t, "context protected", token.Std2008, token.KwContext, token.KwProtected)
	expectKinds(t, "view", token.Std2019, token.KwView)
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		in   string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"1_000_000", token.IntLit},
		{"1E6", token.IntLit},
		{"3.14", token.RealLit},
		{"1.0e-3", token.RealLit},
		{"16#FF#", token.BasedLit},
		{"2#1010_1010#", token.BasedLit},
		{"16#F.8#E+2", token.BasedLit},
		{"8:777:", token.BasedLit},
	}
	for _, tt := range tests {
		toks := expectKinds(t, tt.in, token.Std2008, tt.kind)
		if toks[0].Text != tt.in {
			t.Errorf("%q: text %q", tt.in, toks[0].Text)
		}
	}
}

func TestBadNumbers(t *testing.T) {
	for _, in := range []string{"1__0", "1_", "17#1#", "2#102#", "16#FF", "1E-3"} {
		lx, rep := makeTestLexer(in, token.Std2008)
		lx.All()
		if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexBadNumber {
			t.Errorf("%q: diagnostics %v", in, rep.codes())
		}
	}
}

func TestPhysicalLiteralSplitsIntoNumberAndUnit(t *testing.T) {
	expectKinds(t, "10 ns 5ps", token.Std2008, token.IntLit, token.Ident, token.IntLit, token.Ident)
}

func TestStringsAndBitStrings(t *testing.T) {
	toks := expectKinds(t, `"say ""hi""" X"FF_00" b"0101" 12UX"ABC" D"255" %pct%`, token.Std2008,
		token.StringLit, token.BitStringLit, token.BitStringLit, token.BitStringLit, token.BitStringLit, token.StringLit)
	if toks[0].Text != `"say ""hi"""` {
		t.Fatalf("string text %q", toks[0].Text)
	}
	if toks[3].Text != `12UX"ABC"` {
		t.Fatalf("sized bit string text %q", toks[3].Text)
	}
}

func TestBitStringValidation(t *testing.T) {
	tests := []struct {
		in  string
		std token.Standard
		bad bool
	}{
		{`B"0102"`, token.Std2008, true},
		{`O"78"`, token.Std2008, true},
		{`D"12A"`, token.Std2008, true},
		{`B"01ZX"`, token.Std2008, false},
		{`B"01ZX"`, token.Std1993, true},
		{`8X"FF"`, token.Std1993, true},
		{`X"_F"`, token.Std2008, true},
	}
	for _, tt := range tests {
		lx, rep := makeTestLexer(tt.in, tt.std)
		toks := lx.All()
		if toks[0].Kind != token.BitStringLit {
			t.Errorf("%q: kind %v", tt.in, toks[0].Kind)
		}
		if got := len(rep.diagnostics) > 0; got != tt.bad {
			t.Errorf("%q (std %v): bad=%v, diagnostics %v", tt.in, tt.std, got, rep.codes())
		}
	}
}

func TestTickVersusCharacterLiteral(t *testing.T) {
	expectKinds(t, "s'event and s = '1'", token.Std2008,
		token.Ident, token.Tick, token.Ident, token.KwAnd, token.Ident, token.Eq, token.CharLit)
	expectKinds(t, "t'('a')", token.Std2008,
		token.Ident, token.Tick, token.LParen, token.CharLit, token.RParen)
	expectKinds(t, "v(3 downto 0)'length", token.Std2008,
		token.Ident, token.LParen, token.IntLit, token.KwDownto, token.IntLit, token.RParen, token.Tick, token.Ident)
	expectKinds(t, "(''', ' ')", token.Std2008,
		token.LParen, token.CharLit, token.Comma, token.CharLit, token.RParen)
}

func TestExtendedIdentifiers(t *testing.T) {
	toks := expectKinds(t, `\my signal\ \a\\b\`, token.Std2008, token.ExtendedIdent, token.ExtendedIdent)
	if toks[1].Text != `\a\\b\` {
		t.Fatalf("text %q", toks[1].Text)
	}

	lx, rep := makeTestLexer("\\open\nx", token.Std2008)
	got := kinds(lx.All())
	if got[0] != token.ExtendedIdent || got[1] != token.Ident {
		t.Fatalf("unterminated extended identifier should close at end of line: %v", got)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedExtIdent {
		t.Fatalf("diagnostics %v", rep.codes())
	}
}

func TestOperatorsAndDelimiters(t *testing.T) {
	expectKinds(t, "<= := => /= >= ** <> & | ! ; , . ( ) [ ]", token.Std2008,
		token.LtEq, token.VarAssign, token.Arrow, token.NotEq, token.GtEq, token.StarStar, token.Box,
		token.Amp, token.Bar, token.Bar, token.Semicolon, token.Comma, token.Dot,
		token.LParen, token.RParen, token.LBracket, token.RBracket)
	expectKinds(t, "?? ?= ?/= ?< ?<= ?> ?>= << >>", token.Std2008,
		token.Condition, token.MatchEq, token.MatchNotEq, token.MatchLt, token.MatchLtEq,
		token.MatchGt, token.MatchGtEq, token.DoubleLt, token.DoubleGt)
	expectKinds(t, "a<<b", token.Std1993, token.Ident, token.Lt, token.Lt, token.Ident)
}

func TestCommentsAreTrivia(t *testing.T) {
	src := "-- header\nentity /* inline */ e is -- trailing\nend;"
	lx, rep := makeTestLexer(src, token.Std2008)
	toks := lx.All()
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", rep.messages())
	}
	if toks[0].Kind != token.KwEntity || len(toks[0].Leading) != 2 {
		t.Fatalf("entity leading trivia = %+v", toks[0].Leading)
	}
	if toks[0].Leading[0].Kind != token.TriviaLineComment || toks[0].Leading[0].Text != "-- header" {
		t.Fatalf("line comment trivia = %+v", toks[0].Leading[0])
	}
	if toks[1].Leading[1].Kind != token.TriviaBlockComment {
		t.Fatalf("block comment trivia = %+v", toks[1].Leading)
	}
	if !toks[3].OnNewLine() {
		t.Fatalf("'end' should be on a new line")
	}

	// before 2008 "/*" is two operators
	expectKinds(t, "a /* b", token.Std1993, token.Ident, token.Slash, token.Star, token.Ident)
}

func TestSpansCoverSourceExactly(t *testing.T) {
	src := "architecture rtl of top is\n  signal s : bit; -- c\nbegin\nend;\n"
	lx, _ := makeTestLexer(src, token.Std2008)
	toks := lx.All()

	var rebuilt strings.Builder
	last := uint32(0)
	for _, tok := range toks {
		for _, tv := range tok.Leading {
			if tv.Span.Start != last {
				t.Fatalf("gap before trivia %+v at %d", tv, last)
			}
			rebuilt.WriteString(tv.Text)
			last = tv.Span.End
		}
		if tok.Span.Start != last {
			t.Fatalf("gap before token %q at %d", tok.Text, last)
		}
		if src[tok.Span.Start:tok.Span.End] != tok.Text {
			t.Fatalf("span/text mismatch for %q", tok.Text)
		}
		rebuilt.WriteString(tok.Text)
		last = tok.Span.End
	}
	if rebuilt.String() != src {
		t.Fatalf("tokens and trivia do not rebuild the source:\n%q", rebuilt.String())
	}
}

func TestUnknownCharactersRecover(t *testing.T) {
	lx, rep := makeTestLexer("a $ b ` c", token.Std2008)
	got := kinds(lx.All())
	want := []token.Kind{token.Ident, token.Invalid, token.Ident, token.Invalid, token.Ident, token.EOF}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if len(rep.diagnostics) != 2 || rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatalf("diagnostics %v", rep.codes())
	}
}

func TestInvalidUTF8(t *testing.T) {
	lx, rep := makeTestLexer("a \xff b", token.Std2008)
	got := kinds(lx.All())
	if got[1] != token.Invalid || got[2] != token.Ident {
		t.Fatalf("got %v", got)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexInvalidUTF8 {
		t.Fatalf("diagnostics %v", rep.codes())
	}
}

func TestMalformedIdentifiers(t *testing.T) {
	for _, in := range []string{"a__b", "trailing_", "_lead"} {
		lx, rep := makeTestLexer(in, token.Std2008)
		toks := lx.All()
		if toks[0].Kind != token.Ident || toks[0].Text != in {
			t.Errorf("%q: token %v %q", in, toks[0].Kind, toks[0].Text)
		}
		if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexBadIdentifier {
			t.Errorf("%q: diagnostics %v", in, rep.codes())
		}
	}
}

func TestNulByteIsFatal(t *testing.T) {
	lx, rep := makeTestLexer("entity\x00 e is end;", token.Std2008)
	toks := lx.All()
	if len(toks) != 3 || toks[1].Kind != token.Invalid || toks[2].Kind != token.EOF {
		t.Fatalf("scan should stop after the NUL byte: %v", kinds(toks))
	}
	if !lx.Fatal() {
		t.Fatalf("lexer not marked fatal")
	}
	last := rep.diagnostics[len(rep.diagnostics)-1]
	if last.Severity != diag.SevFatal || last.Code != diag.FatLexCorruption {
		t.Fatalf("diagnostics %v", rep.codes())
	}
}

func TestTooManyErrorsIsFatal(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("junk.vhd", []byte(strings.Repeat("$ ", 20)))
	rep := &testReporter{}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep, MaxErrors: 5})
	toks := lx.All()
	if len(toks) != 7 {
		t.Fatalf("expected 6 invalid tokens and EOF, got %d", len(toks))
	}
	fatal := 0
	for _, d := range rep.diagnostics {
		if d.Severity == diag.SevFatal {
			fatal++
		}
	}
	if fatal != 1 || lx.Errors() != 6 {
		t.Fatalf("fatal=%d errors=%d", fatal, lx.Errors())
	}
}

func TestTokenTooLong(t *testing.T) {
	lx, rep := makeTestLexer(`"`+strings.Repeat("a", 70*1024)+`"`, token.Std2008)
	toks := lx.All()
	if toks[0].Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", toks[0].Kind)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexTokenTooLong {
		t.Fatalf("diagnostics %v", rep.codes())
	}
}

func TestPeekResetAndEOF(t *testing.T) {
	lx, _ := makeTestLexer("library ieee;", token.Std2008)
	if p := lx.Peek(); p.Kind != token.KwLibrary {
		t.Fatalf("Peek = %v", p.Kind)
	}
	if p := lx.Peek(); p.Kind != token.KwLibrary {
		t.Fatalf("second Peek = %v", p.Kind)
	}
	first := lx.All()
	for range 3 {
		if k := lx.Next().Kind; k != token.EOF {
			t.Fatalf("after EOF got %v", k)
		}
	}
	lx.Reset()
	second := lx.All()
	if fmt.Sprint(kinds(first)) != fmt.Sprint(kinds(second)) {
		t.Fatalf("restart produced a different stream: %v vs %v", kinds(first), kinds(second))
	}
}

func TestEOFKeepsTrailingComment(t *testing.T) {
	lx, _ := makeTestLexer("end; -- bye", token.Std2008)
	toks := lx.All()
	eof := toks[len(toks)-1]
	if len(eof.Leading) != 2 || eof.Leading[1].Text != "-- bye" {
		t.Fatalf("EOF leading = %+v", eof.Leading)
	}
}
