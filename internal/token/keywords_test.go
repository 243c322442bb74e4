package token

import (
	"slices"
	"testing"
)

func TestLookupKeywordByStandard(t *testing.T) {
	tests := []struct {
		word string
		std  Standard
		want Kind
		ok   bool
	}{
		{"entity", Std1993, KwEntity, true},
		{"downto", Std2008, KwDownto, true},
		{"protected", Std1993, Ident, false},
		{"protected", Std2002, KwProtected, true},
		{"context", Std2002, Ident, false},
		{"context", Std2008, KwContext, true},
		{"assume_guarantee", Std2008, KwAssumeGuarantee, true},
		{"view", Std2008, Ident, false},
		{"view", Std2019, KwView, true},
		{"std_logic", Std2019, Ident, false},
		{"ENTITY", Std2008, Ident, false}, // callers fold first
	}
	for _, tt := range tests {
		got, ok := LookupKeyword(tt.word, tt.std)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupKeyword(%q, %v) = %v, %v; want %v, %v", tt.word, tt.std, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeywordsGrowWithStandard(t *testing.T) {
	prev := 0
	for _, std := range []Standard{Std1993, Std2002, Std2008, Std2019} {
		n := len(Keywords(std))
		if n <= prev {
			t.Fatalf("standard %v has %d keywords, previous had %d", std, n, prev)
		}
		prev = n
	}
	if !slices.Contains(Keywords(Std1993), "xnor") {
		t.Fatalf("xnor missing from the 1993 set")
	}
}

func TestParseStandard(t *testing.T) {
	for in, want := range map[string]Standard{
		"":          DefaultStandard,
		"93":        Std1993,
		"2002":      Std2002,
		"VHDL-2008": Std2008,
		"vhdl2019":  Std2019,
	} {
		got, err := ParseStandard(in)
		if err != nil || got != want {
			t.Errorf("ParseStandard(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseStandard("1987"); err == nil {
		t.Errorf("1987 should be rejected")
	}
}

func TestKindText(t *testing.T) {
	for k := Invalid; k < keywordEnd; k++ {
		if k == punctBegin || k == punctEnd || k == keywordBegin {
			continue
		}
		if kindText[k] == "" {
			t.Errorf("kind %d has no text", k)
		}
	}
	if KwSignal.Quoted() != "'signal'" || Semicolon.Quoted() != "';'" || Ident.Quoted() != "identifier" {
		t.Errorf("Quoted: %s %s %s", KwSignal.Quoted(), Semicolon.Quoted(), Ident.Quoted())
	}
}

func TestFolder(t *testing.T) {
	f := NewFolder()
	if f.Fold("ArChItEcTuRe") != "architecture" {
		t.Errorf("ascii fold failed")
	}
	if f.Fold("ÉTAT") != f.Fold("état") {
		t.Errorf("latin-1 letters should fold together")
	}
	if !f.SameIdent("Counter", "COUNTER") {
		t.Errorf("basic identifiers differ only in case")
	}
	if f.SameIdent(`\Bus\`, `\BUS\`) {
		t.Errorf("extended identifiers are case-sensitive")
	}
}

func TestTokenCategory(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Ident, "identifier"},
		{ExtendedIdent, "identifier"},
		{KwEntity, "keyword"},
		{KwXor, "operator"},
		{LtEq, "operator"},
		{Semicolon, "delimiter"},
		{BitStringLit, "literal"},
		{EOF, "end-of-input"},
		{Invalid, "invalid"},
	}
	for _, tt := range tests {
		if got := (Token{Kind: tt.kind}).Category(); got != tt.want {
			t.Errorf("Category(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHasNewline(t *testing.T) {
	if HasNewline([]Trivia{{Kind: TriviaSpace}, {Kind: TriviaBlockComment}}) {
		t.Errorf("no newline expected")
	}
	if !HasNewline([]Trivia{{Kind: TriviaSpace}, {Kind: TriviaNewline}}) {
		t.Errorf("newline expected")
	}
}
