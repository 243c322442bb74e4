package diag

import (
	"testing"

	"vhdlparser/internal/source"
)

func TestBagLimitKeepsFatal(t *testing.T) {
	b := NewBag(2)
	for i := range 4 {
		b.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x"))
	}
	if b.Len() != 2 || b.Dropped() != 2 {
		t.Fatalf("len=%d dropped=%d, want 2 and 2", b.Len(), b.Dropped())
	}
	if !b.Add(NewFatal(FatDepthExceeded, source.Span{}, "too deep")) {
		t.Fatalf("fatal diagnostic must bypass the limit")
	}
	d, ok := b.Fatal()
	if !ok || d.Code != FatDepthExceeded {
		t.Fatalf("Fatal() = %v, %v", d, ok)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	r := BagReporter{Bag: b}
	r.Report(SynExpectSemicolon, SevError, source.Span{Start: 10, End: 11}, "b", nil, nil)
	r.Report(LexUnknownChar, SevError, source.Span{Start: 2, End: 3}, "a", nil, nil)
	r.Report(SynNewerStandard, SevWarning, source.Span{Start: 10, End: 11}, "c", nil, nil)
	r.Report(LexUnknownChar, SevError, source.Span{Start: 2, End: 3}, "a", nil, nil)

	b.Dedup()
	b.Sort()
	got := b.Items()
	if len(got) != 3 {
		t.Fatalf("dedup left %d items", len(got))
	}
	want := []Code{LexUnknownChar, SynExpectSemicolon, SynNewerStandard}
	for i, c := range want {
		if got[i].Code != c {
			t.Errorf("item %d = %s, want %s", i, got[i].Code.ID(), c.ID())
		}
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: b})
	sp := source.Span{Start: 1, End: 2}
	ReportError(r, SynExpectIdentifier, sp, "expected identifier").Emit()
	ReportError(r, SynExpectIdentifier, sp, "expected identifier").Emit()
	ReportError(r, SynExpectIdentifier, sp, "expected identifier, got ';'").Emit()
	if b.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2", b.Len())
	}
}

func TestCodeAndSeverityStrings(t *testing.T) {
	for _, c := range []Code{LexUnknownChar, SynEndLabelMismatch, FatNoDesignUnit} {
		back, err := ParseCode(c.ID())
		if err != nil || back != c {
			t.Errorf("ParseCode(%q) = %v, %v", c.ID(), back, err)
		}
	}
	if FatDepthExceeded.ID() != "FAT9002" {
		t.Errorf("ID = %s", FatDepthExceeded.ID())
	}
	if _, err := ParseCode("SYN9002"); err == nil {
		t.Errorf("mismatched prefix accepted")
	}
	for _, s := range []Severity{SevInfo, SevWarning, SevError, SevFatal} {
		back, err := ParseSeverity(s.Label())
		if err != nil || back != s {
			t.Errorf("ParseSeverity(%q) = %v, %v", s.Label(), back, err)
		}
	}
}
