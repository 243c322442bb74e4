package diag

import "vhdlparser/internal/source"

// reportKey identifies a report for duplicate suppression. Notes and fixes
// do not take part.
type reportKey struct {
	code Code
	sev  Severity
	at   source.Span
	msg  string
}

// DedupReporter forwards each distinct report to next once. Parser recovery
// can revisit the same token and emit the same complaint twice; only the
// first survives.
type DedupReporter struct {
	next Reporter
	seen map[reportKey]bool
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: map[reportKey]bool{}}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r == nil {
		return
	}
	k := reportKey{code: code, sev: sev, at: primary, msg: msg}
	if r.seen[k] {
		return
	}
	r.seen[k] = true
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes, fixes)
	}
}
