package diag

import (
	"cmp"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"vhdlparser/internal/source"
)

// shortLine is one row of the short diagnostic format.
type shortLine struct {
	sev, code, path string
	line, col       uint32
	msg             string
}

func (l shortLine) String() string {
	var b strings.Builder
	b.WriteString(l.sev)
	b.WriteByte(' ')
	b.WriteString(l.code)
	b.WriteByte(' ')
	b.WriteString(l.path)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(l.line), 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(l.col), 10))
	b.WriteByte(' ')
	b.WriteString(l.msg)
	return b.String()
}

func compareShortLines(a, b shortLine) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.line, b.line),
		cmp.Compare(a.col, b.col),
		cmp.Compare(a.sev, b.sev),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.msg, b.msg),
	)
}

// FormatGoldenDiagnostics renders diagnostics one per line as
// "severity CODE path:line:col message". Lines are ordered by location so
// the output is stable across runs; it backs golden tests and the CLI short
// format. Notes become extra "note" lines when includeNotes is set.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	var lines []shortLine
	for i := range diags {
		d := &diags[i]
		code := d.Code.ID()
		if l, ok := shortLineAt(fs, d.Primary); ok {
			l.sev, l.code, l.msg = d.Severity.Label(), code, oneLine(d.Message)
			lines = append(lines, l)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if l, ok := shortLineAt(fs, n.Span); ok {
				l.sev, l.code, l.msg = "note", code, oneLine(n.Msg)
				lines = append(lines, l)
			}
		}
	}
	slices.SortStableFunc(lines, compareShortLines)

	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.String()
	}
	return strings.Join(rows, "\n")
}

// shortLineAt fills in the location part of a row. Spans pointing at files
// the set does not know are dropped.
func shortLineAt(fs *source.FileSet, sp source.Span) (shortLine, bool) {
	if int(sp.File) >= fs.Len() {
		return shortLine{}, false
	}
	f := fs.Get(sp.File)
	pos := f.Position(sp.Start)
	p := filepath.ToSlash(f.FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return shortLine{path: p, line: pos.Line, col: pos.Col}, true
}

func oneLine(msg string) string {
	msg = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg)
	return strings.TrimSpace(msg)
}
