package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
)

const tabWidth = 4

type palette struct {
	sev   map[diag.Severity]*color.Color
	code  *color.Color
	path  *color.Color
	gut   *color.Color
	caret *color.Color
	note  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevFatal:   color.New(color.FgMagenta, color.Bold),
		},
		code:  color.New(color.Bold),
		path:  color.New(color.FgWhite, color.Bold),
		gut:   color.New(color.FgBlue),
		caret: color.New(color.FgRed, color.Bold),
		note:  color.New(color.FgCyan),
	}
	all := []*color.Color{p.code, p.path, p.gut, p.caret, p.note}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty prints diagnostics for humans, in the order given (sort them
// first). For each one:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <context lines>
//	  <primary line>
//	  ^~~~ under the primary span
//
// followed by notes and fixes when enabled.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i := range diags {
		d := &diags[i]
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fs.Get(d.Primary.File)
	start := f.Position(d.Primary.Start)
	sevColor := p.sev[d.Severity]
	if sevColor == nil {
		sevColor = p.code
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", formatPath(fs, f, opts.PathMode), start.Line, start.Col),
		sevColor.Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message,
	)
	writeSnippet(w, f, d.Primary, opts, p)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			label := p.note.Sprint("note")
			if n.Span == (source.Span{}) {
				fmt.Fprintf(w, "  %s: %s\n", label, n.Msg)
				continue
			}
			nf := fs.Get(n.Span.File)
			pos := nf.Position(n.Span.Start)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", label, formatPath(fs, nf, opts.PathMode), pos.Line, pos.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s: %s\n", p.note.Sprint("help"), fix.Title)
			for _, e := range fix.Edits {
				fmt.Fprintf(w, "        replace %q with %q\n", f.Text(e.Span), e.NewText)
			}
		}
	}
}

// writeSnippet prints the context lines and the primary line with a caret
// underline. Multi-line spans are underlined to the end of their first line.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, p palette) {
	if len(f.Content) == 0 {
		return
	}
	start := f.Position(sp.Start)
	end := f.Position(sp.End)

	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	gutter := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := clip(expandTabs(f.GetLine(ln)), opts.Width)
		fmt.Fprintf(w, "  %s %s\n", p.gut.Sprintf("%*d |", gutter, ln), text)
	}

	line := f.GetLine(start.Line)
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(max(int(end.Col)-1, from), len(line))
	}
	pad := displayWidth(line[:from])
	width := max(displayWidth(line[:to])-pad, 1)
	if opts.Width > 0 && pad+width > int(opts.Width) {
		width = max(int(opts.Width)-pad, 1)
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s %s%s\n", p.gut.Sprintf("%*s |", gutter, ""), strings.Repeat(" ", pad), p.caret.Sprint(underline))
}

func displayWidth(s string) int {
	col := 0
	for _, r := range s {
		if r == '\t' {
			col += tabWidth - col%tabWidth
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}

func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "...")
}
