package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"vhdlparser/internal/ast"
	"vhdlparser/internal/source"
)

// TreeOpts configures FormatTreePretty.
type TreeOpts struct {
	Color bool
	// ShowEmpty keeps absent optional parts and empty lists.
	ShowEmpty bool
}

type treePrinter struct {
	w    io.Writer
	file *source.File
	opts TreeOpts
	kind *color.Color
	name *color.Color
	span *color.Color
	err  error
}

// FormatTreePretty prints the syntax tree rooted at root as an indented
// outline:
//
//	design-file 1:1-3:10
//	└─ units
//	   └─ [0] entity-declaration 1:1-3:10
//	      ├─ name: "e"
//	      ...
func FormatTreePretty(w io.Writer, root ast.Node, f *source.File, opts TreeOpts) error {
	p := &treePrinter{
		w:    w,
		file: f,
		opts: opts,
		kind: color.New(color.FgGreen, color.Bold),
		name: color.New(color.FgCyan),
		span: color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.kind, p.name, p.span} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if root == nil {
		p.printf("<no tree>\n")
		return p.err
	}
	p.printf("%s\n", p.nodeLabel(root))
	p.fields(root, "")
	return p.err
}

func (p *treePrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *treePrinter) nodeLabel(n ast.Node) string {
	sp := n.Span()
	start, end := p.file.Position(sp.Start), p.file.Position(sp.End)
	return fmt.Sprintf("%s %s", p.kind.Sprint(n.Kind()),
		p.span.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col))
}

type treeEntry struct {
	label string
	node  ast.Node   // expanded below the label
	list  []ast.Node // expanded as numbered children
}

func (p *treePrinter) entries(n ast.Node) []treeEntry {
	var out []treeEntry
	for _, fd := range n.Fields() {
		name := p.name.Sprint(fd.Name)
		switch v := fd.Value.(type) {
		case nil:
			if p.opts.ShowEmpty {
				out = append(out, treeEntry{label: name + ": -"})
			}
		case string:
			out = append(out, treeEntry{label: name + ": " + strconv.Quote(v)})
		case bool:
			out = append(out, treeEntry{label: fmt.Sprintf("%s: %t", name, v)})
		case []string:
			if len(v) == 0 && !p.opts.ShowEmpty {
				continue
			}
			quoted := make([]string, len(v))
			for i, s := range v {
				quoted[i] = strconv.Quote(s)
			}
			out = append(out, treeEntry{label: name + ": [" + strings.Join(quoted, ", ") + "]"})
		case ast.Node:
			out = append(out, treeEntry{label: name + ": " + p.nodeLabel(v), node: v})
		case []ast.Node:
			if len(v) == 0 {
				if p.opts.ShowEmpty {
					out = append(out, treeEntry{label: name + ": []"})
				}
				continue
			}
			out = append(out, treeEntry{label: name, list: v})
		}
	}
	return out
}

func (p *treePrinter) fields(n ast.Node, prefix string) {
	entries := p.entries(n)
	for i, e := range entries {
		branch, next := "├─ ", prefix+"│  "
		if i == len(entries)-1 {
			branch, next = "└─ ", prefix+"   "
		}
		p.printf("%s%s%s\n", prefix, branch, e.label)
		switch {
		case e.node != nil:
			p.fields(e.node, next)
		case e.list != nil:
			for j, c := range e.list {
				cb, cn := "├─ ", next+"│  "
				if j == len(e.list)-1 {
					cb, cn = "└─ ", next+"   "
				}
				p.printf("%s%s[%d] %s\n", next, cb, j, p.nodeLabel(c))
				p.fields(c, cn)
			}
		}
	}
}
