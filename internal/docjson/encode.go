package docjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
)

// Options control the textual layout only; the content is the same either way.
type Options struct {
	Pretty bool
	Indent string // defaults to two spaces
}

// Document is the input of Encode.
type Document struct {
	File        *source.File
	Root        ast.Node
	Diagnostics []diag.Diagnostic
}

// DocumentJSON is the ordered JSON form of a document: what Build produces
// and what Decode reads back.
type DocumentJSON struct {
	Root        Object
	Diagnostics []Object
}

var errNoRoot = errors.New("docjson: document has no root")

// Encode serializes doc as {"root": ..., "diagnostics": [...]}.
func Encode(doc Document, opts Options) ([]byte, error) {
	dj, err := Build(doc)
	if err != nil {
		return nil, err
	}
	return dj.Marshal(opts)
}

// Build converts the tree and diagnostics into their ordered JSON form.
// Diagnostics are sorted by span, severity and code.
func Build(doc Document) (*DocumentJSON, error) {
	if doc.Root == nil {
		return nil, errNoRoot
	}
	if doc.File == nil {
		return nil, errors.New("docjson: document has no source file")
	}
	b := builder{file: doc.File}
	root, err := b.node(doc.Root)
	if err != nil {
		return nil, err
	}
	ds := slices.Clone(doc.Diagnostics)
	diag.SortDiagnostics(ds)
	out := &DocumentJSON{Root: root, Diagnostics: make([]Object, 0, len(ds))}
	for _, d := range ds {
		out.Diagnostics = append(out.Diagnostics, b.diagnostic(d))
	}
	return out, nil
}

// Object returns the top-level JSON object.
func (d *DocumentJSON) Object() Object {
	diags := make([]any, len(d.Diagnostics))
	for i, o := range d.Diagnostics {
		diags[i] = o
	}
	return Object{
		{Key: "root", Value: d.Root},
		{Key: "diagnostics", Value: diags},
	}
}

// Marshal renders the document. Equal documents produce equal bytes.
func (d *DocumentJSON) Marshal(opts Options) ([]byte, error) {
	if d == nil || d.Root == nil {
		return nil, errNoRoot
	}
	compact, err := appendValue(nil, d.Object())
	if err != nil {
		return nil, fmt.Errorf("docjson: %w", err)
	}
	if !opts.Pretty {
		return compact, nil
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("docjson: indent: %w", err)
	}
	return buf.Bytes(), nil
}

type builder struct {
	file *source.File
}

func (b *builder) span(sp source.Span) Object {
	start := b.file.Position(sp.Start)
	end := b.file.Position(sp.End)
	return Object{
		{Key: "start", Value: Object{{Key: "line", Value: start.Line}, {Key: "col", Value: start.Col}}},
		{Key: "end", Value: Object{{Key: "line", Value: end.Line}, {Key: "col", Value: end.Col}}},
	}
}

func (b *builder) node(n ast.Node) (Object, error) {
	fields := n.Fields()
	children := make(Object, 0, len(fields))
	for _, fd := range fields {
		v, err := b.value(fd.Value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", n.Kind(), fd.Name, err)
		}
		children = append(children, Member{Key: fd.Name, Value: v})
	}
	return Object{
		{Key: "kind", Value: n.Kind()},
		{Key: "span", Value: b.span(n.Span())},
		{Key: "children", Value: children},
	}, nil
}

func (b *builder) value(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return x, nil
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, nil
	case ast.Node:
		return b.node(x)
	case []ast.Node:
		out := make([]any, len(x))
		for i, c := range x {
			if c == nil {
				return nil, fmt.Errorf("nil element %d", i)
			}
			o, err := b.node(c)
			if err != nil {
				return nil, err
			}
			out[i] = o
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported field value %T", v)
}

func (b *builder) diagnostic(d diag.Diagnostic) Object {
	o := Object{
		{Key: "severity", Value: d.Severity.Label()},
		{Key: "code", Value: d.Code.ID()},
		{Key: "message", Value: d.Message},
		{Key: "span", Value: b.span(d.Primary)},
	}
	if len(d.Notes) > 0 {
		notes := make([]any, len(d.Notes))
		for i, n := range d.Notes {
			notes[i] = Object{{Key: "message", Value: n.Msg}, {Key: "span", Value: b.span(n.Span)}}
		}
		o = append(o, Member{Key: "notes", Value: notes})
	}
	return o
}
