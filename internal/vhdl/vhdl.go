// Package vhdl runs the whole pipeline: source text to tokens, tokens to a
// syntax tree, and the tree plus its diagnostics to JSON.
package vhdl

import (
	"context"
	"fmt"

	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/docjson"
	"vhdlparser/internal/lexer"
	"vhdlparser/internal/observ"
	"vhdlparser/internal/parser"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// DefaultName labels sources that have no file behind them.
const DefaultName = "<input>"

type Options struct {
	Name           string
	Standard       token.Standard
	Encoding       source.Encoding
	MaxDepth       int
	MaxDiagnostics int           // 0 = unlimited; fatal diagnostics are always kept
	Timer          *observ.Timer // optional
}

// Document is the result of one parse. It is read-only once returned.
type Document struct {
	FileSet     *source.FileSet
	File        *source.File
	Root        *ast.DesignFile
	Diagnostics []diag.Diagnostic
}

// Parse decodes src with opts.Encoding and parses it. The error is non-nil
// only when the bytes cannot be decoded or ctx is done; syntax problems
// are reported as diagnostics on the Document.
func Parse(ctx context.Context, src []byte, opts Options) (*Document, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	fs := source.NewFileSet()
	idx := opts.Timer.Begin("load")
	id, err := fs.AddSource(name, src, opts.Encoding, true)
	opts.Timer.End(idx, "")
	if err != nil {
		return nil, err
	}
	return ParseFile(ctx, fs, id, opts)
}

// ParseFile parses a file already present in fs.
func ParseFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*Document, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("vhdl: unknown file id %d", id)
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	idx := opts.Timer.Begin("parse")
	lx := lexer.New(file, lexer.Options{Reporter: rep, Standard: opts.Standard})
	res := parser.ParseFile(ctx, lx, parser.Options{
		Reporter:  rep,
		MaxErrors: opts.MaxDiagnostics,
		MaxDepth:  opts.MaxDepth,
	})
	opts.Timer.End(idx, fmt.Sprintf("%d units, %d diagnostics", len(res.Root.Units), bag.Len()))
	if res.Err != nil {
		return nil, fmt.Errorf("vhdl: %s: %w", file.Path, res.Err)
	}

	bag.Sort()
	return &Document{
		FileSet:     fs,
		File:        file,
		Root:        res.Root,
		Diagnostics: bag.Items(),
	}, nil
}

// Fatal returns the first fatal diagnostic, if any.
func (d *Document) Fatal() (diag.Diagnostic, bool) {
	for _, it := range d.Diagnostics {
		if it.Severity == diag.SevFatal {
			return it, true
		}
	}
	return diag.Diagnostic{}, false
}

// HasErrors reports whether any diagnostic is an error or worse.
func (d *Document) HasErrors() bool {
	for _, it := range d.Diagnostics {
		if it.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// JSON encodes the document whether or not it carries a fatal diagnostic.
func (d *Document) JSON(opts docjson.Options) ([]byte, error) {
	return docjson.Encode(docjson.Document{
		File:        d.File,
		Root:        d.Root,
		Diagnostics: d.Diagnostics,
	}, opts)
}

// ToJSON encodes the document, or returns a *FatalError when it carries a
// fatal diagnostic.
func (d *Document) ToJSON(opts docjson.Options) ([]byte, error) {
	if f, ok := d.Fatal(); ok {
		return nil, d.fatalError(f)
	}
	return d.JSON(opts)
}

// Format renders a diagnostic as "path:line:col: severity CODE: message".
func (d *Document) Format(it diag.Diagnostic) string {
	pos := d.File.Position(it.Primary.Start)
	return fmt.Sprintf("%s:%d:%d: %s %s: %s",
		d.File.Path, pos.Line, pos.Col, it.Severity.Label(), it.Code.ID(), it.Message)
}

func (d *Document) fatalError(f diag.Diagnostic) *FatalError {
	return &FatalError{
		Path:       d.File.Path,
		Pos:        d.File.Position(f.Primary.Start),
		Diagnostic: f,
	}
}

// ToJSON runs the whole pipeline over src.
func ToJSON(ctx context.Context, src []byte, opts Options, jopts docjson.Options) ([]byte, error) {
	timer := opts.Timer
	doc, err := Parse(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	idx := timer.Begin("encode")
	out, err := doc.ToJSON(jopts)
	timer.End(idx, "")
	return out, err
}

// FatalError is a parse that produced no usable document.
type FatalError struct {
	Path       string
	Pos        source.LineCol
	Diagnostic diag.Diagnostic
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Diagnostic.Code.ID(), e.Diagnostic.Message)
}

// Code is the fatal diagnostic's code.
func (e *FatalError) Code() diag.Code { return e.Diagnostic.Code }
