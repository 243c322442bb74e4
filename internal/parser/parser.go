package parser

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/lexer"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// DefaultMaxDepth bounds the nesting of expressions, statements and
// declarative regions.
const DefaultMaxDepth = 256

type Options struct {
	Reporter diag.Reporter
	// MaxErrors stops reporting syntax errors after this many; 0 means no limit.
	// Parsing itself continues.
	MaxErrors int
	MaxDepth  int
}

// Result is what ParseFile produces. Root is never nil.
type Result struct {
	Root *ast.DesignFile
	// Fatal is set when parsing was abandoned: lexical corruption, depth
	// limit or no design unit at all. The fatal diagnostic went to the reporter.
	Fatal bool
	// Err is the context error if parsing was cancelled between units.
	Err error
}

type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	fold     *token.Folder
	tok      token.Token   // current token
	ahead    []token.Token // tokens after tok, filled on demand
	lastSpan source.Span   // span of the last consumed token
	lastKind token.Kind
	depth    int
	errors   int
	errAt    source.Span // primary span of the last syntax error
	reach    uint32      // furthest empty node created so far
	fatal    bool
}

// bailout unwinds the recursive descent once a fatal condition is reported.
type bailout struct{}

// ParseFile parses a whole design file from lx.
func ParseFile(ctx context.Context, lx *lexer.Lexer, opts Options) (res Result) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	file := lx.File()
	p := &Parser{
		lx:   lx,
		file: file,
		opts: opts,
		fold: token.NewFolder(),
	}
	root := &ast.DesignFile{Sp: p.fileSpan()}
	res.Root = root

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			res.Fatal = true
		}
		if lx.Fatal() {
			res.Fatal = true
		}
	}()

	p.lastSpan = source.Span{File: file.ID}
	p.tok = p.lx.Next()

	for !p.at(token.EOF) {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		start := p.tok.Span.Start
		if u := p.parseDesignUnit(); u != nil {
			root.Units = append(root.Units, u)
		}
		if p.lx.Fatal() {
			break
		}
		if p.tok.Span.Start == start && !p.at(token.EOF) {
			p.advance()
		}
	}

	if len(root.Units) == 0 && !p.lx.Fatal() {
		msg := "no design unit found"
		if len(file.Content) == 0 {
			msg = "empty input: no design unit found"
		}
		p.fatalf(diag.FatNoDesignUnit, p.tok.Span, "%s", msg)
		res.Fatal = true
	}
	return res
}

func (p *Parser) fileSpan() source.Span {
	n, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		n = ^uint32(0)
	}
	return source.Span{File: p.file.ID, Start: 0, End: n}
}

// peek returns the n-th token after the current one; peek(0) is the current token.
func (p *Parser) peek(n int) token.Token {
	if n == 0 {
		return p.tok
	}
	for len(p.ahead) < n {
		if len(p.ahead) > 0 && p.ahead[len(p.ahead)-1].Kind == token.EOF {
			return p.ahead[len(p.ahead)-1]
		}
		p.ahead = append(p.ahead, p.lx.Next())
	}
	return p.ahead[n-1]
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	tok := p.tok
	if tok.Kind == token.EOF {
		return tok
	}
	p.lastSpan = tok.Span
	p.lastKind = tok.Kind
	if len(p.ahead) > 0 {
		p.tok = p.ahead[0]
		p.ahead = p.ahead[1:]
	} else {
		p.tok = p.lx.Next()
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool { return p.tok.Kind == k }

func (p *Parser) atOr(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// accept consumes the current token if it has kind k.
func (p *Parser) accept(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) atIdent() bool {
	return p.tok.Kind == token.Ident || p.tok.Kind == token.ExtendedIdent
}

// spanFrom covers everything consumed since start.
//
// A node that consumed nothing is empty and sits where the next token
// begins. Every node still open at that point is stretched to reach it, so
// the empty node stays inside its ancestors.
func (p *Parser) spanFrom(start source.Span) source.Span {
	sp := source.Span{File: start.File, Start: start.Start, End: p.lastSpan.End}
	if sp.End <= sp.Start {
		sp.End = sp.Start
		p.reach = max(p.reach, sp.Start)
	}
	if p.reach >= sp.Start && p.reach > sp.End {
		sp.End = p.reach
	}
	return sp
}

// diagSpan is where a complaint about the current token goes. At end of
// input it points just past the last consumed token.
func (p *Parser) diagSpan() source.Span {
	if p.at(token.EOF) && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return p.tok.Span
}

func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF:
		return "end of input"
	case tok.IsIdent():
		return fmt.Sprintf("identifier %q", tok.Text)
	case tok.IsLiteral():
		return fmt.Sprintf("literal %s", tok.Text)
	default:
		return tok.Kind.Quoted()
	}
}

// errorf reports a syntax error unless the error limit is reached.
func (p *Parser) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	p.report(code, sp, fmt.Sprintf(format, args...)).Emit()
}

// report counts a syntax error and returns its builder, or nil once the
// error limit is reached. A second error starting where the previous one
// did is a follow-on of the first and is dropped.
func (p *Parser) report(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	if p.errors > 0 && sp.File == p.errAt.File && sp.Start == p.errAt.Start {
		return nil
	}
	p.errors++
	p.errAt = sp
	if p.opts.Reporter == nil || (p.opts.MaxErrors > 0 && p.errors > p.opts.MaxErrors) {
		return nil
	}
	return diag.ReportError(p.opts.Reporter, code, sp, msg)
}

func (p *Parser) fatalf(code diag.Code, sp source.Span, format string, args ...any) {
	p.fatal = true
	if p.opts.Reporter != nil {
		diag.ReportFatal(p.opts.Reporter, code, sp, fmt.Sprintf(format, args...)).Emit()
	}
}

// unexpected reports the current token as not being what was wanted.
func (p *Parser) unexpected(code diag.Code, want string) {
	p.errorf(code, p.diagSpan(), "expected %s, got %s", want, describe(p.tok))
}

// expect consumes a token of kind k or reports it missing.
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.unexpected(code, k.Quoted())
	return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
}

// expectKw is expect with SynExpectKeyword.
func (p *Parser) expectKw(k token.Kind) bool {
	_, ok := p.expect(k, diag.SynExpectKeyword)
	return ok
}

// ident consumes an identifier and returns its spelling, or reports and returns "".
func (p *Parser) ident() string {
	if p.atIdent() {
		return p.advance().Text
	}
	p.unexpected(diag.SynExpectIdentifier, "identifier")
	return ""
}

// optIdent consumes an identifier if present.
func (p *Parser) optIdent() string {
	if p.atIdent() {
		return p.advance().Text
	}
	return ""
}

// identList parses id {, id}.
func (p *Parser) identList() []string {
	out := []string{p.ident()}
	for p.accept(token.Comma) {
		out = append(out, p.ident())
	}
	return out
}

// semi ends a declaration or statement. A missing ';' in front of a token on
// a new line is reported once and parsing goes on from that token; anything
// else triggers recovery.
func (p *Parser) semi() {
	if p.accept(token.Semicolon) {
		return
	}
	if p.tok.OnNewLine() || p.at(token.EOF) {
		at := p.lastSpan.ZeroideToEnd()
		p.report(diag.SynExpectSemicolon, at, fmt.Sprintf("expected ';' after %s", p.file.Text(p.lastSpan))).
			WithFix("insert ';'", diag.FixEdit{Span: at, NewText: ";"}).
			Emit()
		return
	}
	p.unexpected(diag.SynExpectSemicolon, "';'")
	p.sync()
}

// endLabel checks the optional closing designator against the opening one.
func (p *Parser) endLabel(open string) string {
	var end string
	var sp source.Span
	switch {
	case p.atIdent():
		sp = p.tok.Span
		end = p.advance().Text
	case p.at(token.StringLit):
		sp = p.tok.Span
		end = p.advance().Text
	default:
		return ""
	}
	switch {
	case open == "":
		p.report(diag.SynEndLabelMismatch, sp, fmt.Sprintf("closing label %q given but the construct has no label", end)).
			WithFix("remove the label", diag.FixEdit{Span: sp}).
			Emit()
	case !p.fold.SameIdent(open, end):
		p.report(diag.SynEndLabelMismatch, sp, fmt.Sprintf("closing label %q does not match %q", end, open)).
			WithFix(fmt.Sprintf("rename to %q", open), diag.FixEdit{Span: sp, NewText: open}).
			Emit()
	}
	return end
}

// need2008 reports a construct introduced by VHDL-2008 when parsing for an
// older revision. The construct is still parsed.
func (p *Parser) need2008(sp source.Span, what string) {
	if p.lx.Standard() < token.Std2008 {
		p.errorf(diag.SynNewerStandard, sp, "%s requires VHDL-2008 (parsing as %s)", what, p.lx.Standard())
	}
}

// enter guards recursion. Past MaxDepth it reports a fatal diagnostic and
// unwinds the whole parse.
func (p *Parser) enter() {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		p.fatalf(diag.FatDepthExceeded, p.diagSpan(), "nesting depth exceeds the limit of %d", p.opts.MaxDepth)
		panic(bailout{})
	}
}

func (p *Parser) leave() { p.depth-- }

// sync skips to the next ';' (consumed) or to a token that can start a
// declaration, statement or design unit (not consumed).
func (p *Parser) sync() {
	for !p.at(token.EOF) {
		if p.accept(token.Semicolon) {
			return
		}
		if syncStop[p.tok.Kind] {
			return
		}
		p.advance()
	}
}

var syncStop = func() map[token.Kind]bool {
	m := map[token.Kind]bool{}
	for _, k := range []token.Kind{
		token.KwLibrary, token.KwUse, token.KwContext, token.KwEntity, token.KwArchitecture,
		token.KwPackage, token.KwConfiguration,
		token.KwSignal, token.KwConstant, token.KwVariable, token.KwShared, token.KwFile,
		token.KwType, token.KwSubtype, token.KwAlias, token.KwAttribute, token.KwComponent,
		token.KwFunction, token.KwProcedure, token.KwPure, token.KwImpure,
		token.KwBegin, token.KwEnd, token.KwProcess, token.KwIf, token.KwElsif, token.KwElse,
		token.KwCase, token.KwWhen, token.KwLoop, token.KwWhile, token.KwWait, token.KwReturn,
		token.KwNext, token.KwExit, token.KwNull, token.KwAssert, token.KwReport, token.KwBlock,
		token.KwWith,
	} {
		m[k] = true
	}
	return m
}()

// push appends x unless it is nil, so lists in the tree never hold nil entries.
func push[T comparable](xs []T, x T) []T {
	var zero T
	if x == zero {
		return xs
	}
	return append(xs, x)
}

// progressed forces one token forward when a list item consumed nothing, so
// item loops always terminate.
func (p *Parser) progressed(start uint32, startKind token.Kind) {
	if p.tok.Span.Start == start && p.tok.Kind == startKind && !p.at(token.EOF) {
		p.advance()
	}
}
