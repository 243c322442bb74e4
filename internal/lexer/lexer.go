package lexer

import (
	"fmt"

	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	fold   *token.Folder
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // pending leading trivia
	prev   token.Kind     // last significant kind, decides tick vs character literal
	errors int
	fatal  bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts.withDefaults(),
		fold:   token.NewFolder(),
		prev:   token.Invalid,
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File { return lx.file }

// Standard returns the language revision the lexer classifies keywords for.
func (lx *Lexer) Standard() token.Standard { return lx.opts.Standard }

// Fatal reports whether the scan was abandoned as corrupt.
func (lx *Lexer) Fatal() bool { return lx.fatal }

// Errors returns the number of lexical errors reported so far.
func (lx *Lexer) Errors() int { return lx.errors }

// Reset restarts the scan from the beginning of the file. Diagnostics are
// reported again on the second pass.
func (lx *Lexer) Reset() {
	lx.cursor = NewCursor(lx.file)
	lx.look = nil
	lx.hold = nil
	lx.prev = token.Invalid
	lx.errors = 0
	lx.fatal = false
}

// Next returns the next significant token with its Leading trivia.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.fatal {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	lx.collectLeadingTrivia()
	leading := lx.hold
	lx.hold = nil

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: leading}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == 0:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.corrupt(sp, "NUL byte in source text")
		tok = token.Token{Kind: token.Invalid, Span: sp, Text: "\x00"}

	case isLetterByte(ch) || ch == '_':
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf && lx.atLetterRune():
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"' || ch == '%':
		tok = lx.scanString(ch)

	case ch == '\\':
		tok = lx.scanExtendedIdent()

	case ch == '\'':
		tok = lx.scanTickOrChar()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	if tok.Span.Len() > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span, fmt.Sprintf("token exceeds %d bytes", maxTokenLength))
		tok.Kind = token.Invalid
	}

	tok.Leading = leading
	lx.prev = tok.Kind
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer and returns every token up to and including EOF.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}
