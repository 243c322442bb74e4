package lexer

import (
	"fmt"
	"strings"

	"vhdlparser/internal/diag"
	"vhdlparser/internal/token"
)

// scanString reads a string literal delimited by '"' (or its replacement '%').
// A doubled delimiter inside the literal stands for one delimiter character.
// A literal left open is closed at the end of the line.
func (lx *Lexer) scanString(delim byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening delimiter
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == delim {
			lx.cursor.Bump()
			if lx.cursor.Peek() == delim {
				lx.cursor.Bump()
				continue
			}
			return lx.emit(token.StringLit, start)
		}
		if b == '\n' {
			break
		}
		lx.bumpRune()
	}
	tok := lx.emit(token.StringLit, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanBitString continues a literal whose [size] base_specifier prefix starts
// at start; the cursor is on the opening quote.
func (lx *Lexer) scanBitString(start Mark) token.Token {
	prefix := lowerASCII(string(lx.file.Content[start:lx.cursor.Off]))
	bodyStart := lx.cursor.Off + 1
	lx.cursor.Bump() // '"'

	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			closed = true
			break
		}
		if b == '\n' {
			break
		}
		lx.bumpRune()
	}
	body := string(lx.file.Content[bodyStart:lx.cursor.Off])
	if closed {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.BitStringLit, start)
	if !closed {
		lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated bit string literal")
		return tok
	}

	i := 0
	for i < len(prefix) && (isDec(prefix[i]) || prefix[i] == '_') {
		i++
	}
	sized, base := i > 0, prefix[i:]
	if (sized || len(base) == 2 || base == "d") && lx.opts.Standard < token.Std2008 {
		lx.errLex(diag.LexBadBitString, tok.Span, fmt.Sprintf("bit string literal %s requires VHDL-2008", tok.Text))
		return tok
	}
	if msg := checkBitStringBody(base, body, lx.opts.Standard); msg != "" {
		lx.errLex(diag.LexBadBitString, tok.Span, msg)
	}
	return tok
}

func checkBitStringBody(base, body string, std token.Standard) string {
	radix := 16
	switch base[len(base)-1] {
	case 'b':
		radix = 2
	case 'o':
		radix = 8
	case 'd':
		radix = 10
	}
	if strings.HasPrefix(body, "_") || strings.HasSuffix(body, "_") || strings.Contains(body, "__") {
		return "underscores in a bit string literal must separate digits"
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '_' {
			continue
		}
		v := digitValue(c)
		switch {
		case isDec(c) && v >= radix:
			return fmt.Sprintf("digit %q is not valid in base %d", c, radix)
		case radix == 10 && !isDec(c):
			return fmt.Sprintf("decimal bit string literal contains %q", c)
		case !isDec(c) && v < radix:
			// hex letter within radix
		case std < token.Std2008:
			return fmt.Sprintf("character %q is not valid in base %d", c, radix)
		}
	}
	return ""
}

// scanTickOrChar decides between the attribute/qualification tick and a
// character literal from the previous significant token.
func (lx *Lexer) scanTickOrChar() token.Token {
	start := lx.cursor.Mark()
	switch lx.prev {
	case token.Ident, token.ExtendedIdent, token.RParen, token.RBracket, token.KwAll:
		lx.cursor.Bump()
		return lx.emit(token.Tick, start)
	}

	lx.cursor.Bump() // opening tick
	r, sz := lx.peekRune()
	if sz > 0 && r != '\n' && r >= ' ' && lx.cursor.PeekAt(uint32(sz)) == '\'' { // #nosec G115 -- rune size <= 4
		lx.bumpRune()
		lx.cursor.Bump()
		return lx.emit(token.CharLit, start)
	}
	return lx.emit(token.Tick, start)
}
