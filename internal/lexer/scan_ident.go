package lexer

import (
	"vhdlparser/internal/diag"
	"vhdlparser/internal/token"
)

// scanIdentOrKeyword reads letter { [_] letter_or_digit } and classifies it.
// A base specifier directly followed by '"' starts a bit-string literal instead.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	first := true
	lastUnderscore := false
	malformed := false

	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if r == '_' {
			if first || lastUnderscore {
				malformed = true
			}
			lastUnderscore = true
			first = false
			lx.cursor.Bump()
			continue
		}
		if !isLetterOrDigitRune(r) {
			break
		}
		lastUnderscore = false
		first = false
		lx.bumpRune()
	}
	if lastUnderscore {
		malformed = true
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if lx.cursor.Peek() == '"' && isBaseSpecifier(text) {
		return lx.scanBitString(start)
	}

	if malformed {
		lx.errLex(diag.LexBadIdentifier, sp, "identifier must start with a letter and use single underscores between letters or digits")
	}

	if k, ok := token.LookupKeyword(lx.fold.Fold(text), lx.opts.Standard); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanExtendedIdent reads \...\ where a doubled backslash stands for itself.
func (lx *Lexer) scanExtendedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() != '\\' {
				tok := lx.emit(token.ExtendedIdent, start)
				if tok.Span.Len() == 2 {
					lx.errLex(diag.LexBadIdentifier, tok.Span, "extended identifier must not be empty")
				}
				return tok
			}
			lx.cursor.Bump()
		case '\n':
			return lx.unterminatedExtIdent(start)
		default:
			lx.bumpRune()
		}
	}
	return lx.unterminatedExtIdent(start)
}

func (lx *Lexer) unterminatedExtIdent(start Mark) token.Token {
	tok := lx.emit(token.ExtendedIdent, start)
	lx.errLex(diag.LexUnterminatedExtIdent, tok.Span, "unterminated extended identifier")
	return tok
}
