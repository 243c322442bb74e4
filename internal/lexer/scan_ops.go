package lexer

import (
	"fmt"
	"unicode/utf8"

	"vhdlparser/internal/diag"
	"vhdlparser/internal/token"
)

// scanOperatorOrPunct matches greedily: three-byte operators, then two, then one.
// The VHDL-2008 matching, condition and external-name delimiters are only
// recognised from 2008 on.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	vhdl08 := lx.opts.Standard >= token.Std2008

	if vhdl08 {
		switch {
		case lx.try3('?', '/', '='):
			return lx.emit(token.MatchNotEq, start)
		case lx.try3('?', '<', '='):
			return lx.emit(token.MatchLtEq, start)
		case lx.try3('?', '>', '='):
			return lx.emit(token.MatchGtEq, start)
		case lx.try2('?', '?'):
			return lx.emit(token.Condition, start)
		case lx.try2('?', '='):
			return lx.emit(token.MatchEq, start)
		case lx.try2('?', '<'):
			return lx.emit(token.MatchLt, start)
		case lx.try2('?', '>'):
			return lx.emit(token.MatchGt, start)
		case lx.try2('<', '<'):
			return lx.emit(token.DoubleLt, start)
		case lx.try2('>', '>'):
			return lx.emit(token.DoubleGt, start)
		}
	}

	switch {
	case lx.try2('=', '>'):
		return lx.emit(token.Arrow, start)
	case lx.try2('*', '*'):
		return lx.emit(token.StarStar, start)
	case lx.try2(':', '='):
		return lx.emit(token.VarAssign, start)
	case lx.try2('/', '='):
		return lx.emit(token.NotEq, start)
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start)
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start)
	case lx.try2('<', '>'):
		return lx.emit(token.Box, start)
	}

	ch := lx.cursor.Peek()
	kind, ok := singleByteKinds[ch]
	if ok {
		lx.cursor.Bump()
		return lx.emit(kind, start)
	}

	r, sz := lx.peekRune()
	lx.bumpRune()
	if sz == 0 {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	if r == utf8.RuneError && sz <= 1 {
		lx.errLex(diag.LexInvalidUTF8, tok.Span, fmt.Sprintf("invalid UTF-8 byte 0x%02X", lx.file.Content[tok.Span.Start]))
	} else {
		lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unexpected character %q", r))
	}
	return tok
}

var singleByteKinds = map[byte]token.Kind{
	'&': token.Amp,
	'(': token.LParen,
	')': token.RParen,
	'*': token.Star,
	'+': token.Plus,
	',': token.Comma,
	'-': token.Minus,
	'.': token.Dot,
	'/': token.Slash,
	':': token.Colon,
	';': token.Semicolon,
	'<': token.Lt,
	'=': token.Eq,
	'>': token.Gt,
	'|': token.Bar,
	'!': token.Bar, // replacement character for '|'
	'[': token.LBracket,
	']': token.RBracket,
	'?': token.Question,
	'@': token.At,
	'^': token.Caret,
}
