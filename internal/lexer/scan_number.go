package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"vhdlparser/internal/diag"
	"vhdlparser/internal/token"
)

// scanNumber reads an abstract literal:
//
//	decimal: integer [ . integer ] [ exponent ]
//	based:   integer # based_integer [ . based_integer ] # [ exponent ]
//
// ':' may replace both '#'. An integer directly followed by a base specifier
// and '"' is the size of a bit-string literal (8X"FF").
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	wellFormed := lx.scanDigits(isDec)

	if isLetterByte(lx.cursor.Peek()) && lx.atBitStringBase() {
		return lx.scanBitString(start)
	}

	if b := lx.cursor.Peek(); b == '#' || (b == ':' && lx.looksBasedColon()) {
		return lx.scanBased(start, b, wellFormed)
	}

	kind := token.IntLit
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		kind = token.RealLit
		wellFormed = lx.scanDigits(isDec) && wellFormed
	}

	negExp, expOK := lx.scanExponent()
	tok := lx.emit(kind, start)
	switch {
	case !wellFormed || !expOK:
		lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("malformed numeric literal %s", tok.Text))
	case negExp && kind == token.IntLit:
		lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("integer literal %s must not have a negative exponent", tok.Text))
	}
	return tok
}

// scanDigits consumes digits and underscores; it reports false when an
// underscore is not between two digits.
func (lx *Lexer) scanDigits(isDigit func(byte) bool) bool {
	ok := true
	prevDigit := false
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case isDigit(b):
			prevDigit = true
			seen = true
		case b == '_':
			if !prevDigit {
				ok = false
			}
			prevDigit = false
		default:
			return ok && seen && prevDigit
		}
		lx.cursor.Bump()
	}
}

// scanExponent consumes [eE][+-]digits. A bare 'e' not followed by digits is
// left for the next token.
func (lx *Lexer) scanExponent() (negative, ok bool) {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return false, true
	}
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	if s := lx.cursor.Peek(); s == '+' || s == '-' {
		negative = s == '-'
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.cursor.Reset(m)
		return false, true
	}
	return negative, lx.scanDigits(isDec)
}

func (lx *Lexer) scanBased(start Mark, delim byte, wellFormed bool) token.Token {
	baseText := strings.ReplaceAll(string(lx.file.Content[start:lx.cursor.Off]), "_", "")
	lx.cursor.Bump() // opening delimiter

	isExt := func(b byte) bool { return isHex(b) || isLetterByte(b) }
	wellFormed = lx.scanDigits(isExt) && wellFormed
	kind := token.BasedLit
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		wellFormed = lx.scanDigits(isExt) && wellFormed
	}
	closed := lx.cursor.Eat(delim)
	negExp, expOK := false, true
	if closed {
		negExp, expOK = lx.scanExponent()
	}
	tok := lx.emit(kind, start)

	base, err := strconv.Atoi(baseText)
	switch {
	case !closed:
		lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("based literal %s is missing its closing '%c'", tok.Text, delim))
	case err != nil || base < 2 || base > 16:
		lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("base of %s must be between 2 and 16", tok.Text))
	case !wellFormed || !expOK:
		lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("malformed based literal %s", tok.Text))
	default:
		digits := tok.Text[strings.IndexByte(tok.Text, delim)+1:]
		if i := strings.IndexByte(digits, delim); i >= 0 {
			digits = digits[:i]
		}
		for i := 0; i < len(digits); i++ {
			c := digits[i]
			if c == '_' || c == '.' {
				continue
			}
			if digitValue(c) >= base {
				lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("digit %q is not valid in base %d", c, base))
				return tok
			}
		}
		if negExp && !strings.Contains(digits, ".") {
			lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("integer literal %s must not have a negative exponent", tok.Text))
		}
	}
	return tok
}

// looksBasedColon reports whether the ':' under the cursor opens a based
// literal, i.e. extended digits are followed by another ':'.
func (lx *Lexer) looksBasedColon() bool {
	var i uint32 = 1
	if !isHex(lx.cursor.PeekAt(i)) {
		return false
	}
	for {
		b := lx.cursor.PeekAt(i)
		switch {
		case b == ':':
			return true
		case isHex(b) || b == '_' || b == '.':
			i++
		default:
			return false
		}
	}
}

// atBitStringBase reports whether letters under the cursor form a base
// specifier immediately followed by '"', and consumes them if so.
func (lx *Lexer) atBitStringBase() bool {
	var n uint32
	for isLetterByte(lx.cursor.PeekAt(n)) {
		n++
	}
	if n == 0 || n > 2 || lx.cursor.PeekAt(n) != '"' {
		return false
	}
	if !isBaseSpecifier(string(lx.file.Content[lx.cursor.Off : lx.cursor.Off+n])) {
		return false
	}
	lx.cursor.Off += n
	return true
}
