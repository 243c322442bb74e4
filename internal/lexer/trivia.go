package lexer

import (
	"vhdlparser/internal/diag"
	"vhdlparser/internal/token"
)

// collectLeadingTrivia gathers the trivia in front of the next significant token.
//   - runs of blanks (space, tab, form feed, vertical tab, lone CR, NBSP) become one TriviaSpace
//   - runs of '\n' become one TriviaNewline
//   - "--" to end of line is a TriviaLineComment
//   - "/* ... */" is a TriviaBlockComment (VHDL-2008 and later, not nested)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()

		if lx.eatBlanks() {
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if lx.cursor.Peek() == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if lx.try2('-', '-') {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start)
			continue
		}

		if lx.opts.Standard >= token.Std2008 && lx.try2('/', '*') {
			closed := false
			for !lx.cursor.EOF() {
				if lx.try2('*', '/') {
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			if !closed {
				lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
			}
			lx.pushTrivia(token.TriviaBlockComment, start)
			continue
		}

		break
	}
}

func (lx *Lexer) eatBlanks() bool {
	ate := false
	for {
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\f' || b == '\v' || b == '\r':
			lx.cursor.Bump()
		case b == 0xC2 && lx.cursor.PeekAt(1) == 0xA0: // U+00A0 no-break space
			lx.cursor.Bump()
			lx.cursor.Bump()
		default:
			return ate
		}
		ate = true
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}
