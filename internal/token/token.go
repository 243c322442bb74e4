package token

import (
	"vhdlparser/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, character, string or bit-string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is a basic or extended identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == ExtendedIdent }

// IsPunctOrOp reports whether the token is an operator or delimiter.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// OnNewLine reports whether a line break separates the token from the previous one.
func (t Token) OnNewLine() bool { return HasNewline(t.Leading) }

// Category classifies the token into the coarse groups used by token dumps.
func (t Token) Category() string {
	switch {
	case t.Kind == EOF:
		return "end-of-input"
	case t.Kind == Invalid:
		return "invalid"
	case t.IsIdent():
		return "identifier"
	case t.IsKeyword():
		if t.Kind.IsWordOperator() {
			return "operator"
		}
		return "keyword"
	case t.IsLiteral():
		return "literal"
	case t.Kind.IsOperator():
		return "operator"
	default:
		return "delimiter"
	}
}
