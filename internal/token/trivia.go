package token

import "vhdlparser/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line-comment"
	case TriviaBlockComment:
		return "block-comment"
	default:
		return "unknown"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// HasNewline reports whether any trivia in ts ends a line.
func HasNewline(ts []Trivia) bool {
	for _, tv := range ts {
		if tv.Kind == TriviaNewline || tv.Kind == TriviaLineComment {
			return true
		}
	}
	return false
}
