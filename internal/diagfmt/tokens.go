package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

type PositionOutput struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Start   PositionOutput `json:"start"`
	End     PositionOutput `json:"end"`
	Leading []string       `json:"leading,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	out := make([]string, len(tok.Leading))
	for i, tv := range tok.Leading {
		out[i] = tv.Kind.String()
	}
	return out
}

// FormatTokensPretty prints one token per line with its position and the
// kinds of its leading trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, f *source.File) error {
	for i, tok := range tokens {
		startPos, endPos := f.Position(tok.Span.Start), f.Position(tok.Span.End)

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if leading := leadingKinds(tok); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON prints the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, f *source.File) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		startPos, endPos := f.Position(tok.Span.Start), f.Position(tok.Span.End)
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Start:   PositionOutput{Line: startPos.Line, Col: startPos.Col},
			End:     PositionOutput{Line: endPos.Line, Col: endPos.Col},
			Leading: leadingKinds(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
