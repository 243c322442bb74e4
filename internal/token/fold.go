package token

import (
	"strings"

	"golang.org/x/text/cases"
)

// Folder case-folds identifier spellings. A Folder is not safe for concurrent
// use; each lexer and parser owns one.
type Folder struct {
	caser cases.Caser
}

func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

// Fold returns the case-folded form of s.
func (f *Folder) Fold(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return strings.ToLower(s)
	}
	return f.caser.String(s)
}

// SameIdent compares two identifier spellings the way VHDL does: basic
// identifiers ignore case, extended identifiers (\...\) are exact.
func (f *Folder) SameIdent(a, b string) bool {
	if strings.HasPrefix(a, `\`) || strings.HasPrefix(b, `\`) {
		return a == b
	}
	return f.Fold(a) == f.Fold(b)
}
