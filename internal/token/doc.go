// Package token defines lexical token kinds, VHDL reserved words and trivia.
// Invariants:
//   - Token.Text is the exact source spelling; keyword classification ignores case.
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments never appear in the token stream; they are kept as
//     leading Trivia of the following significant token (EOF included).
//   - The reserved-word set depends on the language Standard in effect.
package token
