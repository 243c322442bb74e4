// Package fuzztests houses Go fuzz harnesses for the parsing pipeline
// (source -> lexer -> parser -> JSON). They guard against panics, hangs and
// broken span invariants on arbitrary input.
//
// Seeds come from testdata/*.vhd at the repository root plus a fixed list
// of small snippets.
package fuzztests
