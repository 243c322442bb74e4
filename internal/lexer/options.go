package lexer

import (
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// DefaultMaxErrors is the number of lexical errors after which the input is
// treated as irrecoverably corrupt.
const DefaultMaxErrors = 64

// maxTokenLength bounds a single token, string and bit-string literals included.
const maxTokenLength = 64 * 1024

type Options struct {
	Reporter  diag.Reporter // may be nil; scanning continues either way
	Standard  token.Standard
	MaxErrors int
}

func (o Options) withDefaults() Options {
	if o.Standard == 0 {
		o.Standard = token.DefaultStandard
	}
	if o.MaxErrors <= 0 {
		o.MaxErrors = DefaultMaxErrors
	}
	return o
}

// errLex reports a recoverable lexical error and escalates to a fatal
// diagnostic once the error budget is spent.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
	if lx.errors > lx.opts.MaxErrors {
		lx.corrupt(sp, "too many lexical errors; the input does not look like VHDL")
	}
}

// corrupt stops the scan: every later Next returns EOF.
func (lx *Lexer) corrupt(sp source.Span, msg string) {
	if lx.fatal {
		return
	}
	lx.fatal = true
	if lx.opts.Reporter != nil {
		diag.ReportFatal(lx.opts.Reporter, diag.FatLexCorruption, sp, msg).Emit()
	}
}
