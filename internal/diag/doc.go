// Package diag defines the diagnostic model shared by the lexer, the parser
// and the pipeline facade.
//
// A Diagnostic carries a Severity (info, warning, error, fatal), a Code with a
// stable string form (LEX1xxx lexical, SYN2xxx syntax, FAT9xxx fatal), a short
// message, the primary span and optional notes and fixes.
//
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// enforces a limit on non-fatal entries and sorts deterministically. A fatal
// diagnostic is never dropped by the limit: its presence is what turns a parse
// into a failure at the boundary.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt and internal/docjson.
package diag
