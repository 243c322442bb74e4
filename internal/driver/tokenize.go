package driver

import (
	"vhdlparser/internal/diag"
	"vhdlparser/internal/lexer"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

type TokenizeResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Tokens      []token.Token
	Diagnostics []diag.Diagnostic
	Fatal       bool
}

// Tokenize loads path and scans it to EOF.
func Tokenize(path string, std token.Standard, enc source.Encoding, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path, enc)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Standard: std,
	})
	tokens := lx.All()
	bag.Sort()

	return &TokenizeResult{
		FileSet:     fs,
		File:        file,
		Tokens:      tokens,
		Diagnostics: bag.Items(),
		Fatal:       lx.Fatal(),
	}, nil
}
