// Package schema holds the CUE definition of the JSON document and checks
// documents against it.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed document.cue
var documentCUE []byte

// Source returns the CUE text of the schema.
func Source() string { return string(documentCUE) }

// Validator checks documents against #Document. A Validator is not safe
// for concurrent use; create one per goroutine.
type Validator struct {
	ctx *cue.Context
	def cue.Value
}

func New() (*Validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(documentCUE, cue.Filename("document.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))
	if def.Err() != nil {
		return nil, fmt.Errorf("looking up #Document definition: %w", def.Err())
	}
	return &Validator{ctx: ctx, def: def}, nil
}

// ValidateJSON checks one encoded document.
func (v *Validator) ValidateJSON(data []byte) error {
	value := v.ctx.CompileBytes(data, cue.Filename("document.json"))
	if value.Err() != nil {
		return fmt.Errorf("compiling JSON as CUE: %w", value.Err())
	}
	unified := v.def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Problems: problems(err), err: err}
	}
	return nil
}

// ValidationError lists every schema violation of a document.
type ValidationError struct {
	Problems []string
	err      error
}

func (e *ValidationError) Error() string {
	return "schema validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return e.err }

func problems(err error) []string {
	var out []string
	for _, e := range errors.Errors(err) {
		out = append(out, e.Error())
	}
	if len(out) == 0 {
		out = append(out, err.Error())
	}
	return out
}
