package parser_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/lexer"
	"vhdlparser/internal/parser"
	"vhdlparser/internal/source"
	"vhdlparser/internal/testkit"
	"vhdlparser/internal/token"
)

type parsed struct {
	res  parser.Result
	bag  *diag.Bag
	file *source.File
}

func parseWith(t *testing.T, src string, std token.Standard, opts parser.Options) parsed {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte(src))
	bag := diag.NewBag(0)
	opts.Reporter = diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: opts.Reporter, Standard: std})
	res := parser.ParseFile(context.Background(), lx, opts)
	if res.Root == nil {
		t.Fatalf("nil root")
	}
	if err := testkit.CheckSpans(res.Root, fs.Get(id)); err != nil {
		t.Fatalf("span invariants: %v", err)
	}
	return parsed{res: res, bag: bag, file: fs.Get(id)}
}

func parseSrc(t *testing.T, src string) parsed {
	t.Helper()
	return parseWith(t, src, token.DefaultStandard, parser.Options{})
}

// parseClean parses src and fails on any diagnostic.
func parseClean(t *testing.T, src string) *ast.DesignFile {
	t.Helper()
	p := parseSrc(t, src)
	if p.bag.Len() != 0 || p.res.Fatal {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.bag))
	}
	return p.res.Root
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func codes(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Code.ID())
	}
	return out
}

// countKinds tallies node kinds in the tree.
func countKinds(n ast.Node) map[string]int {
	out := map[string]int{}
	ast.Inspect(n, func(n ast.Node) bool {
		out[n.Kind()]++
		return true
	})
	return out
}

// render prints expressions as s-expressions for shape assertions.
func render(n ast.Node) string {
	switch v := n.(type) {
	case nil:
		return "<nil>"
	case *ast.BinaryExpr:
		return "(" + v.Op + " " + render(v.Left) + " " + render(v.Right) + ")"
	case *ast.UnaryExpr:
		return "(" + v.Op + " " + render(v.Operand) + ")"
	case *ast.ParenExpr:
		return render(v.X)
	case *ast.SimpleName:
		return v.Name
	case *ast.Literal:
		return v.Text
	case *ast.PhysicalLiteral:
		if v.Value == nil {
			return v.Unit
		}
		return v.Value.Text + " " + v.Unit
	case *ast.SelectedName:
		return render(v.Prefix) + "." + v.Suffix
	case *ast.CallOrIndex:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = render(a)
		}
		return render(v.Prefix) + "(" + strings.Join(args, ", ") + ")"
	case *ast.Association:
		if v.Formal != nil {
			return render(v.Formal) + "=>" + render(v.Actual)
		}
		return render(v.Actual)
	case *ast.SliceName:
		return render(v.Prefix) + "(" + render(v.Range) + ")"
	case *ast.Range:
		return render(v.Left) + " " + v.Direction + " " + render(v.Right)
	case *ast.AttributeName:
		s := render(v.Prefix) + "'" + v.Attribute
		if v.Arg != nil {
			s += "(" + render(v.Arg) + ")"
		}
		return s
	case *ast.QualifiedExpr:
		return render(v.TypeMark) + "'(" + render(v.Operand) + ")"
	case *ast.Aggregate:
		elems := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = render(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case *ast.ElementAssociation:
		if len(v.Choices) == 0 {
			return render(v.Value)
		}
		choices := make([]string, len(v.Choices))
		for i, c := range v.Choices {
			choices[i] = render(c)
		}
		return strings.Join(choices, "|") + "=>" + render(v.Value)
	case *ast.OthersChoice:
		return "others"
	case *ast.Open:
		return "open"
	case *ast.ExternalName:
		return "<<" + v.Class + " " + v.Path + ">>"
	default:
		return n.Kind()
	}
}
