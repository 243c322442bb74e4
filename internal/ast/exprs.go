package ast

import "vhdlparser/internal/source"

// BinaryExpr: Op is the lower-case operator spelling ("and", "<=", "+", "?=").
type BinaryExpr struct {
	Sp    source.Span
	Op    string
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) Fields() []Field {
	return []Field{
		f("left", one(n.Left)),
		f("operator", n.Op),
		f("right", one(n.Right)),
	}
}

// UnaryExpr covers signs, abs, not, the condition operator ?? and the
// VHDL-2008 unary reduction operators.
type UnaryExpr struct {
	Sp      source.Span
	Op      string
	Operand Expr
}

func (n *UnaryExpr) Fields() []Field {
	return []Field{
		f("operator", n.Op),
		f("operand", one(n.Operand)),
	}
}

type ParenExpr struct {
	Sp source.Span
	X  Expr
}

func (n *ParenExpr) Fields() []Field {
	return []Field{f("expression", one(n.X))}
}

// SimpleName is an identifier, extended identifier, character literal or
// operator symbol used as a name.
type SimpleName struct {
	Sp   source.Span
	Name string
}

func (n *SimpleName) Fields() []Field {
	return []Field{f("name", n.Name)}
}

// SelectedName: prefix.suffix, where suffix may be "all".
type SelectedName struct {
	Sp     source.Span
	Prefix Expr
	Suffix string
}

func (n *SelectedName) Fields() []Field {
	return []Field{
		f("prefix", one(n.Prefix)),
		f("suffix", n.Suffix),
	}
}

// AttributeName: prefix[signature]'attribute[(argument)]
type AttributeName struct {
	Sp        source.Span
	Prefix    Expr
	Signature *Signature
	Attribute string
	Arg       Expr
}

func (n *AttributeName) Fields() []Field {
	return []Field{
		f("prefix", one(n.Prefix)),
		f("signature", one(n.Signature)),
		f("attribute", n.Attribute),
		f("argument", one(n.Arg)),
	}
}

// CallOrIndex: prefix(a, b => c). Function calls, indexed names and type
// conversions share this syntax and are not told apart without semantic analysis.
type CallOrIndex struct {
	Sp     source.Span
	Prefix Expr
	Args   []*Association
}

func (n *CallOrIndex) Fields() []Field {
	return []Field{
		f("prefix", one(n.Prefix)),
		f("arguments", many(n.Args)),
	}
}

// SliceName: prefix(7 downto 0)
type SliceName struct {
	Sp     source.Span
	Prefix Expr
	Range  Node
}

func (n *SliceName) Fields() []Field {
	return []Field{
		f("prefix", one(n.Prefix)),
		f("range", one(n.Range)),
	}
}

// ExternalName: << signal .tb.dut.count : natural >>
type ExternalName struct {
	Sp      source.Span
	Class   string
	Path    string
	Subtype *SubtypeIndication
}

func (n *ExternalName) Fields() []Field {
	return []Field{
		f("class", n.Class),
		f("path", n.Path),
		f("subtype", one(n.Subtype)),
	}
}

// Association: [formal =>] actual, used by argument lists and port/generic maps.
type Association struct {
	Sp     source.Span
	Formal Expr
	Actual Expr
}

func (n *Association) Fields() []Field {
	return []Field{
		f("formal", one(n.Formal)),
		f("actual", one(n.Actual)),
	}
}

// Literal kinds.
const (
	LitInteger   = "integer"
	LitReal      = "real"
	LitBased     = "based"
	LitCharacter = "character"
	LitString    = "string"
	LitBitString = "bit-string"
	LitNull      = "null"
)

// Literal keeps the source spelling; no value conversion is done.
type Literal struct {
	Sp      source.Span
	LitKind string
	Text    string
}

func (n *Literal) Fields() []Field {
	return []Field{
		f("literal_kind", n.LitKind),
		f("text", n.Text),
	}
}

// PhysicalLiteral: [abstract literal] unit, e.g. 10 ns.
type PhysicalLiteral struct {
	Sp    source.Span
	Value *Literal
	Unit  string
}

func (n *PhysicalLiteral) Fields() []Field {
	return []Field{
		f("value", one(n.Value)),
		f("unit", n.Unit),
	}
}

type Aggregate struct {
	Sp       source.Span
	Elements []*ElementAssociation
}

func (n *Aggregate) Fields() []Field {
	return []Field{f("elements", many(n.Elements))}
}

// ElementAssociation: [choices =>] value. Choices is empty for positional elements.
type ElementAssociation struct {
	Sp      source.Span
	Choices []Node
	Value   Expr
}

func (n *ElementAssociation) Fields() []Field {
	return []Field{
		f("choices", many(n.Choices)),
		f("value", one(n.Value)),
	}
}

// OthersChoice is the choice "others".
type OthersChoice struct {
	Sp source.Span
}

func (n *OthersChoice) Fields() []Field { return nil }

// QualifiedExpr: type_mark'(expression) or type_mark'aggregate
type QualifiedExpr struct {
	Sp       source.Span
	TypeMark Expr
	Operand  Expr
}

func (n *QualifiedExpr) Fields() []Field {
	return []Field{
		f("type_mark", one(n.TypeMark)),
		f("operand", one(n.Operand)),
	}
}

// Allocator: new subtype_indication | new qualified_expression
type Allocator struct {
	Sp      source.Span
	Operand Node
}

func (n *Allocator) Fields() []Field {
	return []Field{f("operand", one(n.Operand))}
}

// Open is the actual "open" in an association.
type Open struct {
	Sp source.Span
}

func (n *Open) Fields() []Field { return nil }

// Unaffected is the waveform "unaffected".
type Unaffected struct {
	Sp source.Span
}

func (n *Unaffected) Fields() []Field { return nil }

// Box is "<>" used as a generic map actual or an interface subprogram default.
type Box struct {
	Sp source.Span
}

func (n *Box) Fields() []Field { return nil }
