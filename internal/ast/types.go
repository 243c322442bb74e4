package ast

import "vhdlparser/internal/source"

// EnumerationType: (idle, run, '0', '1')
type EnumerationType struct {
	Sp       source.Span
	Literals []string
}

func (n *EnumerationType) Fields() []Field {
	return []Field{f("literals", names(n.Literals))}
}

// RangeType: range 0 to 255 (integer and floating types)
type RangeType struct {
	Sp    source.Span
	Range Node
}

func (n *RangeType) Fields() []Field {
	return []Field{f("range", one(n.Range))}
}

type PhysicalType struct {
	Sp      source.Span
	Range   Node
	Primary string
	Units   []*UnitDecl
	EndName string
}

func (n *PhysicalType) Fields() []Field {
	return []Field{
		f("range", one(n.Range)),
		f("primary_unit", n.Primary),
		f("units", many(n.Units)),
		f("end_name", optName(n.EndName)),
	}
}

// UnitDecl: ns = 1000 ps;
type UnitDecl struct {
	Sp    source.Span
	Name  string
	Value *PhysicalLiteral
}

func (n *UnitDecl) Fields() []Field {
	return []Field{
		f("name", n.Name),
		f("value", one(n.Value)),
	}
}

// ArrayType is constrained (array (0 to 7) of bit) or unbounded
// (array (natural range <>) of bit).
type ArrayType struct {
	Sp        source.Span
	Unbounded bool
	Indexes   []Node // *IndexSubtype when unbounded, discrete ranges otherwise
	Element   *SubtypeIndication
}

func (n *ArrayType) Fields() []Field {
	return []Field{
		f("indexes", many(n.Indexes)),
		f("element", one(n.Element)),
	}
}

// IndexSubtype: natural range <>
type IndexSubtype struct {
	Sp       source.Span
	TypeMark Expr
}

func (n *IndexSubtype) Fields() []Field {
	return []Field{f("type_mark", one(n.TypeMark))}
}

type RecordType struct {
	Sp       source.Span
	Elements []*ElementDecl
	EndName  string
}

func (n *RecordType) Fields() []Field {
	return []Field{
		f("elements", many(n.Elements)),
		f("end_name", optName(n.EndName)),
	}
}

type ElementDecl struct {
	Sp      source.Span
	Names   []string
	Subtype *SubtypeIndication
}

func (n *ElementDecl) Fields() []Field {
	return []Field{
		f("names", names(n.Names)),
		f("subtype", one(n.Subtype)),
	}
}

type AccessType struct {
	Sp      source.Span
	Subtype *SubtypeIndication
}

func (n *AccessType) Fields() []Field {
	return []Field{f("subtype", one(n.Subtype))}
}

type FileType struct {
	Sp       source.Span
	TypeMark Expr
}

func (n *FileType) Fields() []Field {
	return []Field{f("type_mark", one(n.TypeMark))}
}

type ProtectedType struct {
	Sp      source.Span
	Decls   []Decl
	EndName string
}

func (n *ProtectedType) Fields() []Field {
	return []Field{
		f("declarations", many(n.Decls)),
		f("end_name", optName(n.EndName)),
	}
}

type ProtectedBody struct {
	Sp      source.Span
	Decls   []Decl
	EndName string
}

func (n *ProtectedBody) Fields() []Field {
	return []Field{
		f("declarations", many(n.Decls)),
		f("end_name", optName(n.EndName)),
	}
}
