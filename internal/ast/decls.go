package ast

import "vhdlparser/internal/source"

// InterfaceRole tells which list an interface object declaration belongs to.
type InterfaceRole uint8

const (
	RoleGeneric InterfaceRole = iota
	RolePort
	RoleParameter
)

// InterfaceDecl is an interface object declaration:
// [class] a, b : [mode] subtype [bus] [:= default]
type InterfaceDecl struct {
	Sp      source.Span
	Role    InterfaceRole
	Class   string // "signal", "constant", "variable", "file" or ""
	Names   []string
	Mode    string // "in", "out", "inout", "buffer", "linkage" or ""
	Subtype *SubtypeIndication
	Bus     bool
	Default Expr
}

func (n *InterfaceDecl) Fields() []Field {
	return []Field{
		f("class", optName(n.Class)),
		f("names", names(n.Names)),
		f("mode", optName(n.Mode)),
		f("subtype", one(n.Subtype)),
		f("bus", n.Bus),
		f("default", one(n.Default)),
	}
}

// InterfaceTypeDecl: generic (type T);
type InterfaceTypeDecl struct {
	Sp   source.Span
	Name string
}

func (n *InterfaceTypeDecl) Fields() []Field {
	return []Field{f("name", n.Name)}
}

// InterfaceSubprogramDecl: generic (function f (x : T) return T is <>);
type InterfaceSubprogramDecl struct {
	Sp      source.Span
	Spec    *SubprogramSpec
	Default Expr // *Box, a name, or nil
}

func (n *InterfaceSubprogramDecl) Fields() []Field {
	return []Field{
		f("spec", one(n.Spec)),
		f("default", one(n.Default)),
	}
}

// InterfacePackageDecl: generic (package p is new work.q generic map (<>));
type InterfacePackageDecl struct {
	Sp         source.Span
	Name       string
	Package    Expr
	GenericMap []*Association
}

func (n *InterfacePackageDecl) Fields() []Field {
	return []Field{
		f("name", n.Name),
		f("package", one(n.Package)),
		f("generic_map", many(n.GenericMap)),
	}
}

// SubtypeIndication: [resolution] type_mark [constraint]
type SubtypeIndication struct {
	Sp         source.Span
	Resolution Expr
	TypeMark   Expr
	Constraint Node // *RangeConstraint, *IndexConstraint or nil
}

func (n *SubtypeIndication) Fields() []Field {
	return []Field{
		f("resolution", one(n.Resolution)),
		f("type_mark", one(n.TypeMark)),
		f("constraint", one(n.Constraint)),
	}
}

// RangeConstraint: range 0 to 7
type RangeConstraint struct {
	Sp    source.Span
	Range Node
}

func (n *RangeConstraint) Fields() []Field {
	return []Field{f("range", one(n.Range))}
}

// IndexConstraint: (7 downto 0) with an optional element constraint (0 to 3)(7 downto 0).
type IndexConstraint struct {
	Sp      source.Span
	Ranges  []Node
	Element *IndexConstraint
}

func (n *IndexConstraint) Fields() []Field {
	return []Field{
		f("ranges", many(n.Ranges)),
		f("element", one(n.Element)),
	}
}

// Range: left to|downto right
type Range struct {
	Sp        source.Span
	Left      Expr
	Direction string
	Right     Expr
}

func (n *Range) Fields() []Field {
	return []Field{
		f("left", one(n.Left)),
		f("direction", n.Direction),
		f("right", one(n.Right)),
	}
}

type SignalDecl struct {
	Sp         source.Span
	Names      []string
	Subtype    *SubtypeIndication
	SignalKind string // "register", "bus" or ""
	Default    Expr
}

func (n *SignalDecl) Fields() []Field {
	return []Field{
		f("names", names(n.Names)),
		f("subtype", one(n.Subtype)),
		f("signal_kind", optName(n.SignalKind)),
		f("default", one(n.Default)),
	}
}

type ConstantDecl struct {
	Sp      source.Span
	Names   []string
	Subtype *SubtypeIndication
	Default Expr
}

func (n *ConstantDecl) Fields() []Field {
	return []Field{
		f("names", names(n.Names)),
		f("subtype", one(n.Subtype)),
		f("default", one(n.Default)),
	}
}

type VariableDecl struct {
	Sp      source.Span
	Shared  bool
	Names   []string
	Subtype *SubtypeIndication
	Default Expr
}

func (n *VariableDecl) Fields() []Field {
	return []Field{
		f("shared", n.Shared),
		f("names", names(n.Names)),
		f("subtype", one(n.Subtype)),
		f("default", one(n.Default)),
	}
}

// FileDecl: file f : text open read_mode is "in.txt";
type FileDecl struct {
	Sp          source.Span
	Names       []string
	Subtype     *SubtypeIndication
	OpenKind    Expr
	LogicalName Expr
}

func (n *FileDecl) Fields() []Field {
	return []Field{
		f("names", names(n.Names)),
		f("subtype", one(n.Subtype)),
		f("open_kind", one(n.OpenKind)),
		f("logical_name", one(n.LogicalName)),
	}
}

// TypeDecl with a nil Def is an incomplete type declaration.
type TypeDecl struct {
	Sp   source.Span
	Name string
	Def  TypeDef
}

func (n *TypeDecl) Fields() []Field {
	return []Field{
		f("name", n.Name),
		f("definition", one(n.Def)),
	}
}

type SubtypeDecl struct {
	Sp      source.Span
	Name    string
	Subtype *SubtypeIndication
}

func (n *SubtypeDecl) Fields() []Field {
	return []Field{
		f("name", n.Name),
		f("subtype", one(n.Subtype)),
	}
}

// AliasDecl: alias byte0 : std_logic_vector(7 downto 0) is word(7 downto 0);
type AliasDecl struct {
	Sp        source.Span
	Name      string
	Subtype   *SubtypeIndication
	Target    Expr
	Signature *Signature
}

func (n *AliasDecl) Fields() []Field {
	return []Field{
		f("name", n.Name),
		f("subtype", one(n.Subtype)),
		f("target", one(n.Target)),
		f("signature", one(n.Signature)),
	}
}

// Signature: [integer, integer return boolean]
type Signature struct {
	Sp     source.Span
	Params []Expr
	Return Expr
}

func (n *Signature) Fields() []Field {
	return []Field{
		f("parameters", many(n.Params)),
		f("return", one(n.Return)),
	}
}

type AttributeDecl struct {
	Sp       source.Span
	Name     string
	TypeMark Expr
}

func (n *AttributeDecl) Fields() []Field {
	return []Field{
		f("name", n.Name),
		f("type_mark", one(n.TypeMark)),
	}
}

// AttributeSpec: attribute keep of s1, s2 : signal is true;
type AttributeSpec struct {
	Sp          source.Span
	Designator  string
	Entities    []string // names, or the single word "all" / "others"
	EntityClass string
	Value       Expr
}

func (n *AttributeSpec) Fields() []Field {
	return []Field{
		f("designator", n.Designator),
		f("entities", names(n.Entities)),
		f("entity_class", n.EntityClass),
		f("value", one(n.Value)),
	}
}

type ComponentDecl struct {
	Sp       source.Span
	Name     string
	Generics []InterfaceItem
	Ports    []InterfaceItem
	EndName  string
}

func (n *ComponentDecl) Fields() []Field {
	return []Field{
		f("name", n.Name),
		f("generics", many(n.Generics)),
		f("ports", many(n.Ports)),
		f("end_name", optName(n.EndName)),
	}
}

// SubprogramSpec is a function or procedure specification.
type SubprogramSpec struct {
	Sp       source.Span
	Function bool
	Purity   string // "pure", "impure" or ""
	Name     string // identifier or operator symbol including quotes
	Params   []InterfaceItem
	Return   Expr
}

func (n *SubprogramSpec) Fields() []Field {
	return []Field{
		f("purity", optName(n.Purity)),
		f("name", n.Name),
		f("parameters", many(n.Params)),
		f("return", one(n.Return)),
	}
}

type SubprogramDecl struct {
	Sp   source.Span
	Spec *SubprogramSpec
}

func (n *SubprogramDecl) Fields() []Field {
	return []Field{f("spec", one(n.Spec))}
}

type SubprogramBody struct {
	Sp      source.Span
	Spec    *SubprogramSpec
	Decls   []Decl
	Stmts   []Stmt
	EndName string
}

func (n *SubprogramBody) Fields() []Field {
	return []Field{
		f("spec", one(n.Spec)),
		f("declarations", many(n.Decls)),
		f("statements", many(n.Stmts)),
		f("end_name", optName(n.EndName)),
	}
}

// ConfigurationSpec: for all : comp use entity work.e;
type ConfigurationSpec struct {
	Sp      source.Span
	Spec    *ComponentSpec
	Binding *BindingIndication
}

func (n *ConfigurationSpec) Fields() []Field {
	return []Field{
		f("spec", one(n.Spec)),
		f("binding", one(n.Binding)),
	}
}
