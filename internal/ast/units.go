package ast

import "vhdlparser/internal/source"

// DesignFile is the root: the design units of one source text in order.
type DesignFile struct {
	Sp    source.Span
	Units []DesignUnit
}

func (n *DesignFile) Fields() []Field {
	return []Field{f("units", many(n.Units))}
}

// LibraryClause: library ieee, work;
type LibraryClause struct {
	Sp    source.Span
	Names []string
}

func (n *LibraryClause) Fields() []Field {
	return []Field{f("names", names(n.Names))}
}

// UseClause: use ieee.std_logic_1164.all;
type UseClause struct {
	Sp    source.Span
	Names []Expr
}

func (n *UseClause) Fields() []Field {
	return []Field{f("names", many(n.Names))}
}

// ContextReference: context ieee.ieee_std_context;
type ContextReference struct {
	Sp    source.Span
	Names []Expr
}

func (n *ContextReference) Fields() []Field {
	return []Field{f("names", many(n.Names))}
}

type EntityDecl struct {
	Sp       source.Span
	Context  []ContextItem
	Name     string
	Generics []InterfaceItem
	Ports    []InterfaceItem
	Decls    []Decl
	Stmts    []Stmt
	EndName  string
}

func (n *EntityDecl) Fields() []Field {
	return []Field{
		f("context", many(n.Context)),
		f("name", n.Name),
		f("generics", many(n.Generics)),
		f("ports", many(n.Ports)),
		f("declarations", many(n.Decls)),
		f("statements", many(n.Stmts)),
		f("end_name", optName(n.EndName)),
	}
}

type ArchitectureBody struct {
	Sp      source.Span
	Context []ContextItem
	Name    string
	Entity  string
	Decls   []Decl
	Stmts   []Stmt
	EndName string
}

func (n *ArchitectureBody) Fields() []Field {
	return []Field{
		f("context", many(n.Context)),
		f("name", n.Name),
		f("entity", n.Entity),
		f("declarations", many(n.Decls)),
		f("statements", many(n.Stmts)),
		f("end_name", optName(n.EndName)),
	}
}

type PackageDecl struct {
	Sp         source.Span
	Context    []ContextItem
	Name       string
	Generics   []InterfaceItem
	GenericMap []*Association
	Decls      []Decl
	EndName    string
}

func (n *PackageDecl) Fields() []Field {
	return []Field{
		f("context", many(n.Context)),
		f("name", n.Name),
		f("generics", many(n.Generics)),
		f("generic_map", many(n.GenericMap)),
		f("declarations", many(n.Decls)),
		f("end_name", optName(n.EndName)),
	}
}

// PackageInstantiation: package p is new work.generic_pkg generic map (...);
// It is both a design unit and a declaration.
type PackageInstantiation struct {
	Sp         source.Span
	Context    []ContextItem
	Name       string
	Package    Expr
	GenericMap []*Association
}

func (n *PackageInstantiation) Fields() []Field {
	return []Field{
		f("context", many(n.Context)),
		f("name", n.Name),
		f("package", one(n.Package)),
		f("generic_map", many(n.GenericMap)),
	}
}

type PackageBody struct {
	Sp      source.Span
	Context []ContextItem
	Name    string
	Decls   []Decl
	EndName string
}

func (n *PackageBody) Fields() []Field {
	return []Field{
		f("context", many(n.Context)),
		f("name", n.Name),
		f("declarations", many(n.Decls)),
		f("end_name", optName(n.EndName)),
	}
}

type ConfigurationDecl struct {
	Sp      source.Span
	Context []ContextItem
	Name    string
	Entity  Expr
	Decls   []Decl
	Block   *BlockConfig
	EndName string
}

func (n *ConfigurationDecl) Fields() []Field {
	return []Field{
		f("context", many(n.Context)),
		f("name", n.Name),
		f("entity", one(n.Entity)),
		f("declarations", many(n.Decls)),
		f("block", one(n.Block)),
		f("end_name", optName(n.EndName)),
	}
}

// BlockConfig: for rtl ... end for;
type BlockConfig struct {
	Sp    source.Span
	Spec  Expr
	Uses  []*UseClause
	Items []Node // *BlockConfig or *ComponentConfig
}

func (n *BlockConfig) Fields() []Field {
	return []Field{
		f("spec", one(n.Spec)),
		f("uses", many(n.Uses)),
		f("items", many(n.Items)),
	}
}

// ComponentConfig: for u1 : comp use entity work.e(rtl); end for;
type ComponentConfig struct {
	Sp      source.Span
	Spec    *ComponentSpec
	Binding *BindingIndication
	Block   *BlockConfig
}

func (n *ComponentConfig) Fields() []Field {
	return []Field{
		f("spec", one(n.Spec)),
		f("binding", one(n.Binding)),
		f("block", one(n.Block)),
	}
}

// ComponentSpec: u1, u2 : comp   |   all : comp   |   others : comp
type ComponentSpec struct {
	Sp        source.Span
	Labels    []string
	Component Expr
}

func (n *ComponentSpec) Fields() []Field {
	return []Field{
		f("labels", names(n.Labels)),
		f("component", one(n.Component)),
	}
}

type BindingIndication struct {
	Sp         source.Span
	Unit       *InstantiatedUnit
	GenericMap []*Association
	PortMap    []*Association
}

func (n *BindingIndication) Fields() []Field {
	return []Field{
		f("unit", one(n.Unit)),
		f("generic_map", many(n.GenericMap)),
		f("port_map", many(n.PortMap)),
	}
}

type ContextDecl struct {
	Sp      source.Span
	Context []ContextItem
	Name    string
	Items   []ContextItem
	EndName string
}

func (n *ContextDecl) Fields() []Field {
	return []Field{
		f("context", many(n.Context)),
		f("name", n.Name),
		f("items", many(n.Items)),
		f("end_name", optName(n.EndName)),
	}
}

// UnitName returns the declared name of a design unit.
func UnitName(u DesignUnit) string {
	switch u := u.(type) {
	case *EntityDecl:
		return u.Name
	case *ArchitectureBody:
		return u.Name
	case *PackageDecl:
		return u.Name
	case *PackageInstantiation:
		return u.Name
	case *PackageBody:
		return u.Name
	case *ConfigurationDecl:
		return u.Name
	case *ContextDecl:
		return u.Name
	}
	return ""
}

// UnitContext returns the context clause that precedes a design unit.
func UnitContext(u DesignUnit) []ContextItem {
	switch u := u.(type) {
	case *EntityDecl:
		return u.Context
	case *ArchitectureBody:
		return u.Context
	case *PackageDecl:
		return u.Context
	case *PackageInstantiation:
		return u.Context
	case *PackageBody:
		return u.Context
	case *ConfigurationDecl:
		return u.Context
	case *ContextDecl:
		return u.Context
	}
	return nil
}
