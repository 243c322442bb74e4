// Package ast declares the syntax tree produced by the parser.
//
// Every construct is a pointer to a struct implementing Node. A node owns its
// children; there are no parent pointers and no sharing between subtrees.
// Fields lists a node's children in source order, which is the order the
// serializer emits them and the order span invariants are checked in.
package ast

import "vhdlparser/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
	// Kind is the kebab-case variant tag, e.g. "entity-declaration".
	Kind() string
	// Fields returns the node's parts in source order.
	Fields() []Field
}

// Field is one named part of a node. Value is one of:
// nil, Node, []Node, string, []string or bool.
type Field struct {
	Name  string
	Value any
}

type (
	// DesignUnit is a library unit together with its context clause.
	DesignUnit interface {
		Node
		unitNode()
	}
	// ContextItem is a library clause, use clause or context reference.
	ContextItem interface {
		Node
		contextNode()
	}
	Decl interface {
		Node
		declNode()
	}
	// Stmt covers both concurrent and sequential statements.
	Stmt interface {
		Node
		stmtNode()
	}
	Expr interface {
		Node
		exprNode()
	}
	TypeDef interface {
		Node
		typeDefNode()
	}
	// InterfaceItem is an element of a generic, port or parameter list.
	InterfaceItem interface {
		Node
		interfaceNode()
	}
)

type comparableNode interface {
	Node
	comparable
}

// one wraps an optional child so that an absent child becomes nil rather
// than a typed nil pointer.
func one[T comparableNode](n T) any {
	var zero T
	if n == zero {
		return nil
	}
	return n
}

func many[T Node](xs []T) []Node {
	out := make([]Node, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func optName(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func names(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

func f(name string, value any) Field { return Field{Name: name, Value: value} }

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	var out []Node
	for _, fd := range n.Fields() {
		switch v := fd.Value.(type) {
		case Node:
			out = append(out, v)
		case []Node:
			out = append(out, v...)
		}
	}
	return out
}

// Inspect traverses the tree depth-first. If fn returns false the children of
// that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Inspect(n, func(Node) bool {
		total++
		return true
	})
	return total
}
