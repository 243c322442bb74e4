package ast

import (
	"regexp"
	"slices"
	"testing"

	"vhdlparser/internal/source"
)

func sp(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

func TestOptionalChildrenAreUntypedNil(t *testing.T) {
	decl := &SignalDecl{Sp: sp(0, 20), Names: []string{"s"}, Subtype: nil, Default: nil}
	for _, fd := range decl.Fields() {
		switch fd.Name {
		case "subtype", "default", "signal_kind":
			if fd.Value != nil {
				t.Fatalf("field %s = %#v, want nil", fd.Name, fd.Value)
			}
		}
	}
}

func TestListsAreNeverNil(t *testing.T) {
	ent := &EntityDecl{Sp: sp(0, 10), Name: "e"}
	for _, fd := range ent.Fields() {
		switch v := fd.Value.(type) {
		case []Node:
			if v == nil {
				t.Fatalf("list %s is nil", fd.Name)
			}
		case []string:
			if v == nil {
				t.Fatalf("name list %s is nil", fd.Name)
			}
		}
	}
}

func TestInspectVisitsInSourceOrder(t *testing.T) {
	// a + b * c
	tree := &BinaryExpr{
		Sp:   sp(0, 9),
		Op:   "+",
		Left: &SimpleName{Sp: sp(0, 1), Name: "a"},
		Right: &BinaryExpr{
			Sp:    sp(4, 9),
			Op:    "*",
			Left:  &SimpleName{Sp: sp(4, 5), Name: "b"},
			Right: &SimpleName{Sp: sp(8, 9), Name: "c"},
		},
	}
	var seen []string
	Inspect(tree, func(n Node) bool {
		if nm, ok := n.(*SimpleName); ok {
			seen = append(seen, nm.Name)
		}
		return true
	})
	if !slices.Equal(seen, []string{"a", "b", "c"}) {
		t.Fatalf("visit order %v", seen)
	}
	if Count(tree) != 5 {
		t.Fatalf("Count = %d", Count(tree))
	}

	skipped := 0
	Inspect(tree, func(n Node) bool {
		skipped++
		_, isBin := n.(*BinaryExpr)
		return !isBin || n == Node(tree)
	})
	if skipped != 3 {
		t.Fatalf("pruned walk visited %d nodes, want 3", skipped)
	}
}

func TestKindNames(t *testing.T) {
	kebab := regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)
	kinds := KnownKinds()
	if !slices.IsSorted(kinds) {
		t.Fatalf("KnownKinds is not sorted")
	}
	for _, k := range kinds {
		if !kebab.MatchString(k) {
			t.Errorf("kind %q is not kebab-case", k)
		}
	}
	roles := map[InterfaceRole]string{
		RoleGeneric:   "generic-declaration",
		RolePort:      "port-declaration",
		RoleParameter: "parameter-declaration",
	}
	for role, want := range roles {
		if got := (&InterfaceDecl{Role: role}).Kind(); got != want || !slices.Contains(kinds, got) {
			t.Errorf("role %d kind %q", role, got)
		}
	}
	if (&ArrayType{Unbounded: true}).Kind() != "unbounded-array-definition" {
		t.Errorf("unbounded array kind")
	}
}

func TestUnitHelpers(t *testing.T) {
	lib := &LibraryClause{Sp: sp(0, 13), Names: []string{"ieee"}}
	var u DesignUnit = &PackageBody{Sp: sp(0, 40), Context: []ContextItem{lib}, Name: "p"}
	if UnitName(u) != "p" || len(UnitContext(u)) != 1 {
		t.Fatalf("UnitName/UnitContext on package body")
	}
}
