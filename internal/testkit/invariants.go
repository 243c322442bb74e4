package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"vhdlparser/internal/ast"
	"vhdlparser/internal/source"
)

// CheckSpans runs the span invariants on a parsed tree:
//  1. the root span lies within the file content
//  2. every node span is well formed, in the same file and inside its parent's span
//  3. the spans of siblings are ordered and do not overlap
func CheckSpans(root ast.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	rs := root.Span()
	if rs.File != sf.ID {
		return fmt.Errorf("root span points to different file id: got=%d want=%d", rs.File, sf.ID)
	}
	if rs.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", rs.End, lenContent)
	}
	return checkNode(root, sf.ID)
}

func checkNode(n ast.Node, file source.FileID) error {
	sp := n.Span()
	if sp.End < sp.Start {
		return fmt.Errorf("%s: inverted span %v", n.Kind(), sp)
	}
	var prev ast.Node
	for _, c := range ast.Children(n) {
		if c == nil {
			return fmt.Errorf("%s: nil child", n.Kind())
		}
		cs := c.Span()
		if cs.File != file {
			return fmt.Errorf("%s: span file mismatch: got=%d want=%d", c.Kind(), cs.File, file)
		}
		if !sp.Contains(cs) {
			return fmt.Errorf("%s span %v is outside parent %s span %v", c.Kind(), cs, n.Kind(), sp)
		}
		if prev != nil && !prev.Span().Before(cs) {
			return fmt.Errorf("%s span %v overlaps or precedes sibling %s span %v",
				c.Kind(), cs, prev.Kind(), prev.Span())
		}
		if err := checkNode(c, file); err != nil {
			return err
		}
		prev = c
	}
	return nil
}
