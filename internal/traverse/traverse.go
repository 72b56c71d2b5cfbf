// Package traverse implements the single depth-first walk shared by every
// AST pass (spec §4.2), and the three concrete visitors built on it:
// CounterVisitor, MutationVisitor, PathVisitor.
package traverse

import (
	"sort"

	"github.com/go-mutagen/mutagen/internal/ast"
)

// Visitor is called at each node of a depth-first walk. VisitChildren
// decides whether the walk descends into the node's children; it is
// consulted after Visit, mirroring spec §4.2's on_enter -> visit ->
// (recurse iff visit_children) -> on_exit order.
type Visitor interface {
	OnEnter(n ast.Node)
	Visit(n ast.Node)
	VisitChildren(n ast.Node) bool
	OnExit(n ast.Node)
}

// Traverser walks a Node depth-first, deterministically: a map's children
// are visited in sorted-key order (object key order is not part of the
// program's meaning per spec §3) and a sequence's children are visited in
// their stored order (program order, which the spec requires be preserved).
type Traverser struct{}

// New builds a Traverser. It carries no state: every visitor supplies its
// own.
func New() Traverser {
	return Traverser{}
}

// Walk performs one depth-first traversal of n, driving v.
func (Traverser) Walk(n ast.Node, v Visitor) {
	walk(n, v)
}

func walk(n ast.Node, v Visitor) {
	v.OnEnter(n)
	v.Visit(n)
	if v.VisitChildren(n) {
		for _, c := range children(n) {
			walk(c, v)
		}
	}
	v.OnExit(n)
}

// children enumerates n's child Nodes in deterministic order: map fields by
// sorted key, sequence elements by stored order.
func children(n ast.Node) []ast.Node {
	switch t := n.(type) {
	case map[string]ast.Node:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]ast.Node, 0, len(t))
		for _, k := range keys {
			out = append(out, t[k])
		}

		return out
	case []ast.Node:
		return t
	default:
		return nil
	}
}
