package traverse

import (
	"sort"

	"github.com/go-mutagen/mutagen/internal/ast"
)

// PathStep is one (key, optional_index) hop of a Node Path (spec §3): a
// move from a map node into field Key, and — if that field's value is a
// sequence — on into element Index of it. Index is -1 when the field's
// value is used directly (no sequence in between).
type PathStep struct {
	Key   string
	Index int
}

// Path is an ordered root-to-node sequence of PathSteps.
type Path []PathStep

// PathVisitor computes node_id -> Path for every node whose id is defined
// (spec §4.2). It does not implement Visitor: reconstructing a usable path
// requires the field key (and, for sequence members, the index) that
// produced each child, which the generic depth-first Walk/children()
// abstraction doesn't surface since it only enumerates child nodes, not
// their edges. PathVisitor therefore performs its own recursion, in the
// same deterministic order children() uses (sorted map keys, then natural
// sequence order), maintaining a path stack pushed on entry and popped on
// exit exactly as spec §4.2 describes.
type PathVisitor struct {
	Lang ast.Lang

	Paths map[int64]Path

	stack Path
}

// NewPathVisitor builds a PathVisitor for lang.
func NewPathVisitor(lang ast.Lang) *PathVisitor {
	return &PathVisitor{Lang: lang, Paths: make(map[int64]Path)}
}

// Build computes the path map for root.
func (v *PathVisitor) Build(root ast.Node) {
	v.visit(root)
}

func (v *PathVisitor) visit(n ast.Node) {
	if id, ok := ast.IDOf(n, v.Lang); ok {
		p := make(Path, len(v.stack))
		copy(p, v.stack)
		v.Paths[id] = p
	}

	m, ok := n.(map[string]ast.Node)
	if !ok {
		return
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch val := m[k].(type) {
		case []ast.Node:
			for i, c := range val {
				v.stack = append(v.stack, PathStep{Key: k, Index: i})
				v.visit(c)
				v.stack = v.stack[:len(v.stack)-1]
			}
		default:
			v.stack = append(v.stack, PathStep{Key: k, Index: -1})
			v.visit(val)
			v.stack = v.stack[:len(v.stack)-1]
		}
	}
}
