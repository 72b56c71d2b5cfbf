package engine

import "github.com/go-mutagen/mutagen/internal/ast"

// DeepCopy recursively clones n, per spec §3 "the AST is... cloned once per
// mutation attempt, mutated in place on the clone". It delegates to
// ast.DeepCopy, which traverse also needs (to snapshot a node's state before
// a Mutate call rewrites it in place) and cannot reach through this package
// without an import cycle.
func DeepCopy(n ast.Node) ast.Node {
	return ast.DeepCopy(n)
}
