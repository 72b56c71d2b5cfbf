package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// linesSwap swaps two non-Return statements of a Block, per spec §4.3: the
// block needs >=2 statements, or >=3 if one of them is a Return (so there
// remain >=2 non-Return candidates).
type linesSwap struct{}

func (linesSwap) Kind() mutator.Kind { return mutator.LinesSwap }

func (linesSwap) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "Block" {
		return false
	}

	return len(nonReturnIndices(n)) >= 2
}

func nonReturnIndices(n ast.Node) []int {
	var out []int
	for i, s := range ast.Seq(ast.Field(n, "statements")) {
		if t, ok := ast.TypeOf(s, ast.Solidity); ok && t != "Return" {
			out = append(out, i)
		}
	}

	return out
}

func (linesSwap) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	stmts := ast.Seq(obj["statements"])
	idxs := nonReturnIndices(n)
	a, b := distinctPair(rng, len(idxs))
	i, j := idxs[a], idxs[b]
	stmts[i], stmts[j] = stmts[j], stmts[i]
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.LinesSwap, MutatedNodeID: id,
	}, nil
}
