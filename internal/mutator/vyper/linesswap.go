package vyper

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// linesSwapTypes is the set of ast_types whose "body" sequence LinesSwap may
// operate on, per spec §4.3 / metamorph_lib's LinesSwapMutator.
var linesSwapTypes = map[string]bool{"FunctionDef": true, "For": true, "If": true}

// linesSwap swaps two non-Return elements of a FunctionDef/For/If's body.
type linesSwap struct{}

func (linesSwap) Kind() mutator.Kind { return mutator.LinesSwap }

func (linesSwap) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)
	if !ok || !linesSwapTypes[t] {
		return false
	}

	return len(nonReturnIndices(n)) >= 2
}

func nonReturnIndices(n ast.Node) []int {
	var out []int
	for i, s := range ast.Seq(ast.Field(n, "body")) {
		if t, ok := ast.TypeOf(s, ast.Vyper); ok && t != "Return" {
			out = append(out, i)
		}
	}

	return out
}

func (linesSwap) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	body := ast.Seq(obj["body"])
	idxs := nonReturnIndices(n)
	a, b := distinctPair(rng, len(idxs))
	i, j := idxs[a], idxs[b]
	body[i], body[j] = body[j], body[i]
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: mutator.LinesSwap, MutatedNodeID: id,
	}, nil
}
