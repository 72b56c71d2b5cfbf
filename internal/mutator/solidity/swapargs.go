package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// functionSwapArguments swaps two of a FunctionCall's arguments, chosen
// uniformly at random, per spec §4.3.
type functionSwapArguments struct{}

func (functionSwapArguments) Kind() mutator.Kind { return mutator.FunctionSwapArguments }

func (functionSwapArguments) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "FunctionCall" {
		return false
	}

	return len(ast.Seq(ast.Field(n, "arguments"))) >= 2
}

func (functionSwapArguments) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	args := ast.Seq(obj["arguments"])
	i, j := distinctPair(rng, len(args))
	args[i], args[j] = args[j], args[i]
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.FunctionSwapArguments, MutatedNodeID: id,
	}, nil
}

// distinctPair picks two distinct indices in [0, n).
func distinctPair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
