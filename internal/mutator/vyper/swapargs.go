package vyper

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// functionSwapArguments swaps two of a Call's args, chosen uniformly at
// random, per spec §4.3. Grounded on
// metamorph_lib's SwapFunctionArgumentsMutator.
type functionSwapArguments struct{}

func (functionSwapArguments) Kind() mutator.Kind { return mutator.FunctionSwapArguments }

func (functionSwapArguments) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)
	if !ok || t != "Call" {
		return false
	}

	return len(ast.Seq(ast.Field(n, "args"))) >= 2
}

func (functionSwapArguments) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	args := ast.Seq(obj["args"])
	i, j := distinctPair(rng, len(args))
	args[i], args[j] = args[j], args[i]
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: mutator.FunctionSwapArguments, MutatedNodeID: id,
	}, nil
}

func distinctPair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
