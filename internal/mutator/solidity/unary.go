package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

var prefixOperators = []string{"++", "--", "~"}
var postfixOperators = []string{"++", "--"}

// unaryOp swaps a UnaryOperation's operator within the prefix or postfix set
// matching its "prefix" flag, grounded on gambit_lib's UnaryOpMutator.
type unaryOp struct{}

func (unaryOp) Kind() mutator.Kind { return mutator.UnaryOp }

func (unaryOp) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if typ, ok := ast.TypeOf(n, ast.Solidity); !ok || typ != "UnaryOperation" {
		return false
	}
	op, ok := ast.Str(ast.Field(n, "operator"))
	if !ok {
		return false
	}
	set := operatorSetFor(n)

	return len(distinctFrom(set, op)) > 0 && contains(set, op)
}

func operatorSetFor(n ast.Node) []string {
	prefix, _ := ast.Field(n, "prefix").(bool)
	if prefix {
		return prefixOperators
	}

	return postfixOperators
}

func (unaryOp) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	old, _ := ast.Str(obj["operator"])
	choices := distinctFrom(operatorSetFor(n), old)
	next := choices[rng.Intn(len(choices))]
	obj["operator"] = next
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.UnaryOp, MutatedNodeID: id,
		OldText: old, NewText: next,
	}, nil
}
