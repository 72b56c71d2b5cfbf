package vyper

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// unaryOp drops a UnaryOp node's operator, replacing it with its operand,
// per spec §4.3 (Language-V variant: Vyper has only `not`/`~`, which carry
// different meanings, so there is nothing sensible to swap the operator
// with — the operator is simply eliminated). Grounded on
// metamorph_lib's UnaryOpMutator (`*node = operand_node`). Identity is
// preserved so the path map still locates this position.
type unaryOp struct{}

func (unaryOp) Kind() mutator.Kind { return mutator.UnaryOp }

func (unaryOp) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)

	return ok && t == "UnaryOp" && ast.Field(n, "operand") != nil
}

func (unaryOp) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	id, _ := ast.IDOf(n, ast.Vyper)
	operand := ast.Obj(obj["operand"])

	for k := range obj {
		delete(obj, k)
	}
	for k, v := range operand {
		obj[k] = v
	}
	obj[ast.Vyper.IDKey()] = id

	return mutator.Result{
		Kind: mutator.UnaryOp, MutatedNodeID: id,
	}, nil
}
