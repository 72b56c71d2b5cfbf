package vyper

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// ifStatement replaces an If node's "test" with true, false, or its
// negation, with equal probability, per spec §4.3. Grounded on
// metamorph_lib's IfStatementMutator.
type ifStatement struct{}

func (ifStatement) Kind() mutator.Kind { return mutator.IfStatement }

func (ifStatement) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)

	return ok && t == "If" && ast.Field(n, "test") != nil
}

func (ifStatement) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	id, _ := ast.IDOf(n, ast.Vyper)

	switch rng.Intn(3) {
	case 0:
		obj["test"] = ast.NewObj(ast.Vyper, "NameConstant", map[string]ast.Node{"value": true})
	case 1:
		obj["test"] = ast.NewObj(ast.Vyper, "NameConstant", map[string]ast.Node{"value": false})
	default:
		obj["test"] = ast.NewObj(ast.Vyper, "UnaryOp", map[string]ast.Node{
			"operand": obj["test"],
			"op":      map[string]ast.Node{ast.Vyper.TypeKey(): "Not", ast.Vyper.IDKey(): ast.NewSyntheticID()},
		})
	}

	return mutator.Result{
		Kind: mutator.IfStatement, MutatedNodeID: id,
	}, nil
}
