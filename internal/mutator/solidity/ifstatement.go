package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// ifStatement replaces an IfStatement's condition with true, false, or its
// logical negation, with equal probability, per spec §4.3.
type ifStatement struct{}

func (ifStatement) Kind() mutator.Kind { return mutator.IfStatement }

func (ifStatement) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "IfStatement" {
		return false
	}

	return ast.Field(n, "condition") != nil
}

func (ifStatement) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	cond := obj["condition"]
	id, _ := ast.IDOf(n, ast.Solidity)

	var replacement ast.Node
	switch rng.Intn(3) {
	case 0:
		replacement = boolLiteral(true)
	case 1:
		replacement = boolLiteral(false)
	default:
		replacement = ast.NewObj(ast.Solidity, "UnaryOperation", map[string]ast.Node{
			"operator":       "!",
			"prefix":         true,
			"subExpression":  cond,
			"typeDescriptions": map[string]ast.Node{"typeString": "bool"},
		})
	}
	obj["condition"] = replacement

	return mutator.Result{
		Kind: mutator.IfStatement, MutatedNodeID: id,
	}, nil
}

func boolLiteral(v bool) ast.Node {
	text := "false"
	if v {
		text = "true"
	}

	return ast.NewObj(ast.Solidity, "Literal", map[string]ast.Node{
		"kind":  "bool",
		"value": text,
		"typeDescriptions": map[string]ast.Node{
			"typeString": "bool",
		},
	})
}
