package vyper

import (
	"encoding/json"
	"math/rand"
	"strconv"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// deleteStatement removes a randomly chosen element of a FunctionDef's body,
// per spec §4.3. If the body becomes empty, it inserts a type-appropriate
// Return built from the function's "returns" annotation (Name/Tuple/List),
// or a Pass when the function returns nothing. Grounded on
// metamorph_lib's DeleteStatementMutator; the removed statement's own
// commenting-out is handled once, generically, by the driver's
// comment-insertion pass (spec §4.5) rather than inline here, so the
// removed subtree travels back via Result.RemovedNode.
type deleteStatement struct{}

func (deleteStatement) Kind() mutator.Kind { return mutator.DeleteStatement }

func (deleteStatement) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)
	if !ok || t != "FunctionDef" {
		return false
	}

	return len(ast.Seq(ast.Field(n, "body"))) > 0
}

func (deleteStatement) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	body := ast.Seq(obj["body"])
	idx := rng.Intn(len(body))
	removed := body[idx]

	rest := make([]ast.Node, 0, len(body))
	rest = append(rest, body[:idx]...)
	rest = append(rest, body[idx+1:]...)

	if len(rest) == 0 {
		rest = append(rest, replacementStatement(obj["returns"], rng))
	}
	obj["body"] = rest
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: mutator.DeleteStatement, MutatedNodeID: id,
		RemovedNode: removed,
	}, nil
}

func replacementStatement(returns ast.Node, rng *rand.Rand) ast.Node {
	if returns == nil {
		return ast.NewObj(ast.Vyper, "Pass", nil)
	}
	t, ok := ast.TypeOf(returns, ast.Vyper)
	if !ok {
		return ast.NewObj(ast.Vyper, "Pass", nil)
	}

	switch t {
	case "Pass":
		return ast.NewObj(ast.Vyper, "Pass", nil)
	case "Name":
		id, _ := ast.Str(ast.Field(returns, "id"))
		return wrapReturn(returnValueFor(id, rng))
	case "Tuple", "List":
		elems := ast.Seq(ast.Field(returns, "elements"))
		none := make([]ast.Node, len(elems))
		for i := range none {
			none[i] = ast.NewObj(ast.Vyper, "NameConstant", map[string]ast.Node{"value": nil})
		}

		return wrapReturn(ast.NewObj(ast.Vyper, t, map[string]ast.Node{"elements": none}))
	default:
		return ast.NewObj(ast.Vyper, "Pass", nil)
	}
}

func returnValueFor(typeName string, rng *rand.Rand) ast.Node {
	if len(typeName) < 3 {
		return ast.NewObj(ast.Vyper, "NameConstant", map[string]ast.Node{"value": nil})
	}
	switch typeName[:3] {
	case "boo":
		return ast.NewObj(ast.Vyper, "NameConstant", map[string]ast.Node{"value": rng.Intn(2) == 1})
	case "uin":
		return ast.NewObj(ast.Vyper, "Int", map[string]ast.Node{"value": json.Number(strconv.Itoa(rng.Intn(10)))})
	case "int":
		return ast.NewObj(ast.Vyper, "Int", map[string]ast.Node{"value": json.Number(strconv.Itoa(rng.Intn(21) - 10))})
	case "str":
		return ast.NewObj(ast.Vyper, "Str", map[string]ast.Node{"value": "lorem ipsum dolor sit amet"})
	default:
		return ast.NewObj(ast.Vyper, "NameConstant", map[string]ast.Node{"value": nil})
	}
}

func wrapReturn(value ast.Node) ast.Node {
	return ast.NewObj(ast.Vyper, "Return", map[string]ast.Node{"value": value})
}
