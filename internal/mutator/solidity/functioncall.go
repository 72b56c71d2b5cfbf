package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// functionCall replaces an entire call expression with one of its
// non-literal arguments, per spec §4.3. The call node's identity (id) is
// preserved so the path map computed before mutation still locates it, per
// spec §4.5 — Mutate clears the node's fields and repopulates them from the
// chosen argument, keeping the original id.
type functionCall struct{}

func (functionCall) Kind() mutator.Kind { return mutator.FunctionCall }

func (functionCall) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "FunctionCall" {
		return false
	}

	return len(nonLiteralArgs(n)) > 0
}

func nonLiteralArgs(n ast.Node) []ast.Node {
	var out []ast.Node
	for _, a := range ast.Seq(ast.Field(n, "arguments")) {
		if t, ok := ast.TypeOf(a, ast.Solidity); ok && t != "Literal" {
			out = append(out, a)
		}
	}

	return out
}

func (functionCall) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	id, _ := ast.IDOf(n, ast.Solidity)
	removed := shallowCopy(obj)

	candidates := nonLiteralArgs(n)
	chosen := candidates[rng.Intn(len(candidates))]
	chosenObj := ast.Obj(chosen)

	for k := range obj {
		delete(obj, k)
	}
	for k, v := range chosenObj {
		obj[k] = v
	}
	obj[ast.Solidity.IDKey()] = id

	return mutator.Result{
		Kind: mutator.FunctionCall, MutatedNodeID: id,
		RemovedNode: removed,
	}, nil
}

func shallowCopy(m map[string]ast.Node) map[string]ast.Node {
	out := make(map[string]ast.Node, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
