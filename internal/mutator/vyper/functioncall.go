package vyper

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// functionCall replaces an entire Call expression with one of its
// non-literal arguments (excluding Int/Str), per spec §4.3, preserving the
// call's id per spec §4.5. Grounded on metamorph_lib's FunctionCallMutator.
type functionCall struct{}

func (functionCall) Kind() mutator.Kind { return mutator.FunctionCall }

func (functionCall) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)
	if !ok || t != "Call" {
		return false
	}

	return len(nonLiteralArgs(n)) > 0
}

func nonLiteralArgs(n ast.Node) []ast.Node {
	var out []ast.Node
	for _, a := range ast.Seq(ast.Field(n, "args")) {
		if t, ok := ast.TypeOf(a, ast.Vyper); ok && t != "Int" && t != "Str" {
			out = append(out, a)
		}
	}

	return out
}

func (functionCall) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	id, _ := ast.IDOf(n, ast.Vyper)
	removed := shallowCopy(obj)

	candidates := nonLiteralArgs(n)
	chosenObj := ast.Obj(candidates[rng.Intn(len(candidates))])

	for k := range obj {
		delete(obj, k)
	}
	for k, v := range chosenObj {
		obj[k] = v
	}
	obj[ast.Vyper.IDKey()] = id

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
