package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// require wraps a `require(...)` call's first argument in a logical
// negation inside a tuple expression, per spec §4.3: `require(cond)` becomes
// `require((!(cond)))`. Grounded on gambit_lib's SolidityRequireMutator.
type require struct{}

func (require) Kind() mutator.Kind { return mutator.Require }

func (require) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "FunctionCall" {
		return false
	}
	name, ok := ast.Str(ast.Field(ast.Field(n, "expression"), "name"))

	return ok && name == "require" && len(ast.Seq(ast.Field(n, "arguments"))) > 0
}

func (require) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	args := ast.Seq(obj["arguments"])
	arg := args[0]

	negated := ast.NewObj(ast.Solidity, "UnaryOperation", map[string]ast.Node{
		"operator":      "!",
		"prefix":        true,
		"subExpression": arg,
		"typeDescriptions": map[string]ast.Node{
			"typeString": "bool",
		},
	})
	tuple := ast.NewObj(ast.Solidity, "TupleExpression", map[string]ast.Node{
		"components": []ast.Node{negated},
		"typeDescriptions": map[string]ast.Node{
			"typeString": "bool",
		},
	})
	args[0] = tuple
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.Require, MutatedNodeID: id,
	}, nil
}

// uncheckedBlock wraps an ExpressionStatement in a Solidity `unchecked{...}`
// block, per spec §4.3. The synthetic UncheckedBlock keeps the original
// statement's id so the path map still locates it.
type uncheckedBlock struct{}

func (uncheckedBlock) Kind() mutator.Kind { return mutator.UncheckedBlock }

func (uncheckedBlock) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)

	return ok && typ == "ExpressionStatement"
}

func (uncheckedBlock) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	id, _ := ast.IDOf(n, ast.Solidity)
	inner := shallowCopy(obj)

	for k := range obj {
		delete(obj, k)
	}
	obj[ast.Solidity.TypeKey()] = "UncheckedBlock"
	obj[ast.Solidity.IDKey()] = id
	obj["statements"] = []ast.Node{inner}

	return mutator.Result{
		Kind: mutator.UncheckedBlock, MutatedNodeID: id,
	}, nil
}

// elimDelegateCall renames a member-access call's "delegatecall" member to
// "call", per spec §4.3.
type elimDelegateCall struct{}

func (elimDelegateCall) Kind() mutator.Kind { return mutator.ElimDelegateCall }

func (elimDelegateCall) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "FunctionCall" {
		return false
	}
	member := ast.Field(n, "expression")
	if mtyp, ok := ast.TypeOf(member, ast.Solidity); !ok || mtyp != "MemberAccess" {
		return false
	}
	name, ok := ast.Str(ast.Field(member, "memberName"))

	return ok && name == "delegatecall"
}

func (elimDelegateCall) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	member := ast.Obj(ast.Field(n, "expression"))
	member["memberName"] = "call"
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.ElimDelegateCall, MutatedNodeID: id,
		OldText: "delegatecall", NewText: "call",
	}, nil
}
