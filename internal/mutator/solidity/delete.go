package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// deleteStatement removes a randomly chosen element of a Block's statement
// sequence, per spec §4.3. If the block becomes empty, MutateInFunction
// inspects the nearest enclosing FunctionDefinition's first declared return
// parameter and inserts a type-appropriate Return (mirroring how Vyper's
// deleteStatement reads its own FunctionDef node's "returns" field, just via
// ancestor context instead of a field on the mutated node itself); with no
// enclosing function, or one with no declared return, it inserts a
// PlaceholderStatement no-op instead. The removed subtree travels back via
// Result.RemovedNode for the comment-insertion pass to render.
type deleteStatement struct{}

func (deleteStatement) Kind() mutator.Kind { return mutator.DeleteStatement }

func (deleteStatement) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "Block" {
		return false
	}

	return len(ast.Seq(ast.Field(n, "statements"))) > 0
}

// Mutate implements mutator.Mutator for callers with no function-context
// plumbing (e.g. this package's own unit tests exercising the operator in
// isolation); it is MutateInFunction with fn = nil, which always falls back
// to PlaceholderStatement.
func (d deleteStatement) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	return d.MutateInFunction(n, nil, rng)
}

// MutateInFunction is mutator.FunctionAware's hook: fn is the nearest
// enclosing FunctionDefinition the traversal found, or nil outside one.
func (deleteStatement) MutateInFunction(n, fn ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	stmts := ast.Seq(obj["statements"])
	idx := rng.Intn(len(stmts))
	removed := stmts[idx]

	rest := make([]ast.Node, 0, len(stmts))
	rest = append(rest, stmts[:idx]...)
	rest = append(rest, stmts[idx+1:]...)

	if len(rest) == 0 {
		rest = append(rest, emptyBodyFiller(fn, rng))
	}
	obj["statements"] = rest
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.DeleteStatement, MutatedNodeID: id,
		RemovedNode: removed,
	}, nil
}

// emptyBodyFiller builds the statement inserted when removing the last
// statement in a Block leaves it empty: a type-appropriate Return when fn
// declares one, a PlaceholderStatement no-op otherwise (fn nil, a
// constructor/modifier with no returnParameters, or an unrecognized return
// type).
func emptyBodyFiller(fn ast.Node, rng *rand.Rand) ast.Node {
	ts, ok := firstReturnTypeString(fn)
	if !ok {
		return ast.NewObj(ast.Solidity, "PlaceholderStatement", nil)
	}
	kind, ok := classifyTypeString(ts)
	if !ok {
		return ast.NewObj(ast.Solidity, "PlaceholderStatement", nil)
	}

	return ast.NewObj(ast.Solidity, "Return", map[string]ast.Node{
		"expression": returnLiteral(kind, ts, rng),
	})
}

// firstReturnTypeString reads the typeDescriptions.typeString of a
// FunctionDefinition's first declared return parameter, or ok=false when fn
// is nil or declares no returns (constructors, void functions, modifiers).
func firstReturnTypeString(fn ast.Node) (string, bool) {
	if fn == nil {
		return "", false
	}
	params := ast.Seq(ast.Field(ast.Field(fn, "returnParameters"), "parameters"))
	if len(params) == 0 {
		return "", false
	}

	return ast.Str(ast.Field(ast.Field(params[0], "typeDescriptions"), "typeString"))
}

// returnLiteral builds a fresh literal of kind within ts's valid range,
// reusing assignment.go's bounded-random-literal helpers (spec §4.3's range
// rules are shared between Assignment's replacement literal and this one).
func returnLiteral(kind, ts string, rng *rand.Rand) ast.Node {
	if kind == "bool" {
		return boolLiteral(rng.Intn(2) == 0)
	}

	bits := bitWidth(ts, kind)
	var text string
	if kind == "int" {
		text = randomSigned(rng, bits).String()
	} else {
		text = randomUnsigned(rng, bits).String()
	}

	return ast.NewObj(ast.Solidity, "Literal", map[string]ast.Node{
		"kind":  "number",
		"value": text,
		"typeDescriptions": map[string]ast.Node{
			"typeString": ts,
		},
	})
}
