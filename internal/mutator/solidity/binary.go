// Package solidity is the Language-S mutator catalog (spec §4.3): one
// Mutator per operator id, plus the Factory that constructs them. Node
// shapes are grounded on solc's compact JSON AST as used by
// gambit_lib/src/solidity/mutators.rs: "nodeType", "operator", "prefix",
// "leftExpression"/"rightExpression", "typeDescriptions.typeString".
package solidity

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// binaryOp mutates the "operator" field of a BinaryOperation node, picking a
// fresh member of operators (re-rolling away from the original, per spec
// §4.3 "Tie-breaking"). One instance per operator-kind (Arithmetic, Logical,
// Comparison); Bitwise/Bitshift use the dedicated rotate/swap mutators below.
// Grounded on gambit_lib's BinaryOpMutator.
type binaryOp struct {
	kind      mutator.Kind
	operators []string
}

func (m binaryOp) Kind() mutator.Kind { return m.kind }

func (m binaryOp) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if typ, ok := ast.TypeOf(n, ast.Solidity); !ok || typ != "BinaryOperation" {
		return false
	}
	op, ok := ast.Str(ast.Field(n, "operator"))
	if !ok {
		return false
	}

	return contains(m.operators, op) && len(distinctFrom(m.operators, op)) > 0
}

func (m binaryOp) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	old, _ := ast.Str(obj["operator"])
	choices := distinctFrom(m.operators, old)
	next := choices[rng.Intn(len(choices))]
	obj["operator"] = next
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: m.kind, MutatedNodeID: id,
		OldText: old, NewText: next,
	}, nil
}

// rotateOp replaces a BinaryOperation operator by rotating to the next
// member of operators (wrapping), used by BitwiseBinaryOp per spec §4.3.
type rotateOp struct {
	operators []string
}

func (rotateOp) Kind() mutator.Kind { return mutator.BitwiseBinaryOp }

func (m rotateOp) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if typ, ok := ast.TypeOf(n, ast.Solidity); !ok || typ != "BinaryOperation" {
		return false
	}
	op, ok := ast.Str(ast.Field(n, "operator"))

	return ok && contains(m.operators, op)
}

func (m rotateOp) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	old, _ := ast.Str(obj["operator"])
	idx := indexOf(m.operators, old)
	next := m.operators[(idx+1)%len(m.operators)]
	obj["operator"] = next
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.BitwiseBinaryOp, MutatedNodeID: id,
		OldText: old, NewText: next,
	}, nil
}

// bitshiftSwap swaps "<<" and ">>", per spec §4.3 BitshiftBinaryOp.
type bitshiftSwap struct{}

func (bitshiftSwap) Kind() mutator.Kind { return mutator.BitshiftBinaryOp }

func (bitshiftSwap) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if typ, ok := ast.TypeOf(n, ast.Solidity); !ok || typ != "BinaryOperation" {
		return false
	}
	op, _ := ast.Str(ast.Field(n, "operator"))

	return op == "<<" || op == ">>"
}

func (bitshiftSwap) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	old, _ := ast.Str(obj["operator"])
	next := "<<"
	if old == "<<" {
		next = ">>"
	}
	obj["operator"] = next
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.BitshiftBinaryOp, MutatedNodeID: id,
		OldText: old, NewText: next,
	}, nil
}

// nonCommutative is the operator set SwapOperatorArguments applies to
// (spec §4.3).
var nonCommutative = []string{"-", "/", "%", "**", ">", "<", "<=", ">=", "<<", ">>"}

// swapOperatorArguments swaps leftExpression/rightExpression on a
// non-commutative BinaryOperation.
type swapOperatorArguments struct{}

func (swapOperatorArguments) Kind() mutator.Kind { return mutator.SwapOperatorArguments }

func (swapOperatorArguments) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if typ, ok := ast.TypeOf(n, ast.Solidity); !ok || typ != "BinaryOperation" {
		return false
	}
	op, ok := ast.Str(ast.Field(n, "operator"))

	return ok && contains(nonCommutative, op)
}

func (swapOperatorArguments) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	obj["leftExpression"], obj["rightExpression"] = obj["rightExpression"], obj["leftExpression"]
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.SwapOperatorArguments, MutatedNodeID: id,
	}, nil
}

func contains(set []string, v string) bool { return indexOf(set, v) >= 0 }

func indexOf(set []string, v string) int {
	for i, s := range set {
		if s == v {
			return i
		}
	}

	return -1
}

func distinctFrom(set []string, exclude string) []string {
	out := make([]string, 0, len(set))
	for _, s := range set {
		if s != exclude {
			out = append(out, s)
		}
	}

	return out
}
