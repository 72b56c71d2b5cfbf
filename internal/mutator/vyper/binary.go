package vyper

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// isBinaryFamily reports whether n has one of the ast_types whose operator
// lives at n["op"]["ast_type"]: arithmetic/bitwise/bitshift live on BinOp, logical on
// BoolOp, comparison on Compare.
func isBinaryFamily(n ast.Node) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)

	return ok && (t == "BinOp" || t == "BoolOp" || t == "Compare")
}

// binaryOp replaces n["op"]["ast_type"] with a different member of symbols
// (re-rolling away from the original), grounded on
// metamorph_lib's BinaryOpMutator.
type binaryOp struct {
	kind    mutator.Kind
	symbols []string
}

func (m binaryOp) Kind() mutator.Kind { return m.kind }

func (m binaryOp) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if !isBinaryFamily(n) {
		return false
	}
	py, ok := opName(n)
	if !ok {
		return false
	}
	sym, ok := pyToSymbol[py]

	return ok && contains(m.symbols, sym) && len(distinctFrom(m.symbols, sym)) > 0
}

func (m binaryOp) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	py, _ := opName(n)
	old := pyToSymbol[py]
	choices := distinctFrom(m.symbols, old)
	next := choices[rng.Intn(len(choices))]
	setOpName(n, symbolToPy[next])
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: m.kind, MutatedNodeID: id,
		OldText: old, NewText: next,
	}, nil
}

// rotateOp rotates n["op"]["ast_type"] to the next member of symbols
// (wrapping), used for BitwiseBinaryOp.
type rotateOp struct {
	symbols []string
}

func (rotateOp) Kind() mutator.Kind { return mutator.BitwiseBinaryOp }

func (m rotateOp) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if !isBinaryFamily(n) {
		return false
	}
	py, ok := opName(n)
	sym, ok2 := pyToSymbol[py]

	return ok && ok2 && contains(m.symbols, sym)
}

func (m rotateOp) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	py, _ := opName(n)
	old := pyToSymbol[py]
	idx := indexOf(m.symbols, old)
	next := m.symbols[(idx+1)%len(m.symbols)]
	setOpName(n, symbolToPy[next])
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: mutator.BitwiseBinaryOp, MutatedNodeID: id,
		OldText: old, NewText: next,
	}, nil
}

// bitshiftSwap swaps "<<" and ">>".
type bitshiftSwap struct{}

func (bitshiftSwap) Kind() mutator.Kind { return mutator.BitshiftBinaryOp }

func (bitshiftSwap) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if !isBinaryFamily(n) {
		return false
	}
	py, _ := opName(n)

	return py == "LShift" || py == "RShift"
}

func (bitshiftSwap) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	py, _ := opName(n)
	old := pyToSymbol[py]
	next, nextPy := "<<", "LShift"
	if py == "LShift" {
		next, nextPy = ">>", "RShift"
	}
	setOpName(n, nextPy)
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: mutator.BitshiftBinaryOp, MutatedNodeID: id,
		OldText: old, NewText: next,
	}, nil
}

// nonCommutative is the operator set SwapOperatorArguments applies to
// (spec §4.3).
var nonCommutative = []string{"-", "/", "%", "**", ">", "<", "<=", ">=", "<<", ">>"}

// swapOperatorArguments swaps a BinOp/Compare's left/right, or a BoolOp's
// two values, grounded on metamorph_lib's OperatorSwapArgumentsMutator.
type swapOperatorArguments struct{}

func (swapOperatorArguments) Kind() mutator.Kind { return mutator.SwapOperatorArguments }

func (swapOperatorArguments) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if !isBinaryFamily(n) {
		return false
	}
	py, ok := opName(n)
	sym, ok2 := pyToSymbol[py]

	return ok && ok2 && contains(nonCommutative, sym)
}

func (swapOperatorArguments) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	typ, _ := ast.TypeOf(n, ast.Vyper)
	if typ == "BoolOp" {
		values := ast.Seq(obj["values"])
		if len(values) >= 2 {
			values[0], values[1] = values[1], values[0]
		}
	} else {
		obj["left"], obj["right"] = obj["right"], obj["left"]
	}
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: mutator.SwapOperatorArguments, MutatedNodeID: id,
	}, nil
}
