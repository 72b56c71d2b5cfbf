package vyper_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
	"github.com/go-mutagen/mutagen/internal/mutator/vyper"
)

func mustMutator(t *testing.T, k mutator.Kind) mutator.Mutator {
	t.Helper()
	m, ok := vyper.Factory{}.New(k)
	if !ok {
		t.Fatalf("Factory.New(%s) = false, want an implementation", k)
	}

	return m
}

func TestFactoryHasNoLanguageSpecificOperators(t *testing.T) {
	for _, k := range []mutator.Kind{mutator.Require, mutator.UncheckedBlock, mutator.ElimDelegateCall} {
		if _, ok := (vyper.Factory{}).New(k); ok {
			t.Errorf("Factory.New(%s) = true, want false (Solidity-only operator)", k)
		}
	}
}

func opNode(astType string) ast.Node {
	return map[string]ast.Node{"ast_type": astType}
}

func TestIntegerMutatesIntValueByOneOrReplacesIt(t *testing.T) {
	m := mustMutator(t, mutator.Integer)
	n := map[string]ast.Node{"ast_type": "Int", "node_id": json.Number("1"), "value": json.Number("10")}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected an Int node to be mutable")
	}

	res, err := m.Mutate(n, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}
	if res.OldText != "10" {
		t.Errorf("OldText = %q, want 10", res.OldText)
	}
	newVal, ok := ast.Field(n, "value").(json.Number)
	if !ok || newVal.String() != res.NewText {
		t.Errorf("node value = %v, want it to match Result.NewText %q", ast.Field(n, "value"), res.NewText)
	}
}

func TestArithmeticBinaryOpRerollsAwayFromTheOriginalOperator(t *testing.T) {
	m := mustMutator(t, mutator.ArithmeticBinaryOp)
	n := map[string]ast.Node{"ast_type": "BinOp", "node_id": json.Number("1"), "op": opNode("Add")}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected a BinOp/Add to be mutable")
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		res, err := m.Mutate(n, rng)
		if err != nil {
			t.Fatalf("Mutate: unexpected error: %s", err)
		}
		if res.NewText == "+" {
			t.Fatalf("Mutate() picked the original operator %q", res.NewText)
		}
		n["op"] = opNode("Add")
	}
}

func TestBitshiftSwapAlwaysToggles(t *testing.T) {
	m := mustMutator(t, mutator.BitshiftBinaryOp)

	left := map[string]ast.Node{"ast_type": "BinOp", "node_id": json.Number("1"), "op": opNode("LShift")}
	res, err := m.Mutate(left, nil)
	if err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}
	if res.NewText != ">>" {
		t.Errorf("LShift should swap to >>, got %q", res.NewText)
	}

	right := map[string]ast.Node{"ast_type": "BinOp", "node_id": json.Number("1"), "op": opNode("RShift")}
	res, err = m.Mutate(right, nil)
	if err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}
	if res.NewText != "<<" {
		t.Errorf("RShift should swap to <<, got %q", res.NewText)
	}
}

func TestSwapOperatorArgumentsSwapsCompareOperands(t *testing.T) {
	m := mustMutator(t, mutator.SwapOperatorArguments)
	a := map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("2"), "id": "a"}
	b := map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("3"), "id": "b"}
	n := map[string]ast.Node{
		"ast_type": "Compare", "node_id": json.Number("1"), "op": opNode("Lt"),
		"left": a, "right": b,
	}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected Lt to be eligible for SwapOperatorArguments")
	}
	if _, err := m.Mutate(n, nil); err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}

	if id, _ := ast.Str(ast.Field(ast.Field(n, "left"), "id")); id != "b" {
		t.Errorf("left.id = %q, want b (swapped)", id)
	}
	if id, _ := ast.Str(ast.Field(ast.Field(n, "right"), "id")); id != "a" {
		t.Errorf("right.id = %q, want a (swapped)", id)
	}
}

func TestUnaryOpReplacesNodeWithItsOperandPreservingID(t *testing.T) {
	m := mustMutator(t, mutator.UnaryOp)
	operand := map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("2"), "id": "x"}
	n := map[string]ast.Node{"ast_type": "UnaryOp", "node_id": json.Number("1"), "op": opNode("Not"), "operand": operand}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected a UnaryOp with an operand to be mutable")
	}

	if _, err := m.Mutate(n, nil); err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}

	typ, _ := ast.TypeOf(n, ast.Vyper)
	if typ != "Name" {
		t.Errorf("node type after Mutate = %q, want Name (replaced by operand)", typ)
	}
	id, _ := ast.IDOf(n, ast.Vyper)
	if id != 1 {
		t.Errorf("node id after Mutate = %d, want 1 (identity preserved)", id)
	}
}

func TestDeleteStatementInsertsPassWhenBodyHasNoReturnAnnotation(t *testing.T) {
	m := mustMutator(t, mutator.DeleteStatement)
	only := map[string]ast.Node{"ast_type": "Pass", "node_id": json.Number("2")}
	n := map[string]ast.Node{
		"ast_type": "FunctionDef", "node_id": json.Number("1"),
		"body": []ast.Node{only},
	}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected a non-empty FunctionDef body to be mutable")
	}

	res, err := m.Mutate(n, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}
	if res.RemovedNode == nil {
		t.Fatal("expected RemovedNode to carry the severed statement")
	}

	body := ast.Seq(ast.Field(n, "body"))
	if len(body) != 1 {
		t.Fatalf("expected exactly one replacement statement, got %d", len(body))
	}
	typ, _ := ast.TypeOf(body[0], ast.Vyper)
	if typ != "Pass" {
		t.Errorf("replacement type = %q, want Pass", typ)
	}
}

func TestDeleteStatementInsertsTypedReturnWhenFunctionReturnsAValue(t *testing.T) {
	m := mustMutator(t, mutator.DeleteStatement)
	only := map[string]ast.Node{"ast_type": "Pass", "node_id": json.Number("2")}
	n := map[string]ast.Node{
		"ast_type": "FunctionDef", "node_id": json.Number("1"),
		"body":    []ast.Node{only},
		"returns": map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("3"), "id": "uint256"},
	}

	if _, err := m.Mutate(n, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}

	body := ast.Seq(ast.Field(n, "body"))
	if len(body) != 1 {
		t.Fatalf("expected exactly one replacement statement, got %d", len(body))
	}
	typ, _ := ast.TypeOf(body[0], ast.Vyper)
	if typ != "Return" {
		t.Errorf("replacement type = %q, want Return", typ)
	}
	val := ast.Field(body[0], "value")
	valType, _ := ast.TypeOf(val, ast.Vyper)
	if valType != "Int" {
		t.Errorf("return value type = %q, want Int for a uint256 return annotation", valType)
	}
}
