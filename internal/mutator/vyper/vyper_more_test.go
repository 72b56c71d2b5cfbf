package vyper_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

func TestFunctionSwapArgumentsSwapsTwoDistinctArgs(t *testing.T) {
	m := mustMutator(t, mutator.FunctionSwapArguments)
	a := map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("2"), "id": "a"}
	b := map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("3"), "id": "b"}
	n := map[string]ast.Node{
		"ast_type": "Call", "node_id": json.Number("1"),
		"args": []ast.Node{a, b},
	}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected a two-arg Call to be mutable")
	}
	if _, err := m.Mutate(n, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}

	args := ast.Seq(ast.Field(n, "args"))
	n0, _ := ast.Str(ast.Field(args[0], "id"))
	n1, _ := ast.Str(ast.Field(args[1], "id"))
	if n0 != "b" || n1 != "a" {
		t.Errorf("args = [%q, %q], want [b, a] (swapped)", n0, n1)
	}
}

func TestFunctionSwapArgumentsIsNotMutableWithFewerThanTwoArgs(t *testing.T) {
	m := mustMutator(t, mutator.FunctionSwapArguments)
	n := map[string]ast.Node{
		"ast_type": "Call", "node_id": json.Number("1"),
		"args": []ast.Node{map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("2"), "id": "a"}},
	}

	if m.IsMutableNode(n, nil) {
		t.Error("expected a one-arg Call to be ineligible for FunctionSwapArguments")
	}
}

func TestIfStatementReplacesTestWithTrueFalseOrNegation(t *testing.T) {
	m := mustMutator(t, mutator.IfStatement)
	test := map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("2"), "id": "ok"}
	n := map[string]ast.Node{"ast_type": "If", "node_id": json.Number("1"), "test": test}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected an If with a test to be mutable")
	}

	seenTypes := map[string]bool{}
	for seed := int64(0); seed < 30; seed++ {
		n["test"] = test
		if _, err := m.Mutate(n, rand.New(rand.NewSource(seed))); err != nil {
			t.Fatalf("Mutate: unexpected error: %s", err)
		}
		typ, _ := ast.TypeOf(ast.Field(n, "test"), ast.Vyper)
		seenTypes[typ] = true
	}

	if !seenTypes["NameConstant"] {
		t.Error("expected at least one run to replace test with a NameConstant")
	}
	if !seenTypes["UnaryOp"] {
		t.Error("expected at least one run to replace test with a negation")
	}
}

func TestAssignmentReplacesValueWithAFreshLiteral(t *testing.T) {
	m := mustMutator(t, mutator.Assignment)
	n := map[string]ast.Node{
		"ast_type": "Assign", "node_id": json.Number("1"),
		"value": map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("2"), "id": "x"},
	}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected an Assign to be mutable")
	}

	seenTypes := map[string]bool{}
	for seed := int64(0); seed < 20; seed++ {
		if _, err := m.Mutate(n, rand.New(rand.NewSource(seed))); err != nil {
			t.Fatalf("Mutate: unexpected error: %s", err)
		}
		typ, _ := ast.TypeOf(ast.Field(n, "value"), ast.Vyper)
		seenTypes[typ] = true
	}

	if len(seenTypes) == 0 {
		t.Fatal("expected value to be replaced with some literal type")
	}
	for typ := range seenTypes {
		switch typ {
		case "Int", "NameConstant", "Decimal":
		default:
			t.Errorf("unexpected replacement type %q", typ)
		}
	}
}

func TestFunctionCallReplacesCallWithANonLiteralArgPreservingID(t *testing.T) {
	m := mustMutator(t, mutator.FunctionCall)
	arg := map[string]ast.Node{"ast_type": "Name", "node_id": json.Number("2"), "id": "x"}
	n := map[string]ast.Node{
		"ast_type": "Call", "node_id": json.Number("1"),
		"args": []ast.Node{arg},
	}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected a Call with a non-literal arg to be mutable")
	}
	res, err := m.Mutate(n, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}
	if res.RemovedNode == nil {
		t.Fatal("expected RemovedNode to carry the severed Call")
	}

	typ, _ := ast.TypeOf(n, ast.Vyper)
	if typ != "Name" {
		t.Fatalf("node type after Mutate = %q, want Name (replaced by argument)", typ)
	}
	id, _ := ast.IDOf(n, ast.Vyper)
	if id != 1 {
		t.Errorf("node id after Mutate = %d, want 1 (identity preserved)", id)
	}
}

func TestFunctionCallIsNotMutableWhenAllArgsAreLiterals(t *testing.T) {
	m := mustMutator(t, mutator.FunctionCall)
	n := map[string]ast.Node{
		"ast_type": "Call", "node_id": json.Number("1"),
		"args": []ast.Node{map[string]ast.Node{"ast_type": "Int", "node_id": json.Number("2"), "value": json.Number("1")}},
	}

	if m.IsMutableNode(n, nil) {
		t.Error("expected an all-literal-arg Call to be ineligible for FunctionCall")
	}
}

func TestLinesSwapSwapsTwoNonReturnBodyElements(t *testing.T) {
	m := mustMutator(t, mutator.LinesSwap)
	a := map[string]ast.Node{"ast_type": "Pass", "node_id": json.Number("2")}
	b := map[string]ast.Node{"ast_type": "Pass", "node_id": json.Number("3")}
	ret := map[string]ast.Node{"ast_type": "Return", "node_id": json.Number("4")}
	n := map[string]ast.Node{
		"ast_type": "FunctionDef", "node_id": json.Number("1"),
		"body": []ast.Node{a, b, ret},
	}

	if !m.IsMutableNode(n, nil) {
		t.Fatal("expected a FunctionDef with two non-Return body elements to be mutable")
	}
	if _, err := m.Mutate(n, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Mutate: unexpected error: %s", err)
	}

	body := ast.Seq(ast.Field(n, "body"))
	lastTyp, _ := ast.TypeOf(body[2], ast.Vyper)
	if lastTyp != "Return" {
		t.Errorf("Return statement moved from its slot, got %q at index 2", lastTyp)
	}
}

func TestLinesSwapIsNotMutableWithFewerThanTwoNonReturnElements(t *testing.T) {
	m := mustMutator(t, mutator.LinesSwap)
	a := map[string]ast.Node{"ast_type": "Pass", "node_id": json.Number("2")}
	ret := map[string]ast.Node{"ast_type": "Return", "node_id": json.Number("3")}
	n := map[string]ast.Node{
		"ast_type": "FunctionDef", "node_id": json.Number("1"),
		"body": []ast.Node{a, ret},
	}

	if m.IsMutableNode(n, nil) {
		t.Error("expected a body with only one non-Return element to be ineligible for LinesSwap")
	}
}
