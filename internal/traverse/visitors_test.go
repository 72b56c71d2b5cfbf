package traverse_test

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"testing"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
	"github.com/go-mutagen/mutagen/internal/namer"
	"github.com/go-mutagen/mutagen/internal/permission"
	"github.com/go-mutagen/mutagen/internal/traverse"
)

// literalBumper is a minimal mutator.Mutator: eligible on every Literal
// node, rewriting its "value" field to "mutated".
type literalBumper struct{}

func (literalBumper) Kind() mutator.Kind { return mutator.Integer }

func (literalBumper) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)

	return ok && typ == "Literal"
}

func (literalBumper) Mutate(n ast.Node, _ *rand.Rand) (mutator.Result, error) {
	m := ast.Obj(n)
	old, _ := ast.Str(m["value"])
	m["value"] = "mutated"
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{Kind: mutator.Integer, MutatedNodeID: id, OldText: old, NewText: "mutated"}, nil
}

func literalTree() ast.Node {
	return map[string]ast.Node{
		"nodeType": "Block",
		"id":       json.Number("1"),
		"statements": []ast.Node{
			map[string]ast.Node{"nodeType": "Literal", "id": json.Number("2"), "value": "1"},
			map[string]ast.Node{"nodeType": "Literal", "id": json.Number("3"), "value": "2"},
		},
	}
}

func TestCounterVisitorCountsEligibleNodes(t *testing.T) {
	perm := permission.New(permission.FromFunctionAllowlist(nil))
	cv := traverse.NewCounterVisitor(namer.Solidity{}, perm, []mutator.Mutator{literalBumper{}}, rand.New(rand.NewSource(1)))

	traverse.New().Walk(literalTree(), cv)

	if cv.Counts[mutator.Integer] != 2 {
		t.Errorf("Counts[Integer] = %d, want 2", cv.Counts[mutator.Integer])
	}
}

func TestMutationVisitorAppliesKthEligibleNode(t *testing.T) {
	perm := permission.New(permission.FromFunctionAllowlist(nil))
	tree := literalTree()

	mv := traverse.NewMutationVisitor(namer.Solidity{}, perm, literalBumper{}, 1, rand.New(rand.NewSource(1)))
	traverse.New().Walk(tree, mv)

	if !mv.Applied {
		t.Fatal("expected the mutation to apply")
	}
	if mv.Result.MutatedNodeID != 3 {
		t.Errorf("mutated node id = %d, want 3 (the second Literal)", mv.Result.MutatedNodeID)
	}

	stmts := ast.Seq(ast.Field(tree, "statements"))
	firstVal, _ := ast.Str(ast.Field(stmts[0], "value"))
	if firstVal != "1" {
		t.Errorf("first literal should be untouched, got value %q", firstVal)
	}
	secondVal, _ := ast.Str(ast.Field(stmts[1], "value"))
	if secondVal != "mutated" {
		t.Errorf("second literal should be mutated, got value %q", secondVal)
	}
}

func TestMutationVisitorOutOfRangeKDoesNothing(t *testing.T) {
	perm := permission.New(permission.FromFunctionAllowlist(nil))
	mv := traverse.NewMutationVisitor(namer.Solidity{}, perm, literalBumper{}, 5, rand.New(rand.NewSource(1)))

	traverse.New().Walk(literalTree(), mv)

	if mv.Applied {
		t.Error("expected no mutation when k exceeds the eligible count")
	}
}

func TestMutationVisitorCapturesBeforeAndAfterSnapshots(t *testing.T) {
	perm := permission.New(permission.FromFunctionAllowlist(nil))
	tree := literalTree()

	mv := traverse.NewMutationVisitor(namer.Solidity{}, perm, literalBumper{}, 0, rand.New(rand.NewSource(1)))
	traverse.New().Walk(tree, mv)

	if !mv.Applied {
		t.Fatal("expected the mutation to apply")
	}

	beforeVal, _ := ast.Str(ast.Field(mv.Before, "value"))
	if beforeVal != "1" {
		t.Errorf("Before snapshot value = %q, want the pre-mutation value %q", beforeVal, "1")
	}
	afterVal, _ := ast.Str(ast.Field(mv.After, "value"))
	if afterVal != "mutated" {
		t.Errorf("After value = %q, want the post-mutation value %q", afterVal, "mutated")
	}
	// Before must be an independent clone: mutating the live node afterward
	// must not retroactively change what Before reports.
	ast.Obj(mv.After)["value"] = "changed-again"
	beforeVal2, _ := ast.Str(ast.Field(mv.Before, "value"))
	if beforeVal2 != "1" {
		t.Errorf("Before snapshot mutated after the fact, got %q, want %q", beforeVal2, "1")
	}
}

// functionAwareDeleter is a minimal mutator.FunctionAware: eligible on every
// Block, and when called via MutateInFunction it records the enclosing
// function's id (or "-1" when none) in NewText instead of mutating
// anything, so the test can assert what ancestor context it was handed.
type functionAwareDeleter struct{}

func (functionAwareDeleter) Kind() mutator.Kind { return mutator.DeleteStatement }

func (functionAwareDeleter) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)

	return ok && typ == "Block"
}

func (d functionAwareDeleter) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	return d.MutateInFunction(n, nil, rng)
}

func (functionAwareDeleter) MutateInFunction(n, fn ast.Node, _ *rand.Rand) (mutator.Result, error) {
	id, _ := ast.IDOf(n, ast.Solidity)
	fnID := int64(-1)
	if fn != nil {
		fnID, _ = ast.IDOf(fn, ast.Solidity)
	}

	return mutator.Result{Kind: mutator.DeleteStatement, MutatedNodeID: id, NewText: strconv.FormatInt(fnID, 10)}, nil
}

func TestMutationVisitorDispatchesFunctionAwareMutatorsWithEnclosingFunction(t *testing.T) {
	perm := permission.New(permission.FromFunctionAllowlist(nil))
	tree := map[string]ast.Node{
		"nodeType": "FunctionDefinition",
		"id":       json.Number("1"),
		"name":     "f",
		"body": map[string]ast.Node{
			"nodeType":   "Block",
			"id":         json.Number("2"),
			"statements": []ast.Node{},
		},
	}

	mv := traverse.NewMutationVisitor(namer.Solidity{}, perm, functionAwareDeleter{}, 0, rand.New(rand.NewSource(1)))
	traverse.New().Walk(tree, mv)

	if !mv.Applied {
		t.Fatal("expected the mutation to apply")
	}
	if mv.Result.MutatedNodeID != 2 {
		t.Errorf("mutated node id = %d, want 2 (the Block)", mv.Result.MutatedNodeID)
	}
	if mv.Result.NewText != "1" {
		t.Errorf("enclosing function id recorded = %q, want %q (the FunctionDefinition)", mv.Result.NewText, "1")
	}
}

func TestMutationVisitorRespectsFunctionAllowlist(t *testing.T) {
	rules := permission.FromFunctionAllowlist([]string{"onlyThis"})
	perm := permission.New(rules)

	tree := map[string]ast.Node{
		"nodeType": "FunctionDefinition",
		"id":       json.Number("1"),
		"name":     "other",
		"body": map[string]ast.Node{
			"nodeType": "Literal", "id": json.Number("2"), "value": "1",
		},
	}

	mv := traverse.NewMutationVisitor(namer.Solidity{}, perm, literalBumper{}, 0, rand.New(rand.NewSource(1)))
	traverse.New().Walk(tree, mv)

	if mv.Applied {
		t.Error("a function excluded by the allow-list must never be mutated")
	}
}
