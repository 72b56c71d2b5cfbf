package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/go-mutagen/mutagen/internal/ast"
)

func TestLangKeys(t *testing.T) {
	if ast.Solidity.IDKey() != "id" {
		t.Errorf("expected solidity id key to be 'id', got %q", ast.Solidity.IDKey())
	}
	if ast.Vyper.IDKey() != "node_id" {
		t.Errorf("expected vyper id key to be 'node_id', got %q", ast.Vyper.IDKey())
	}
	if ast.Solidity.TypeKey() != "nodeType" {
		t.Errorf("expected solidity type key to be 'nodeType', got %q", ast.Solidity.TypeKey())
	}
	if ast.Vyper.TypeKey() != "ast_type" {
		t.Errorf("expected vyper type key to be 'ast_type', got %q", ast.Vyper.TypeKey())
	}
}

func TestIDOf(t *testing.T) {
	testCases := []struct {
		name string
		node ast.Node
		lang ast.Lang
		want int64
		ok   bool
	}{
		{"solidity json.Number", map[string]ast.Node{"id": json.Number("42")}, ast.Solidity, 42, true},
		{"vyper json.Number", map[string]ast.Node{"node_id": json.Number("7")}, ast.Vyper, 7, true},
		{"missing key", map[string]ast.Node{"id": json.Number("42")}, ast.Vyper, 0, false},
		{"not a map", "not-a-node", ast.Solidity, 0, false},
		{"plain int", map[string]ast.Node{"id": 9}, ast.Solidity, 9, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ast.IDOf(tc.node, tc.lang)
			if ok != tc.ok || got != tc.want {
				t.Errorf("IDOf() = (%d, %v), want (%d, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestTypeOfAndField(t *testing.T) {
	n := map[string]ast.Node{
		"nodeType": "BinaryOperation",
		"operator": "+",
		"left":     map[string]ast.Node{"nodeType": "Identifier", "name": "a"},
	}

	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "BinaryOperation" {
		t.Fatalf("TypeOf() = (%q, %v), want (BinaryOperation, true)", typ, ok)
	}

	op, ok := ast.Str(ast.Field(n, "operator"))
	if !ok || op != "+" {
		t.Fatalf("Field(operator) = (%q, %v), want (+, true)", op, ok)
	}

	left := ast.Field(n, "left")
	leftType, _ := ast.TypeOf(left, ast.Solidity)
	if leftType != "Identifier" {
		t.Errorf("left child type = %q, want Identifier", leftType)
	}

	if ast.Field(n, "missing") != nil {
		t.Errorf("Field(missing) should be nil")
	}
}

func TestSeqPreservesOrder(t *testing.T) {
	n := ast.Node([]ast.Node{"a", "b", "c"})
	seq := ast.Seq(n)
	if len(seq) != 3 || seq[0] != "a" || seq[2] != "c" {
		t.Errorf("Seq() = %v, want [a b c]", seq)
	}

	if ast.Seq("not a sequence") != nil {
		t.Errorf("Seq() of a non-sequence should be nil")
	}
}

func TestNewObjAllocatesDistinctSyntheticIDs(t *testing.T) {
	a := ast.NewObj(ast.Solidity, "Comment", map[string]ast.Node{"text": "/* x */"})
	b := ast.NewObj(ast.Solidity, "Comment", map[string]ast.Node{"text": "/* y */"})

	idA, _ := ast.IDOf(a, ast.Solidity)
	idB, _ := ast.IDOf(b, ast.Solidity)

	if idA == idB {
		t.Errorf("expected distinct synthetic ids, both got %d", idA)
	}
	if idA < ast.SyntheticIDBase || idB < ast.SyntheticIDBase {
		t.Errorf("synthetic ids must be drawn from the reserved range starting at %d", ast.SyntheticIDBase)
	}

	typ, _ := ast.TypeOf(a, ast.Solidity)
	if typ != "Comment" {
		t.Errorf("NewObj type = %q, want Comment", typ)
	}
	if a["text"] != "/* x */" {
		t.Errorf("NewObj did not copy extra fields")
	}
}

func TestSuperASTLanguageAssertion(t *testing.T) {
	s := ast.SuperAST{Lang: ast.Solidity, Root: map[string]ast.Node{"nodeType": "SourceUnit"}}

	if _, err := s.AsVyper(); err == nil {
		t.Error("expected AsVyper to fail on a Solidity SuperAST")
	}

	root, err := s.AsSolidity()
	if err != nil {
		t.Fatalf("AsSolidity: unexpected error: %s", err)
	}
	if typ, _ := ast.TypeOf(root, ast.Solidity); typ != "SourceUnit" {
		t.Errorf("AsSolidity root type = %q, want SourceUnit", typ)
	}
}
