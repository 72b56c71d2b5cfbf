package comment_test

import (
	"encoding/json"
	"testing"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/comment"
	"github.com/go-mutagen/mutagen/internal/traverse"
)

func tree() ast.Node {
	return map[string]ast.Node{
		"nodeType": "Block",
		"id":       json.Number("1"),
		"statements": []ast.Node{
			map[string]ast.Node{"nodeType": "Literal", "id": json.Number("2"), "value": "1"},
			map[string]ast.Node{"nodeType": "Literal", "id": json.Number("3"), "value": "2"},
		},
	}
}

func TestInsertSplicesBeforeTargetInEnclosingSequence(t *testing.T) {
	root := tree()
	pv := traverse.NewPathVisitor(ast.Solidity)
	pv.Build(root)

	comment.Insert(ast.Solidity, root, pv.Paths, 3, "changed 2 to mutated")

	stmts := ast.Seq(ast.Field(root, "statements"))
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements after insertion, got %d", len(stmts))
	}

	typ, _ := ast.TypeOf(stmts[1], ast.Solidity)
	if typ != "Comment" {
		t.Fatalf("statement at index 1 = %q, want Comment", typ)
	}
	text, _ := ast.Str(ast.Field(stmts[1], "text"))
	if text != "changed 2 to mutated" {
		t.Errorf("comment text = %q, want %q", text, "changed 2 to mutated")
	}

	targetType, _ := ast.TypeOf(stmts[2], ast.Solidity)
	if targetType != "Literal" {
		t.Errorf("statement at index 2 = %q, want Literal (the original target, now shifted)", targetType)
	}

	id, _ := ast.IDOf(stmts[1], ast.Solidity)
	if id < ast.SyntheticIDBase {
		t.Errorf("inserted comment id %d should be drawn from the synthetic range", id)
	}
}

func TestInsertIsNoOpForUnknownNodeID(t *testing.T) {
	root := tree()
	pv := traverse.NewPathVisitor(ast.Solidity)
	pv.Build(root)

	comment.Insert(ast.Solidity, root, pv.Paths, 999, "should not appear")

	stmts := ast.Seq(ast.Field(root, "statements"))
	if len(stmts) != 2 {
		t.Errorf("expected no change for an unknown node id, got %d statements", len(stmts))
	}
}

func TestInsertFallsBackToDocumentationFieldWithNoSequenceAncestor(t *testing.T) {
	root := map[string]ast.Node{
		"nodeType": "VariableDeclaration",
		"id":       json.Number("1"),
		"typeName": map[string]ast.Node{"nodeType": "ElementaryTypeName", "id": json.Number("2")},
	}

	pv := traverse.NewPathVisitor(ast.Solidity)
	pv.Build(root)

	comment.Insert(ast.Solidity, root, pv.Paths, 2, "fallback comment")

	doc := ast.Field(ast.Field(root, "typeName"), "documentation")
	typ, _ := ast.TypeOf(doc, ast.Solidity)
	if typ != "Comment" {
		t.Fatalf("documentation field type = %q, want Comment", typ)
	}
}
