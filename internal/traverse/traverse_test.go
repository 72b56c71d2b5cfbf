package traverse_test

import (
	"testing"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/traverse"
)

type recordingVisitor struct {
	order []string
}

func (r *recordingVisitor) OnEnter(n ast.Node) {
	if typ, ok := ast.TypeOf(n, ast.Solidity); ok {
		r.order = append(r.order, "enter:"+typ)
	}
}
func (r *recordingVisitor) Visit(ast.Node)             {}
func (*recordingVisitor) VisitChildren(ast.Node) bool  { return true }
func (r *recordingVisitor) OnExit(n ast.Node) {
	if typ, ok := ast.TypeOf(n, ast.Solidity); ok {
		r.order = append(r.order, "exit:"+typ)
	}
}

func TestWalkIsDepthFirstAndDeterministic(t *testing.T) {
	tree := map[string]ast.Node{
		"nodeType": "Block",
		"statements": []ast.Node{
			map[string]ast.Node{"nodeType": "A"},
			map[string]ast.Node{"nodeType": "B"},
		},
	}

	for i := 0; i < 5; i++ {
		v := &recordingVisitor{}
		traverse.New().Walk(tree, v)

		want := []string{"enter:Block", "enter:A", "exit:A", "enter:B", "exit:B", "exit:Block"}
		if len(v.order) != len(want) {
			t.Fatalf("run %d: order = %v, want %v", i, v.order, want)
		}
		for j := range want {
			if v.order[j] != want[j] {
				t.Fatalf("run %d: order = %v, want %v", i, v.order, want)
			}
		}
	}
}

type pruningVisitor struct {
	visited []string
}

func (p *pruningVisitor) OnEnter(n ast.Node) {
	if typ, ok := ast.TypeOf(n, ast.Solidity); ok {
		p.visited = append(p.visited, typ)
	}
}
func (*pruningVisitor) Visit(ast.Node) {}
func (p *pruningVisitor) VisitChildren(n ast.Node) bool {
	typ, _ := ast.TypeOf(n, ast.Solidity)

	return typ != "Skip"
}
func (*pruningVisitor) OnExit(ast.Node) {}

func TestVisitChildrenFalsePrunesSubtree(t *testing.T) {
	tree := map[string]ast.Node{
		"nodeType": "Skip",
		"body":     []ast.Node{map[string]ast.Node{"nodeType": "Unreachable"}},
	}

	v := &pruningVisitor{}
	traverse.New().Walk(tree, v)

	if len(v.visited) != 1 || v.visited[0] != "Skip" {
		t.Errorf("visited = %v, want only [Skip]", v.visited)
	}
}
