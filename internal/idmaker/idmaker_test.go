package idmaker_test

import (
	"encoding/json"
	"testing"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/idmaker"
)

func TestIDMaker(t *testing.T) {
	sol := idmaker.For(ast.Solidity)
	id, ok := sol.ID(map[string]ast.Node{"id": json.Number("5")})
	if !ok || id != 5 {
		t.Errorf("Solidity ID() = (%d, %v), want (5, true)", id, ok)
	}

	vy := idmaker.For(ast.Vyper)
	id, ok = vy.ID(map[string]ast.Node{"node_id": json.Number("9")})
	if !ok || id != 9 {
		t.Errorf("Vyper ID() = (%d, %v), want (9, true)", id, ok)
	}

	if _, ok := sol.ID(map[string]ast.Node{"node_id": json.Number("9")}); ok {
		t.Error("Solidity IDMaker should not read the Vyper id key")
	}
}
