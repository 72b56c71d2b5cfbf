package solidity

import (
	"math/rand"
	"strconv"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// integer nudges a numeric Literal by +1, -1, or replaces it with a fresh
// uniform 64-bit value, per spec §4.3.
type integer struct{}

func (integer) Kind() mutator.Kind { return mutator.Integer }

func (integer) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "Literal" {
		return false
	}
	k, _ := ast.Str(ast.Field(n, "kind"))

	return k == "number"
}

func (integer) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	old, _ := ast.Str(obj["value"])
	orig, err := strconv.ParseInt(old, 10, 64)
	var next int64
	if err != nil {
		next = rng.Int63()
	} else {
		switch rng.Intn(3) {
		case 0:
			next = orig + 1
		case 1:
			next = orig - 1
		default:
			next = rng.Int63()
		}
	}
	text := strconv.FormatInt(next, 10)
	obj["value"] = text
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.Integer, MutatedNodeID: id,
		OldText: old, NewText: text,
	}, nil
}
