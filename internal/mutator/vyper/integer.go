package vyper

import (
	"encoding/json"
	"math/rand"
	"strconv"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// integer nudges an Int node's value by +1, -1, or replaces it with a fresh
// uniform 64-bit value, per spec §4.3. Grounded on metamorph_lib's
// IntegerMutator.
type integer struct{}

func (integer) Kind() mutator.Kind { return mutator.Integer }

func (integer) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)

	return ok && t == "Int"
}

func (integer) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	old := numberText(obj["value"])
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
	obj["value"] = json.Number(text)
	id, _ := ast.IDOf(n, ast.Vyper)

	return mutator.Result{
		Kind: mutator.Integer, MutatedNodeID: id,
		OldText: old, NewText: text,
	}, nil
}

func numberText(v ast.Node) string {
	switch x := v.(type) {
	case json.Number:
		return x.String()
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}
