package vyper

import (
	"encoding/json"
	"math"
	"math/big"
	"math/rand"
	"strconv"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// floatBound is (2^167 - 1) / 10^10, the magnitude spec §4.3 gives for
// Vyper's decimal range.
var floatBound = math.Ldexp(1, 167) / 1e10

// assignment replaces an Assign node's value with a fresh literal of a kind
// chosen uniformly at random (int, uint, bool, float) since Language-V's
// AST carries no type annotation to infer a kind from, per spec §4.3.
// Grounded on metamorph_lib's AssignmentMutator.
type assignment struct{}

func (assignment) Kind() mutator.Kind { return mutator.Assignment }

func (assignment) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	t, ok := ast.TypeOf(n, ast.Vyper)

	return ok && t == "Assign"
}

func (assignment) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	id, _ := ast.IDOf(n, ast.Vyper)

	var replacement ast.Node
	var text string
	switch rng.Intn(4) {
	case 0:
		v := randomSigned128(rng)
		text = v.String()
		replacement = ast.NewObj(ast.Vyper, "Int", map[string]ast.Node{"value": json.Number(text)})
	case 1:
		v := randomUnsigned128(rng)
		text = v.String()
		replacement = ast.NewObj(ast.Vyper, "Int", map[string]ast.Node{"value": json.Number(text)})
	case 2:
		b := rng.Intn(2) == 1
		text = strconv.FormatBool(b)
		replacement = ast.NewObj(ast.Vyper, "NameConstant", map[string]ast.Node{"value": b})
	default:
		v := (rng.Float64()*2 - 1) * floatBound
		text = strconv.FormatFloat(v, 'f', -1, 64)
		replacement = ast.NewObj(ast.Vyper, "Decimal", map[string]ast.Node{"value": json.Number(text)})
	}
	obj["value"] = replacement

	return mutator.Result{
		Kind: mutator.Assignment, MutatedNodeID: id,
		NewText: text,
	}, nil
}

func randomSigned128(rng *rand.Rand) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), 127)
	width := new(big.Int).Lsh(half, 1)
	v := new(big.Int).Rand(rng, width)

	return v.Sub(v, half)
}

func randomUnsigned128(rng *rand.Rand) *big.Int {
	width := new(big.Int).Lsh(big.NewInt(1), 128)

	return new(big.Int).Rand(rng, width)
}
