package solidity

import (
	"math/big"
	"math/rand"
	"strconv"
	"strings"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
)

// assignment replaces an Assignment's right-hand side with a fresh literal
// of the kind its left-hand side's type string names, per spec §4.3. Kind
// detection is the prefix of typeDescriptions.typeString: "int", "uin",
// "boo" — Language-S has no dynamic-kind fallback, unlike Language-V,
// because its AST always carries a type string. Grounded on gambit_lib's
// AssignmentMutator.
type assignment struct{}

func (assignment) Kind() mutator.Kind { return mutator.Assignment }

func (assignment) IsMutableNode(n ast.Node, _ *rand.Rand) bool {
	if typ, ok := ast.TypeOf(n, ast.Solidity); !ok || typ != "Assignment" {
		return false
	}
	_, ok := lhsKind(n)

	return ok
}

// lhsKind reads the Assignment node's typeDescriptions.typeString and
// classifies it as "int", "uint" or "bool".
func lhsKind(n ast.Node) (string, bool) {
	ts, ok := ast.Str(ast.Field(ast.Field(n, "typeDescriptions"), "typeString"))
	if !ok {
		return "", false
	}

	return classifyTypeString(ts)
}

// classifyTypeString reduces a Solidity typeDescriptions.typeString to
// "int", "uint" or "bool" by its leading characters; also used by
// DeleteStatement to classify an enclosing function's return type.
func classifyTypeString(ts string) (string, bool) {
	if len(ts) < 3 {
		return "", false
	}
	switch ts[:3] {
	case "int":
		return "int", true
	case "uin":
		return "uint", true
	case "boo":
		return "bool", true
	default:
		return "", false
	}
}

func (assignment) Mutate(n ast.Node, rng *rand.Rand) (mutator.Result, error) {
	obj := ast.Obj(n)
	kind, _ := lhsKind(n)
	ts, _ := ast.Str(ast.Field(ast.Field(n, "typeDescriptions"), "typeString"))
	bits := bitWidth(ts, kind)

	var text, literalKind string
	switch kind {
	case "bool":
		literalKind = "bool"
		if rng.Intn(2) == 0 {
			text = "true"
		} else {
			text = "false"
		}
	case "int":
		literalKind = "number"
		text = randomSigned(rng, bits).String()
	case "uint":
		literalKind = "number"
		text = randomUnsigned(rng, bits).String()
	}

	newLit := ast.NewObj(ast.Solidity, "Literal", map[string]ast.Node{
		"kind":  literalKind,
		"value": text,
		"typeDescriptions": map[string]ast.Node{
			"typeString": ts,
		},
	})
	old, _ := ast.TypeOf(obj["rightHandSide"], ast.Solidity)
	obj["rightHandSide"] = newLit
	id, _ := ast.IDOf(n, ast.Solidity)

	return mutator.Result{
		Kind: mutator.Assignment, MutatedNodeID: id,
		OldText: old, NewText: text,
	}, nil
}

// bitWidth parses the trailing digits of a Solidity elementary type name
// (e.g. "uint256", "int8"), defaulting to 256 when absent (Solidity's
// un-suffixed "int"/"uint" alias "int256"/"uint256"), clamped to 128 per
// spec §4.3.
func bitWidth(typeString, kind string) int {
	prefix := "int"
	if kind == "uint" {
		prefix = "uint"
	}
	digits := strings.TrimPrefix(typeString, prefix)
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		n = 256
	}
	if n > 128 {
		n = 128
	}

	return n
}

func randomSigned(rng *rand.Rand, bits int) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	width := new(big.Int).Lsh(half, 1)
	v := new(big.Int).Rand(rng, width)

	return v.Sub(v, half)
}

func randomUnsigned(rng *rand.Rand, bits int) *big.Int {
	width := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return new(big.Int).Rand(rng, width)
}
