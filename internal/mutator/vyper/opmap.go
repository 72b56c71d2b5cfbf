// Package vyper is the Language-V mutator catalog (spec §4.3, generic
// operators only — Vyper has no §4.3 "Language-S-only" operators). Node
// shapes are grounded on metamorph_lib/src/vyper/mutators.rs: "ast_type",
// "node_id", BinOp/BoolOp/Compare's nested "op":{"ast_type": <PyOpName>},
// UnaryOp, Int, Call, If, FunctionDef.
package vyper

import "github.com/go-mutagen/mutagen/internal/ast"

// pyToSymbol maps Python-ast-style operator node names (as Vyper's AST
// spells them) to the symbol spec §4.3 names operators by.
var pyToSymbol = map[string]string{
	"Add": "+", "Sub": "-", "Mult": "*", "Div": "/", "Mod": "%", "Pow": "**",
	"And": "and", "Or": "or",
	"BitAnd": "&", "BitOr": "|", "BitXor": "^",
	"LShift": "<<", "RShift": ">>",
	"Eq": "==", "NotEq": "!=", "Lt": "<", "Gt": ">", "LtE": "<=", "GtE": ">=",
}

var symbolToPy = reverseOf(pyToSymbol)

func reverseOf(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}

	return out
}

// opName reads the Python-ast operator name nested at n["op"]["ast_type"].
func opName(n ast.Node) (string, bool) {
	return ast.Str(ast.Field(ast.Field(n, "op"), "ast_type"))
}

func setOpName(n ast.Node, pyName string) {
	op := ast.Obj(ast.Field(n, "op"))
	op[ast.Vyper.TypeKey()] = pyName
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}

func distinctFrom(set []string, exclude string) []string {
	out := make([]string, 0, len(set))
	for _, s := range set {
		if s != exclude {
			out = append(out, s)
		}
	}

	return out
}

func indexOf(set []string, v string) int {
	for i, s := range set {
		if s == v {
			return i
		}
	}

	return -1
}
