// Package namer extracts a display name from an AST node for permission
// matching (spec §2, component "Namer").
package namer

import "github.com/go-mutagen/mutagen/internal/ast"

// Namer extracts the name used to match a node against a function
// allow-list, and reports whether the node carries one at all (only
// function-like nodes do).
type Namer interface {
	Name(n ast.Node) (string, bool)
}

// Solidity names FunctionDefinition nodes by their "name" field.
// Functions named "" (constructors, fallback, receive) report ok=false,
// since they can't be addressed by name. Free (file-level) functions are
// named like any other function.
type Solidity struct{}

// Name implements Namer for Language-S.
func (Solidity) Name(n ast.Node) (string, bool) {
	typ, ok := ast.TypeOf(n, ast.Solidity)
	if !ok || typ != "FunctionDefinition" {
		return "", false
	}
	name, ok := ast.Str(ast.Field(n, "name"))
	if !ok || name == "" {
		return "", false
	}

	return name, true
}

// Vyper names FunctionDef nodes by their "name" field.
type Vyper struct{}

// Name implements Namer for Language-V.
func (Vyper) Name(n ast.Node) (string, bool) {
	typ, ok := ast.TypeOf(n, ast.Vyper)
	if !ok || typ != "FunctionDef" {
		return "", false
	}
	name, ok := ast.Str(ast.Field(n, "name"))
	if !ok || name == "" {
		return "", false
	}

	return name, true
}

// For returns the Namer for lang.
func For(lang ast.Lang) Namer {
	if lang == ast.Vyper {
		return Vyper{}
	}

	return Solidity{}
}
