// Package idmaker extracts a stable numeric id from an AST node (spec §2,
// component "IdMaker").
package idmaker

import "github.com/go-mutagen/mutagen/internal/ast"

// IDMaker extracts a node's language-appropriate stable id.
type IDMaker struct {
	Lang ast.Lang
}

// For builds an IDMaker for lang.
func For(lang ast.Lang) IDMaker {
	return IDMaker{Lang: lang}
}

// ID returns the node's id and true, or (0, false) if the node carries none.
func (m IDMaker) ID(n ast.Node) (int64, bool) {
	return ast.IDOf(n, m.Lang)
}
