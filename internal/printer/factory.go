package printer

import "github.com/go-mutagen/mutagen/internal/ast"

// Settings carries the printer-context flags spec §4.6 requires be threaded
// explicitly down the recursion rather than held in a package global:
// whether to parenthesize a tuple in the current position, whether an
// expression statement should end with a semicolon, whether the current
// function sits inside an interface declaration, and whether non-default
// state mutability should be written. Vyper printers only ever read
// ParenthesizeTuple and Semicolon; the other two are Solidity-only.
type Settings struct {
	ParenthesizeTuple  bool
	Semicolon          bool
	InInterface        bool
	WriteMutability    bool
}

// NodePrinter is the three-hook contract spec §4.6 assigns to every
// printer: OnEntry/OnExit bracket bookkeeping (typically indent changes),
// PrintNode does the actual token emission and recurses into children by
// calling back into the Factory.
type NodePrinter interface {
	OnEntry(pp *PrettyPrinter, n ast.Node, s Settings)
	PrintNode(f *Factory, pp *PrettyPrinter, n ast.Node, s Settings)
	OnExit(pp *PrettyPrinter, n ast.Node, s Settings)
}

// Factory is a per-language dispatch table from node-type string to
// NodePrinter, per spec §4.6 "Pretty-printer factory and per-node
// printers".
type Factory struct {
	lang  ast.Lang
	table map[string]NodePrinter
	def   NodePrinter
}

// NewFactory builds a Factory for lang, dispatching via table and falling
// back to def for any node type table doesn't name.
func NewFactory(lang ast.Lang, table map[string]NodePrinter, def NodePrinter) *Factory {
	return &Factory{lang: lang, table: table, def: def}
}

// Print runs the three-hook contract for n, looking up its printer by
// type tag.
func (f *Factory) Print(pp *PrettyPrinter, n ast.Node, s Settings) {
	if n == nil {
		return
	}
	typ, _ := ast.TypeOf(n, f.lang)
	np, ok := f.table[typ]
	if !ok {
		np = f.def
	}
	np.OnEntry(pp, n, s)
	np.PrintNode(f, pp, n, s)
	np.OnExit(pp, n, s)
}
