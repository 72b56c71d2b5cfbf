// Package printer implements the token/column-accounting writer of spec
// §4.1 and the per-language dispatch tables built on it
// (internal/printer/solidity, internal/printer/vyper). There is no
// go/printer equivalent for Solidity/Vyper, so this is hand-rolled,
// grounded on hknutzen-spoc-parser/printer/printer.go's indent-tracked line
// builder and google-gapid/gapil/format/format.go's chained-writer markup
// approach (here, write_flowable_text's wrap-on-last-space rule).
package printer

import (
	"io"
	"strings"
)

const defaultTabWidth = 4

// PrettyPrinter is a token writer that tracks row/column/indent and wraps
// at a page width, per spec §4.1.
type PrettyPrinter struct {
	w io.Writer

	PageWidth int
	TabWidth  int
	MaxIndent int

	column int
	row    int
	indent int

	err error
}

// New builds a PrettyPrinter writing to w with the given page width.
// MaxIndent is page_width/tab_width - 1 per spec §3: the deepest indent that
// still leaves room for at least one token before the margin.
func New(w io.Writer, pageWidth int) *PrettyPrinter {
	return &PrettyPrinter{
		w: w, PageWidth: pageWidth, TabWidth: defaultTabWidth,
		MaxIndent: pageWidth/defaultTabWidth - 1, column: 1, row: 1,
	}
}

// Err returns the first I/O error WriteToken encountered, if any.
func (p *PrettyPrinter) Err() error { return p.err }

func (p *PrettyPrinter) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// WriteToken emits t atomically, wrapping to a new line first if it would
// overrun the page width — unless t itself is wider than the page, in
// which case it's emitted as-is (oversize tokens are never broken).
func (p *PrettyPrinter) WriteToken(t string) {
	if p.column+len(t) > p.PageWidth && len(t) <= p.PageWidth {
		p.WriteNewline()
		p.WriteIndent()
	}
	p.raw(t)
	p.column += len(t)
}

// WriteSpace emits one space, or wraps if already at the right margin.
func (p *PrettyPrinter) WriteSpace() {
	if p.column >= p.PageWidth {
		p.WriteNewline()
		p.WriteIndent()

		return
	}
	p.raw(" ")
	p.column++
}

// WriteNewline emits the platform newline and advances row, resetting
// column.
func (p *PrettyPrinter) WriteNewline() {
	p.raw("\n")
	p.row++
	p.column = 1
}

// WriteIndent emits indent*tab_width spaces.
func (p *PrettyPrinter) WriteIndent() {
	n := p.indent * p.TabWidth
	if n <= 0 {
		return
	}
	p.raw(strings.Repeat(" ", n))
	p.column += n
}

// WriteFlowableText writes s as prose that may wrap: every newline is
// collapsed to a single space, runs of spaces compressed, and the text is
// split on the last space inside the remaining column budget (never
// mid-word). After a wrap, continuation is emitted right after the
// newline+indent, before the next chunk.
func (p *PrettyPrinter) WriteFlowableText(s, continuation string) {
	collapsed := strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
	words := strings.Fields(collapsed)
	for i, word := range words {
		if i > 0 {
			if p.column+1+len(word) > p.PageWidth {
				p.WriteNewline()
				p.WriteIndent()
				p.raw(continuation)
				p.column += len(continuation)
			} else {
				p.WriteSpace()
			}
		}
		p.WriteToken(word)
	}
}

// WriteString surrounds s with double quotes and emits it as one token.
func (p *PrettyPrinter) WriteString(s string) {
	p.WriteToken("\"" + s + "\"")
}

// WriteTripleString surrounds s with triple double quotes and emits it as
// one token.
func (p *PrettyPrinter) WriteTripleString(s string) {
	p.WriteToken(`"""` + s + `"""`)
}

// IncreaseIndent increases the current indent level by n, saturating at
// MaxIndent.
func (p *PrettyPrinter) IncreaseIndent(n int) {
	p.indent += n
	if p.indent > p.MaxIndent {
		p.indent = p.MaxIndent
	}
}

// DecreaseIndent decreases the current indent level by n, saturating at 0.
func (p *PrettyPrinter) DecreaseIndent(n int) {
	p.indent -= n
	if p.indent < 0 {
		p.indent = 0
	}
}

// Row returns the current 1-based row.
func (p *PrettyPrinter) Row() int { return p.row }

// Column returns the current 1-based column.
func (p *PrettyPrinter) Column() int { return p.column }
