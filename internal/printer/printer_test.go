package printer_test

import (
	"strings"
	"testing"

	"github.com/go-mutagen/mutagen/internal/printer"
)

func TestWriteTokenWrapsWhenItWouldOverrunPageWidth(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 10)

	pp.WriteToken("abcde")
	pp.WriteSpace()
	pp.WriteToken("fghij")

	want := "abcde \nfghij"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteTokenNeverBreaksAnOversizeToken(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 4)

	pp.WriteToken("muchlongerthanthepage")
	if buf.String() != "muchlongerthanthepage" {
		t.Errorf("output = %q, want the oversize token emitted as-is", buf.String())
	}
}

func TestIndentIsAppliedAfterWrap(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 10)
	pp.IncreaseIndent(1)

	pp.WriteToken("abcde")
	pp.WriteSpace()
	pp.WriteToken("fghij")

	want := "abcde \n    fghij"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewComputesMaxIndentFromPageWidthAndTabWidth(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 100)

	if pp.MaxIndent != 24 {
		t.Errorf("MaxIndent = %d, want 24 (100/4 - 1)", pp.MaxIndent)
	}
}

func TestIncreaseIndentSaturatesAtTheComputedMaxIndent(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 20) // MaxIndent = 20/4 - 1 = 4

	pp.IncreaseIndent(1000)
	pp.WriteNewline()
	pp.WriteIndent()
	pp.WriteToken("x")

	want := "\n" + strings.Repeat(" ", 4*4) + "x"
	if buf.String() != want {
		t.Errorf("output = %q, want indent saturated at MaxIndent=4 (%q)", buf.String(), want)
	}
}

func TestDecreaseIndentSaturatesAtZero(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 80)
	pp.DecreaseIndent(5)
	pp.WriteNewline()
	pp.WriteIndent()
	pp.WriteToken("x")

	if buf.String() != "\nx" {
		t.Errorf("output = %q, want no indent emitted", buf.String())
	}
}

func TestWriteFlowableTextCollapsesWhitespaceAndWrapsOnWordBoundary(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 12)

	pp.WriteFlowableText("one  two\nthree four", "// ")

	got := buf.String()
	if strings.Contains(got, "  ") {
		t.Errorf("output = %q, runs of whitespace should be collapsed", got)
	}
	if !strings.Contains(got, "// ") {
		t.Errorf("output = %q, want the continuation prefix after a wrap", got)
	}
}

func TestWriteStringAndTripleStringQuoteTheirContent(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 80)

	pp.WriteString("hi")
	pp.WriteSpace()
	pp.WriteTripleString("bye")

	want := `"hi" """bye"""`
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRowAndColumnAdvanceAcrossNewlines(t *testing.T) {
	var buf strings.Builder
	pp := printer.New(&buf, 80)

	pp.WriteToken("ab")
	if pp.Row() != 1 || pp.Column() != 3 {
		t.Errorf("Row/Column = %d/%d, want 1/3", pp.Row(), pp.Column())
	}

	pp.WriteNewline()
	if pp.Row() != 2 || pp.Column() != 1 {
		t.Errorf("Row/Column after newline = %d/%d, want 2/1", pp.Row(), pp.Column())
	}
}
