// Package vyper is the Language-V NodePrinterFactory dispatch table (spec
// §4.6), grounded on metamorph_lib/src/vyper/pretty_printer.rs and
// mutagenyx_lib/src/vyper/pretty_printer.rs.
package vyper

import (
	"fmt"
	"strings"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/printer"
)

// New builds the Vyper printer.Factory.
func New() *printer.Factory {
	table := map[string]printer.NodePrinter{
		"Module":        module{},
		"FunctionDef":   functionDef{},
		"arg":           arg{},
		"arguments":     arguments{},
		"If":            ifStmt{},
		"For":           forStmt{},
		"Return":        returnStmt{},
		"Pass":          passStmt{},
		"Expr":          exprStmt{},
		"Assign":        assign{},
		"AnnAssign":     annAssign{},
		"AugAssign":     augAssign{},
		"BinOp":         binOp{},
		"BoolOp":        boolOp{},
		"Compare":       compare{},
		"UnaryOp":       unaryOp{},
		"Call":          call{},
		"Attribute":     attribute{},
		"Subscript":     subscript{},
		"Name":          name{},
		"NameConstant":  nameConstant{},
		"Int":           intLit{},
		"Decimal":       decimalLit{},
		"Str":           strLit{},
		"Tuple":         tuple{},
		"List":          list{},
		"Comment":       comment{},
	}

	return printer.NewFactory(ast.Vyper, table, fallback{})
}

type fallback struct{}

func (fallback) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (fallback) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (fallback) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	typ, _ := ast.TypeOf(n, ast.Vyper)
	pp.WriteToken("# unprinted:" + typ)
}

type module struct{}

func (module) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (module) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (module) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	for _, c := range ast.Seq(ast.Field(n, "body")) {
		f.Print(pp, c, s)
		pp.WriteNewline()
	}
}

type functionDef struct{}

func (functionDef) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (functionDef) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (functionDef) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	name, _ := ast.Str(ast.Field(n, "name"))
	pp.WriteToken("def")
	pp.WriteSpace()
	pp.WriteToken(name)
	pp.WriteToken("(")
	f.Print(pp, ast.Field(n, "args"), s)
	pp.WriteToken(")")
	if ret := ast.Field(n, "returns"); ret != nil {
		pp.WriteSpace()
		pp.WriteToken("->")
		pp.WriteSpace()
		f.Print(pp, ret, s)
	}
	pp.WriteToken(":")
	pp.WriteNewline()
	pp.IncreaseIndent(1)
	for _, c := range ast.Seq(ast.Field(n, "body")) {
		pp.WriteIndent()
		f.Print(pp, c, s)
		pp.WriteNewline()
	}
	pp.DecreaseIndent(1)
}

type arguments struct{}

func (arguments) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (arguments) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (arguments) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	args := ast.Seq(ast.Field(n, "args"))
	for i, a := range args {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, a, s)
	}
}

type arg struct{}

func (arg) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (arg) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (arg) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	argName, _ := ast.Str(ast.Field(n, "arg"))
	pp.WriteToken(argName)
	if ann := ast.Field(n, "annotation"); ann != nil {
		pp.WriteToken(":")
		pp.WriteSpace()
		f.Print(pp, ann, s)
	}
}

type ifStmt struct{}

func (ifStmt) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (ifStmt) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (ifStmt) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("if")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "test"), s)
	pp.WriteToken(":")
	pp.WriteNewline()
	pp.IncreaseIndent(1)
	for _, c := range ast.Seq(ast.Field(n, "body")) {
		pp.WriteIndent()
		f.Print(pp, c, s)
		pp.WriteNewline()
	}
	pp.DecreaseIndent(1)

	if orelse := ast.Seq(ast.Field(n, "orelse")); len(orelse) > 0 {
		pp.WriteIndent()
		pp.WriteToken("else")
		pp.WriteToken(":")
		pp.WriteNewline()
		pp.IncreaseIndent(1)
		for _, c := range orelse {
			pp.WriteIndent()
			f.Print(pp, c, s)
			pp.WriteNewline()
		}
		pp.DecreaseIndent(1)
	}
}

type forStmt struct{}

func (forStmt) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (forStmt) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (forStmt) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("for")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "target"), s)
	pp.WriteSpace()
	pp.WriteToken("in")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "iter"), s)
	pp.WriteToken(":")
	pp.WriteNewline()
	pp.IncreaseIndent(1)
	for _, c := range ast.Seq(ast.Field(n, "body")) {
		pp.WriteIndent()
		f.Print(pp, c, s)
		pp.WriteNewline()
	}
	pp.DecreaseIndent(1)
}

type returnStmt struct{}

func (returnStmt) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (returnStmt) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (returnStmt) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("return")
	if v := ast.Field(n, "value"); v != nil {
		pp.WriteSpace()
		f.Print(pp, v, s)
	}
}

type passStmt struct{}

func (passStmt) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (passStmt) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (passStmt) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, _ ast.Node, _ printer.Settings) {
	pp.WriteToken("pass")
}

type exprStmt struct{}

func (exprStmt) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (exprStmt) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (exprStmt) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "value"), s)
}

type assign struct{}

func (assign) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (assign) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (assign) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	targets := ast.Seq(ast.Field(n, "targets"))
	for i, t := range targets {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, t, s)
	}
	pp.WriteSpace()
	pp.WriteToken("=")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "value"), s)
}

type annAssign struct{}

func (annAssign) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (annAssign) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (annAssign) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "target"), s)
	pp.WriteToken(":")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "annotation"), s)
	if v := ast.Field(n, "value"); v != nil {
		pp.WriteSpace()
		pp.WriteToken("=")
		pp.WriteSpace()
		f.Print(pp, v, s)
	}
}

type augAssign struct{}

func (augAssign) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (augAssign) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (augAssign) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "target"), s)
	pp.WriteSpace()
	op, _ := opName(ast.Field(n, "op"))
	pp.WriteToken(pyToSymbol[op] + "=")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "value"), s)
}

func opName(opNode ast.Node) (string, bool) {
	return ast.Str(ast.Field(opNode, "ast_type"))
}

// pyToSymbol maps a Python-ast operator type name to its Vyper source
// spelling, mirroring internal/mutator/vyper's opmap (duplicated here since
// the printer has no reason to depend on the mutator package).
var pyToSymbol = map[string]string{
	"Add": "+", "Sub": "-", "Mult": "*", "Div": "/", "Mod": "%", "Pow": "**",
	"And": "and", "Or": "or",
	"BitAnd": "&", "BitOr": "|", "BitXor": "^",
	"LShift": "<<", "RShift": ">>",
	"Eq": "==", "NotEq": "!=", "Lt": "<", "Gt": ">", "LtE": "<=", "GtE": ">=",
}

type binOp struct{}

func (binOp) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (binOp) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (binOp) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	astType, _ := opName(ast.Field(n, "op"))
	sym := pyToSymbol[astType]
	pp.WriteToken("(")
	f.Print(pp, ast.Field(n, "left"), s)
	pp.WriteSpace()
	pp.WriteToken(sym)
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "right"), s)
	pp.WriteToken(")")
}

type boolOp struct{}

func (boolOp) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (boolOp) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (boolOp) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	astType, _ := opName(ast.Field(n, "op"))
	sym := pyToSymbol[astType]
	values := ast.Seq(ast.Field(n, "values"))
	pp.WriteToken("(")
	for i, v := range values {
		if i > 0 {
			pp.WriteSpace()
			pp.WriteToken(sym)
			pp.WriteSpace()
		}
		f.Print(pp, v, s)
	}
	pp.WriteToken(")")
}

type compare struct{}

func (compare) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (compare) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (compare) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	astType, _ := opName(ast.Field(n, "op"))
	sym := pyToSymbol[astType]
	pp.WriteToken("(")
	f.Print(pp, ast.Field(n, "left"), s)
	pp.WriteSpace()
	pp.WriteToken(sym)
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "right"), s)
	pp.WriteToken(")")
}

type unaryOp struct{}

func (unaryOp) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (unaryOp) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (unaryOp) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	astType, _ := opName(ast.Field(n, "op"))
	sym := unaryDisplay[astType]
	if sym == "" {
		sym = astType
	}
	pp.WriteToken(sym)
	if sym == "not" {
		pp.WriteSpace()
	}
	f.Print(pp, ast.Field(n, "operand"), s)
}

var unaryDisplay = map[string]string{"Not": "not", "USub": "-", "UAdd": "+", "Invert": "~"}

type call struct{}

func (call) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (call) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (call) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "func"), s)
	pp.WriteToken("(")
	for i, a := range ast.Seq(ast.Field(n, "args")) {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, a, s)
	}
	pp.WriteToken(")")
}

type attribute struct{}

func (attribute) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (attribute) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (attribute) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "value"), s)
	pp.WriteToken(".")
	attr, _ := ast.Str(ast.Field(n, "attr"))
	pp.WriteToken(attr)
}

type subscript struct{}

func (subscript) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (subscript) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (subscript) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "value"), s)
	pp.WriteToken("[")
	f.Print(pp, ast.Field(n, "slice"), s)
	pp.WriteToken("]")
}

type name struct{}

func (name) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (name) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (name) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	id, _ := ast.Str(ast.Field(n, "id"))
	pp.WriteToken(id)
}

type nameConstant struct{}

func (nameConstant) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (nameConstant) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (nameConstant) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	v := ast.Field(n, "value")
	switch b := v.(type) {
	case bool:
		if b {
			pp.WriteToken("True")
		} else {
			pp.WriteToken("False")
		}
	default:
		pp.WriteToken("None")
	}
}

type intLit struct{}

func (intLit) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (intLit) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (intLit) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	pp.WriteToken(numberText(ast.Field(n, "value")))
}

type decimalLit struct{}

func (decimalLit) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (decimalLit) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (decimalLit) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	pp.WriteToken(numberText(ast.Field(n, "value")))
}

func numberText(v ast.Node) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

type strLit struct{}

func (strLit) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (strLit) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (strLit) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	v, _ := ast.Str(ast.Field(n, "value"))
	pp.WriteString(v)
}

type tuple struct{}

func (tuple) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (tuple) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (tuple) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	elts := ast.Seq(ast.Field(n, "elts"))
	if s.ParenthesizeTuple {
		pp.WriteToken("(")
	}
	for i, e := range elts {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, e, s)
	}
	if s.ParenthesizeTuple {
		pp.WriteToken(")")
	}
}

type list struct{}

func (list) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (list) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (list) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("[")
	for i, e := range ast.Seq(ast.Field(n, "elts")) {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, e, s)
	}
	pp.WriteToken("]")
}

// comment prints a synthetic Comment node (injected by the comment-insertion
// pass, spec §4.5) as a Vyper line comment.
type comment struct{}

func (comment) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (comment) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (comment) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	text, _ := ast.Str(ast.Field(n, "text"))
	pp.WriteToken("# " + strings.ReplaceAll(text, "\n", " "))
}
