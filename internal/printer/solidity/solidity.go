// Package solidity is the Language-S NodePrinterFactory dispatch table
// (spec §4.6): one printer per solc compact-AST node type that can appear
// in a contract mutagen targets, plus the synthetic types mutators
// introduce (Comment, PlaceholderStatement, UncheckedBlock).
package solidity

import (
	"strings"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/printer"
)

// New builds the Solidity printer.Factory.
func New() *printer.Factory {
	table := map[string]printer.NodePrinter{
		"SourceUnit":               sourceUnit{},
		"PragmaDirective":          pragmaDirective{},
		"ImportDirective":          importDirective{},
		"ContractDefinition":       contractDefinition{},
		"FunctionDefinition":       functionDefinition{},
		"ModifierDefinition":       functionDefinition{},
		"VariableDeclaration":      variableDeclaration{},
		"VariableDeclarationStatement": variableDeclarationStatement{},
		"Block":                    block{},
		"UncheckedBlock":           uncheckedBlock{},
		"IfStatement":              ifStatement{},
		"ForStatement":             forStatement{},
		"WhileStatement":           whileStatement{},
		"Return":                   returnStmt{},
		"ExpressionStatement":      expressionStatement{},
		"PlaceholderStatement":     placeholderStatement{},
		"EmitStatement":            emitStatement{},
		"BinaryOperation":          binaryOperation{},
		"UnaryOperation":           unaryOperation{},
		"Assignment":               assignment{},
		"TupleExpression":          tupleExpression{},
		"FunctionCall":             functionCall{},
		"MemberAccess":             memberAccess{},
		"IndexAccess":              indexAccess{},
		"Identifier":               identifier{},
		"Literal":                  literal{},
		"ElementaryTypeName":       elementaryTypeName{},
		"Comment":                  comment{},
	}

	return printer.NewFactory(ast.Solidity, table, fallback{})
}

type fallback struct{}

func (fallback) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (fallback) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}

// PrintNode emits a best-effort placeholder for a node type this catalog
// doesn't name explicitly, so an unhandled construct degrades to a visible
// marker rather than panicking or silently vanishing.
func (fallback) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	typ, _ := ast.TypeOf(n, ast.Solidity)
	pp.WriteToken("/* unprinted:" + typ + " */")
}

type sourceUnit struct{}

func (sourceUnit) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (sourceUnit) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (sourceUnit) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	for _, c := range ast.Seq(ast.Field(n, "nodes")) {
		f.Print(pp, c, s)
		pp.WriteNewline()
	}
}

type pragmaDirective struct{}

func (pragmaDirective) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (pragmaDirective) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (pragmaDirective) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	pp.WriteToken("pragma")
	pp.WriteSpace()
	var parts []string
	for _, l := range ast.Seq(ast.Field(n, "literals")) {
		if s, ok := ast.Str(l); ok {
			parts = append(parts, s)
		}
	}
	pp.WriteToken(strings.Join(parts, " "))
	pp.WriteToken(";")
	pp.WriteNewline()
}

type importDirective struct{}

func (importDirective) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (importDirective) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (importDirective) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	file, _ := ast.Str(ast.Field(n, "file"))
	pp.WriteToken("import")
	pp.WriteSpace()
	pp.WriteString(file)
	pp.WriteToken(";")
	pp.WriteNewline()
}

type contractDefinition struct{}

func (contractDefinition) OnEntry(_ *printer.PrettyPrinter, _ ast.Node, _ printer.Settings) {}
func (contractDefinition) OnExit(_ *printer.PrettyPrinter, _ ast.Node, _ printer.Settings)  {}
func (contractDefinition) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	kind, _ := ast.Str(ast.Field(n, "contractKind"))
	if kind == "" {
		kind = "contract"
	}
	name, _ := ast.Str(ast.Field(n, "name"))
	s.InInterface = kind == "interface"

	pp.WriteToken(kind)
	pp.WriteSpace()
	pp.WriteToken(name)
	pp.WriteSpace()
	pp.WriteToken("{")
	pp.WriteNewline()
	pp.IncreaseIndent(1)
	for _, c := range ast.Seq(ast.Field(n, "nodes")) {
		pp.WriteIndent()
		f.Print(pp, c, s)
		pp.WriteNewline()
	}
	pp.DecreaseIndent(1)
	pp.WriteToken("}")
	pp.WriteNewline()
}

type functionDefinition struct{}

func (functionDefinition) OnEntry(_ *printer.PrettyPrinter, _ ast.Node, _ printer.Settings) {}
func (functionDefinition) OnExit(_ *printer.PrettyPrinter, _ ast.Node, _ printer.Settings)  {}
func (functionDefinition) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	name, _ := ast.Str(ast.Field(n, "name"))
	kind, _ := ast.Str(ast.Field(n, "kind"))
	if kind == "" {
		kind = "function"
	}
	pp.WriteToken(kind)
	if name != "" {
		pp.WriteSpace()
		pp.WriteToken(name)
	}
	pp.WriteToken("(")
	params := ast.Seq(ast.Field(ast.Field(n, "parameters"), "parameters"))
	for i, p := range params {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, p, s)
	}
	pp.WriteToken(")")
	pp.WriteSpace()

	if vis, ok := ast.Str(ast.Field(n, "visibility")); ok && vis != "" && vis != "internal" {
		pp.WriteToken(vis)
		pp.WriteSpace()
	}
	if mut, ok := ast.Str(ast.Field(n, "stateMutability")); ok && mut != "" && mut != "nonpayable" {
		pp.WriteToken(mut)
		pp.WriteSpace()
	}
	if rets := ast.Seq(ast.Field(ast.Field(n, "returnParameters"), "parameters")); len(rets) > 0 {
		pp.WriteToken("returns")
		pp.WriteSpace()
		pp.WriteToken("(")
		for i, r := range rets {
			if i > 0 {
				pp.WriteToken(",")
				pp.WriteSpace()
			}
			f.Print(pp, r, s)
		}
		pp.WriteToken(")")
		pp.WriteSpace()
	}

	if body := ast.Field(n, "body"); body != nil {
		f.Print(pp, body, s)
	} else {
		pp.WriteToken(";")
	}
}

type variableDeclaration struct{}

func (variableDeclaration) OnEntry(_ *printer.PrettyPrinter, _ ast.Node, _ printer.Settings) {}
func (variableDeclaration) OnExit(_ *printer.PrettyPrinter, _ ast.Node, _ printer.Settings)  {}
func (variableDeclaration) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	if tn := ast.Field(n, "typeName"); tn != nil {
		f.Print(pp, tn, s)
		pp.WriteSpace()
	}
	name, _ := ast.Str(ast.Field(n, "name"))
	pp.WriteToken(name)
}

type variableDeclarationStatement struct{}

func (variableDeclarationStatement) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (variableDeclarationStatement) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (variableDeclarationStatement) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	decls := ast.Seq(ast.Field(n, "declarations"))
	for i, d := range decls {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, d, s)
	}
	if v := ast.Field(n, "initialValue"); v != nil {
		pp.WriteSpace()
		pp.WriteToken("=")
		pp.WriteSpace()
		f.Print(pp, v, s)
	}
	pp.WriteToken(";")
}

type block struct{}

func (block) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (block) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (block) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("{")
	pp.WriteNewline()
	pp.IncreaseIndent(1)
	for _, c := range ast.Seq(ast.Field(n, "statements")) {
		pp.WriteIndent()
		f.Print(pp, c, s)
		pp.WriteNewline()
	}
	pp.DecreaseIndent(1)
	pp.WriteIndent()
	pp.WriteToken("}")
}

type uncheckedBlock struct{}

func (uncheckedBlock) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (uncheckedBlock) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (uncheckedBlock) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("unchecked")
	pp.WriteSpace()
	(block{}).PrintNode(f, pp, n, s)
}

type ifStatement struct{}

func (ifStatement) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (ifStatement) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (ifStatement) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("if")
	pp.WriteSpace()
	pp.WriteToken("(")
	f.Print(pp, ast.Field(n, "condition"), s)
	pp.WriteToken(")")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "trueBody"), s)
	if fb := ast.Field(n, "falseBody"); fb != nil {
		pp.WriteSpace()
		pp.WriteToken("else")
		pp.WriteSpace()
		f.Print(pp, fb, s)
	}
}

type forStatement struct{}

func (forStatement) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (forStatement) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (forStatement) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("for")
	pp.WriteSpace()
	pp.WriteToken("(")
	f.Print(pp, ast.Field(n, "initializationExpression"), s)
	pp.WriteToken(";")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "condition"), s)
	pp.WriteToken(";")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "loopExpression"), s)
	pp.WriteToken(")")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "body"), s)
}

type whileStatement struct{}

func (whileStatement) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (whileStatement) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (whileStatement) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("while")
	pp.WriteSpace()
	pp.WriteToken("(")
	f.Print(pp, ast.Field(n, "condition"), s)
	pp.WriteToken(")")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "body"), s)
}

type returnStmt struct{}

func (returnStmt) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (returnStmt) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (returnStmt) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("return")
	if v := ast.Field(n, "expression"); v != nil {
		pp.WriteSpace()
		f.Print(pp, v, s)
	}
	pp.WriteToken(";")
}

type expressionStatement struct{}

func (expressionStatement) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (expressionStatement) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (expressionStatement) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "expression"), s)
	pp.WriteToken(";")
}

type emitStatement struct{}

func (emitStatement) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (emitStatement) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (emitStatement) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("emit")
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "eventCall"), s)
	pp.WriteToken(";")
}

type placeholderStatement struct{}

func (placeholderStatement) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (placeholderStatement) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (placeholderStatement) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, _ ast.Node, _ printer.Settings) {
	pp.WriteToken("_")
	pp.WriteToken(";")
}

type binaryOperation struct{}

func (binaryOperation) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (binaryOperation) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (binaryOperation) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	op, _ := ast.Str(ast.Field(n, "operator"))
	pp.WriteToken("(")
	f.Print(pp, ast.Field(n, "leftExpression"), s)
	pp.WriteSpace()
	pp.WriteToken(op)
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "rightExpression"), s)
	pp.WriteToken(")")
}

type unaryOperation struct{}

func (unaryOperation) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (unaryOperation) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (unaryOperation) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	op, _ := ast.Str(ast.Field(n, "operator"))
	prefix, _ := ast.Field(n, "prefix").(bool)
	if prefix {
		pp.WriteToken(op)
		f.Print(pp, ast.Field(n, "subExpression"), s)
	} else {
		f.Print(pp, ast.Field(n, "subExpression"), s)
		pp.WriteToken(op)
	}
}

type assignment struct{}

func (assignment) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (assignment) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (assignment) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "leftHandSide"), s)
	pp.WriteSpace()
	op, ok := ast.Str(ast.Field(n, "operator"))
	if !ok || op == "" {
		op = "="
	}
	pp.WriteToken(op)
	pp.WriteSpace()
	f.Print(pp, ast.Field(n, "rightHandSide"), s)
}

type tupleExpression struct{}

func (tupleExpression) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (tupleExpression) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (tupleExpression) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	pp.WriteToken("(")
	for i, c := range ast.Seq(ast.Field(n, "components")) {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, c, s)
	}
	pp.WriteToken(")")
}

type functionCall struct{}

func (functionCall) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (functionCall) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (functionCall) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "expression"), s)
	pp.WriteToken("(")
	for i, a := range ast.Seq(ast.Field(n, "arguments")) {
		if i > 0 {
			pp.WriteToken(",")
			pp.WriteSpace()
		}
		f.Print(pp, a, s)
	}
	pp.WriteToken(")")
}

type memberAccess struct{}

func (memberAccess) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (memberAccess) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (memberAccess) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "expression"), s)
	pp.WriteToken(".")
	member, _ := ast.Str(ast.Field(n, "memberName"))
	pp.WriteToken(member)
}

type indexAccess struct{}

func (indexAccess) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (indexAccess) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (indexAccess) PrintNode(f *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, s printer.Settings) {
	f.Print(pp, ast.Field(n, "baseExpression"), s)
	pp.WriteToken("[")
	f.Print(pp, ast.Field(n, "indexExpression"), s)
	pp.WriteToken("]")
}

type identifier struct{}

func (identifier) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (identifier) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (identifier) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	name, _ := ast.Str(ast.Field(n, "name"))
	pp.WriteToken(name)
}

type literal struct{}

func (literal) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (literal) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (literal) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	kind, _ := ast.Str(ast.Field(n, "kind"))
	value, _ := ast.Str(ast.Field(n, "value"))
	if kind == "string" {
		pp.WriteString(value)

		return
	}
	pp.WriteToken(value)
}

type elementaryTypeName struct{}

func (elementaryTypeName) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (elementaryTypeName) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (elementaryTypeName) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	name, _ := ast.Str(ast.Field(n, "name"))
	pp.WriteToken(name)
}

// comment prints a synthetic Comment node (injected by the comment-insertion
// pass, spec §4.5) as a Solidity line comment.
type comment struct{}

func (comment) OnEntry(*printer.PrettyPrinter, ast.Node, printer.Settings) {}
func (comment) OnExit(*printer.PrettyPrinter, ast.Node, printer.Settings)  {}
func (comment) PrintNode(_ *printer.Factory, pp *printer.PrettyPrinter, n ast.Node, _ printer.Settings) {
	text, _ := ast.Str(ast.Field(n, "text"))
	pp.WriteToken("// " + strings.ReplaceAll(text, "\n", " "))
}
