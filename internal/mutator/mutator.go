/*
 * Copyright 2022 The Gremlins Authors
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package mutator defines the Kind enumeration, the Mutator interface every
// operator implements, the Result record used for de-duplication, and the
// per-language Factory that is the sole construction point for Mutators
// (spec §4.3).
package mutator

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
)

// Kind is the closed enumeration of operator identifiers, spelled exactly as
// spec §6 requires.
type Kind string

// The canonical mutation-kind vocabulary (spec §6).
const (
	ArithmeticBinaryOp    Kind = "ArithmeticBinaryOp"
	LogicalBinaryOp       Kind = "LogicalBinaryOp"
	BitwiseBinaryOp       Kind = "BitwiseBinaryOp"
	BitshiftBinaryOp      Kind = "BitshiftBinaryOp"
	ComparisonBinaryOp    Kind = "ComparisonBinaryOp"
	Assignment            Kind = "Assignment"
	DeleteStatement       Kind = "DeleteStatement"
	FunctionCall          Kind = "FunctionCall"
	IfStatement           Kind = "IfStatement"
	Integer               Kind = "Integer"
	FunctionSwapArguments Kind = "FunctionSwapArguments"
	SwapOperatorArguments Kind = "SwapOperatorArguments"
	LinesSwap             Kind = "LinesSwap"
	UnaryOp               Kind = "UnaryOp"
	Require               Kind = "Require"
	UncheckedBlock        Kind = "UncheckedBlock"
	ElimDelegateCall      Kind = "ElimDelegateCall"
)

// Generic is every operator defined for both language families.
var Generic = []Kind{
	ArithmeticBinaryOp, LogicalBinaryOp, BitwiseBinaryOp, BitshiftBinaryOp,
	ComparisonBinaryOp, Assignment, DeleteStatement, FunctionCall,
	IfStatement, Integer, FunctionSwapArguments, SwapOperatorArguments,
	LinesSwap, UnaryOp,
}

// SolidityOnly is the operator set spec §4.3 defines only for Language-S.
var SolidityOnly = []Kind{Require, UncheckedBlock, ElimDelegateCall}

// All returns every Kind valid for a language: Vyper gets Generic,
// Solidity gets Generic+SolidityOnly.
func All(lang ast.Lang) []Kind {
	out := make([]Kind, 0, len(Generic)+len(SolidityOnly))
	out = append(out, Generic...)
	if lang == ast.Solidity {
		out = append(out, SolidityOnly...)
	}

	return out
}

// Result records what a single successful mutation changed: used to
// de-duplicate mutants by value equality of the record (spec §3 "Mutator
// Result"), not of the whole AST clone.
type Result struct {
	Kind          Kind
	Index         int
	MutatedNodeID int64
	OldText       string
	NewText       string

	// RemovedNode carries a subtree a mutator has severed from the live
	// tree (DeleteStatement, FunctionCall) so the comment-insertion pass
	// can render its source text with the printer once it's available,
	// rather than every mutator needing one itself.
	RemovedNode ast.Node
}

// Mutator is the interface every operator implements, scoped to one
// language (spec §9 "Mutator polymorphism").
type Mutator interface {
	// Kind returns this operator's identifier.
	Kind() Kind

	// IsMutableNode is a pure predicate: true iff n is eligible for this
	// operator under the rules the operator itself enforces (spec §4.3).
	// It may consult rng to prepare internal state but must not mutate n.
	IsMutableNode(n ast.Node, rng *rand.Rand) bool

	// Mutate rewrites n in place and returns a Result describing the
	// change. Called only on a node for which IsMutableNode returned true.
	Mutate(n ast.Node, rng *rand.Rand) (Result, error)
}

// FunctionAware is implemented by operators whose mutation depends on the
// nearest enclosing function definition. Solidity's DeleteStatement is
// currently the only one: it needs the enclosing function's declared return
// type to synthesize a type-appropriate replacement statement when removing
// a statement empties the function body, mirroring how Vyper's
// DeleteStatement reads its own FunctionDef node's "returns" field directly
// without needing ancestor context. MutationVisitor special-cases this
// interface, calling MutateInFunction instead of Mutate when present.
type FunctionAware interface {
	Mutator

	// MutateInFunction is Mutate plus fn, the nearest enclosing function
	// definition the traversal found, or nil when n has none (e.g. a free
	// block outside any function, or no function in scope at all).
	MutateInFunction(n, fn ast.Node, rng *rand.Rand) (Result, error)
}

// Factory maps a Kind to a fresh Mutator. It is the sole construction point
// for Mutators (spec §4.3): every outer loop obtains its mutator through it.
// Unknown kinds return (nil, false).
type Factory interface {
	New(k Kind) (Mutator, bool)
}
