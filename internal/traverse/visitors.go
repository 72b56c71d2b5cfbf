package traverse

import (
	"math/rand"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/mutator"
	"github.com/go-mutagen/mutagen/internal/namer"
	"github.com/go-mutagen/mutagen/internal/permission"
)

// permWalk is the permission-evaluation bookkeeping shared by CounterVisitor
// and MutationVisitor: a stack of named ancestors, pushed in OnEnter and
// popped in OnExit, used to evaluate the Mutate/Visit permission.Rule scopes
// against the current node (spec §4.2). Both visitors embed it and add
// their own Visit.
type permWalk struct {
	Namer     namer.Namer
	Permitter permission.Permitter

	ancestors []string
	nodeStack []ast.Node
	frames    []walkFrame
}

type walkFrame struct {
	mutateAllowed bool
	visitAllowed  bool
	pushed        bool
}

// OnEnter evaluates this node's Mutate/Visit permissions against the
// ancestry stack as it stands before this node is pushed, then pushes the
// node's own name onto the stack if it has one.
func (w *permWalk) OnEnter(n ast.Node) {
	ownName, hasOwn := w.Namer.Name(n)
	enclosing := w.ancestors
	fr := walkFrame{
		mutateAllowed: w.Permitter.Allowed(permission.Mutate, ownName, hasOwn, enclosing),
		visitAllowed:  w.Permitter.Allowed(permission.Visit, ownName, hasOwn, enclosing),
	}
	if hasOwn {
		w.ancestors = append(w.ancestors, ownName)
		fr.pushed = true
	}
	w.nodeStack = append(w.nodeStack, n)
	w.frames = append(w.frames, fr)
}

// VisitChildren reports whether the current node's Visit permission allows
// descending into its subtree.
func (w *permWalk) VisitChildren(ast.Node) bool {
	return w.frames[len(w.frames)-1].visitAllowed
}

// OnExit pops the frame pushed by the matching OnEnter.
func (w *permWalk) OnExit(ast.Node) {
	fr := w.frames[len(w.frames)-1]
	w.frames = w.frames[:len(w.frames)-1]
	w.nodeStack = w.nodeStack[:len(w.nodeStack)-1]
	if fr.pushed {
		w.ancestors = w.ancestors[:len(w.ancestors)-1]
	}
}

func (w *permWalk) mutateAllowed() bool {
	return w.frames[len(w.frames)-1].mutateAllowed
}

// functionTypeNames is the node type tag a FunctionAware lookup treats as
// "this is a function definition", one entry per language: Solidity's
// FunctionDefinition and Vyper's FunctionDef.
var functionTypeNames = map[string]bool{"FunctionDefinition": true, "FunctionDef": true}

// enclosingFunction scans the ancestor stack — excluding the node currently
// being visited, which OnEnter has already pushed by the time Visit runs —
// for the nearest function definition, for operators that need function-
// level context (spec §4.3's DeleteStatement return-type lookup). The two
// languages' type-tag keys ("nodeType" vs "ast_type") are both checked
// directly rather than threading a Lang through permWalk, since this is the
// only caller.
func (w *permWalk) enclosingFunction() (ast.Node, bool) {
	for i := len(w.nodeStack) - 2; i >= 0; i-- {
		obj := ast.Obj(w.nodeStack[i])
		if obj == nil {
			continue
		}
		if t, _ := obj["nodeType"].(string); functionTypeNames[t] {
			return w.nodeStack[i], true
		}
		if t, _ := obj["ast_type"].(string); functionTypeNames[t] {
			return w.nodeStack[i], true
		}
	}

	return nil, false
}

// CounterVisitor counts, per mutator, how many nodes in a tree are eligible
// under the active permissions (spec §4.2).
type CounterVisitor struct {
	permWalk

	Mutators []mutator.Mutator
	RNG      *rand.Rand

	Counts map[mutator.Kind]int
}

// NewCounterVisitor builds a CounterVisitor ready to walk one AST.
func NewCounterVisitor(namr namer.Namer, perm permission.Permitter, mutators []mutator.Mutator, rng *rand.Rand) *CounterVisitor {
	return &CounterVisitor{
		permWalk: permWalk{Namer: namr, Permitter: perm},
		Mutators: mutators,
		RNG:      rng,
		Counts:   make(map[mutator.Kind]int),
	}
}

// Visit increments Counts[op] for every mutator that finds n eligible,
// provided the Mutate permission allows it.
func (v *CounterVisitor) Visit(n ast.Node) {
	if !v.mutateAllowed() {
		return
	}
	for _, m := range v.Mutators {
		if m.IsMutableNode(n, v.RNG) {
			v.Counts[m.Kind()]++
		}
	}
}

// MutationVisitor applies exactly one mutator at the k-th eligible node it
// encounters, then stops descending (spec §4.2). Zero mutations result if
// k >= the eligible count.
type MutationVisitor struct {
	permWalk

	M   mutator.Mutator
	K   int
	RNG *rand.Rand

	seen int
	done bool

	Applied bool
	Result  mutator.Result
	Err     error

	// Before and After are a deep-copy snapshot of the mutated node taken
	// immediately before Mutate/MutateInFunction ran, and the node itself
	// afterward (every mutator rewrites its node's fields in place). The
	// comment-insertion pass pretty-prints both to build its "Changed 'X' to
	// 'Y'" text.
	Before ast.Node
	After  ast.Node
}

// NewMutationVisitor builds a MutationVisitor that will mutate the k-th node
// m finds eligible.
func NewMutationVisitor(namr namer.Namer, perm permission.Permitter, m mutator.Mutator, k int, rng *rand.Rand) *MutationVisitor {
	return &MutationVisitor{
		permWalk: permWalk{Namer: namr, Permitter: perm},
		M:        m, K: k, RNG: rng,
	}
}

// Visit mutates n if it is the k-th eligible node seen so far.
func (v *MutationVisitor) Visit(n ast.Node) {
	if v.done || !v.mutateAllowed() || !v.M.IsMutableNode(n, v.RNG) {
		return
	}
	if v.seen != v.K {
		v.seen++

		return
	}
	before := ast.DeepCopy(n)

	var result mutator.Result
	var err error
	if fa, ok := v.M.(mutator.FunctionAware); ok {
		fn, _ := v.enclosingFunction()
		result, err = fa.MutateInFunction(n, fn, v.RNG)
	} else {
		result, err = v.M.Mutate(n, v.RNG)
	}
	result.Index = v.K
	v.Before, v.After = before, n
	v.Result, v.Err, v.Applied, v.done = result, err, err == nil, true
}

// VisitChildren stops descending once a mutation has been applied, in
// addition to the inherited Visit-permission pruning.
func (v *MutationVisitor) VisitChildren(n ast.Node) bool {
	if v.done {
		return false
	}

	return v.permWalk.VisitChildren(n)
}
