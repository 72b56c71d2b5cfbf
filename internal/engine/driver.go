// Package engine implements the counter/selector/attempts loop of spec
// §4.4: the sequential driver that turns one loaded AST plus a requested
// operator list into a budget-capped sequence of unique, pretty-printed
// mutants. Restructured from gremlins/internal/engine.Engine.Run's
// "spawn one executor per mutant, fan results through a channel"
// concurrency model (gremlins needs that because each mutant runs `go
// test`) to the single-threaded loop spec §5 mandates: no concurrency
// across or within files, the only blocking call being the optional
// synchronous compiler viability check.
package engine

import (
	"bytes"
	"math/rand"
	"sort"
	"strings"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/comment"
	"github.com/go-mutagen/mutagen/internal/merr"
	"github.com/go-mutagen/mutagen/internal/mutator"
	"github.com/go-mutagen/mutagen/internal/namer"
	"github.com/go-mutagen/mutagen/internal/permission"
	"github.com/go-mutagen/mutagen/internal/printer"
	"github.com/go-mutagen/mutagen/internal/traverse"
)

// attemptsCap is the hard per-pick retry budget of spec §4.4.
const attemptsCap = 50

// defaultPageWidth is the PrettyPrinter page width used when a caller
// doesn't override it.
const defaultPageWidth = 100

// Mutant is one successful emission: its pretty-printed source and the
// Result describing what changed.
type Mutant struct {
	Index  int
	Source string
	Result mutator.Result
}

// Summary totals one Driver.Run invocation, for internal/report.
type Summary struct {
	Emitted          int
	Duplicates       int
	CompileRejected  int
	ByKind           map[mutator.Kind]int
}

// Driver orchestrates one file's load->count->select->mutate->print cycle
// (spec §2 "LanguageInterface"), holding everything that must be supplied
// once per run: the language, its permission/naming strategies, the
// mutator and printer factories, and the PRNG threaded explicitly through
// every call that consumes randomness (spec §5 "Global state").
type Driver struct {
	Lang      ast.Lang
	Permitter permission.Permitter
	Namer     namer.Namer
	Mutators  mutator.Factory
	Printers  *printer.Factory
	Settings  printer.Settings
	PageWidth int

	RNG *rand.Rand

	// Validate, if non-nil, re-invokes the external compiler on a mutant's
	// pretty-printed form; a false result consumes an attempt exactly like
	// a duplicate (spec §4.4 step 6).
	Validate func(source string) bool
}

// Run performs the full loop of spec §4.4 against root for the requested
// operator kinds, emitting up to numMutants unique mutants.
func (d *Driver) Run(root ast.Node, kinds []mutator.Kind, numMutants int) ([]Mutant, Summary, error) {
	mutators := d.buildMutators(kinds)
	if len(mutators) == 0 {
		return nil, Summary{}, merr.New(merr.NoMutableNode, "no requested operator is implemented for this language")
	}

	counts := d.count(root, mutators)

	var kept []mutator.Kind
	for k, c := range counts {
		if c > 0 {
			kept = append(kept, k)
		}
	}
	if len(kept) == 0 {
		return nil, Summary{}, merr.New(merr.NoMutableNode, "no eligible node for any requested operator")
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i] < kept[j] })

	total := 0
	for _, k := range kept {
		total += counts[k]
	}
	budget := numMutants
	if total < budget {
		budget = total
	}

	queue := d.buildQueue(kept, counts, budget)

	paths := traverse.NewPathVisitor(d.Lang)
	paths.Build(root)

	var mutants []Mutant
	summary := Summary{ByKind: make(map[mutator.Kind]int)}
	seen := make(map[dedupeKey]bool)

	for len(queue) > 0 {
		kind := queue[0]
		m := mutators[kind]
		k := d.RNG.Intn(counts[kind])

		clone := DeepCopy(root)
		mv := traverse.NewMutationVisitor(d.Namer, d.Permitter, m, k, d.RNG)
		traverse.New().Walk(clone, mv)

		attempts := 0
		accepted := false
		for !accepted {
			if !mv.Applied {
				break
			}

			key := keyOf(mv.Result)
			duplicate := seen[key]

			var source string
			rejected := false
			if !duplicate {
				text := d.commentText(mv.Result, mv.Before, mv.After)
				comment.Insert(d.Lang, clone, paths.Paths, mv.Result.MutatedNodeID, text)
				source = d.print(clone)
				if d.Validate != nil && !d.Validate(source) {
					rejected = true
				}
			}

			if !duplicate && !rejected {
				seen[key] = true
				mutants = append(mutants, Mutant{Index: len(mutants), Source: source, Result: mv.Result})
				summary.Emitted++
				summary.ByKind[mv.Result.Kind]++
				accepted = true

				break
			}

			if duplicate {
				summary.Duplicates++
			} else {
				summary.CompileRejected++
			}

			attempts++
			if attempts >= attemptsCap {
				break
			}

			k = d.RNG.Intn(counts[kind])
			clone = DeepCopy(root)
			mv = traverse.NewMutationVisitor(d.Namer, d.Permitter, m, k, d.RNG)
			traverse.New().Walk(clone, mv)
		}

		queue = queue[1:]
	}

	return mutants, summary, nil
}

func (d *Driver) buildMutators(kinds []mutator.Kind) map[mutator.Kind]mutator.Mutator {
	out := make(map[mutator.Kind]mutator.Mutator, len(kinds))
	for _, k := range kinds {
		if m, ok := d.Mutators.New(k); ok {
			out[k] = m
		}
	}

	return out
}

func (d *Driver) count(root ast.Node, mutators map[mutator.Kind]mutator.Mutator) map[mutator.Kind]int {
	list := make([]mutator.Mutator, 0, len(mutators))
	for _, m := range mutators {
		list = append(list, m)
	}
	cv := traverse.NewCounterVisitor(d.Namer, d.Permitter, list, d.RNG)
	traverse.New().Walk(root, cv)

	return cv.Counts
}

// buildQueue implements spec §4.4 step 4: a multiset of operator picks
// sized to budget, each kept operator capped by its own count.
func (d *Driver) buildQueue(kept []mutator.Kind, counts map[mutator.Kind]int, budget int) []mutator.Kind {
	use := make(map[mutator.Kind]int, len(kept))
	queue := make([]mutator.Kind, 0, budget)

	for len(queue) < budget {
		allCapped := true
		for _, k := range kept {
			if use[k] < counts[k] {
				allCapped = false

				break
			}
		}
		if allCapped {
			break
		}

		op := kept[d.RNG.Intn(len(kept))]
		if use[op] >= counts[op] {
			continue
		}
		queue = append(queue, op)
		use[op]++
	}

	return queue
}

// Print pretty-prints root using the Driver's printer factory and
// settings, for callers that need the unmutated form (spec's
// "print-original" flag).
func (d *Driver) Print(root ast.Node) string {
	return d.print(root)
}

func (d *Driver) print(root ast.Node) string {
	width := d.PageWidth
	if width == 0 {
		width = defaultPageWidth
	}
	var buf bytes.Buffer
	pp := printer.New(&buf, width)
	d.Printers.Print(pp, root, d.Settings)

	return buf.String()
}

// dedupeKey is the comparable projection of mutator.Result used for
// de-duplication (spec §3 "Mutator Result... used for de-duplication, by
// value equality of the record"). RemovedNode is excluded: it holds a
// map/slice-shaped ast.Node, which Go cannot compare with == or use as a
// map key.
type dedupeKey struct {
	Kind          mutator.Kind
	Index         int
	MutatedNodeID int64
	OldText       string
	NewText       string
}

func keyOf(r mutator.Result) dedupeKey {
	return dedupeKey{
		Kind: r.Kind, Index: r.Index, MutatedNodeID: r.MutatedNodeID,
		OldText: r.OldText, NewText: r.NewText,
	}
}

// commentText builds the text the comment-insertion pass (spec §4.5) wraps
// in a synthetic Comment node. DeleteStatement is special-cased per spec
// §4.3/§8 scenario 3: its comment holds nothing but the removed subtree's
// own pretty-printed source, not a description of the change. Every other
// operator gets spec §8 scenario 1's literal format, built from pretty-
// printed before/after snapshots of the mutated node rather than from any
// per-operator ad hoc string, so every operator (including ones that don't
// set OldText/NewText, like SwapOperatorArguments) gets accurate text for
// free.
func (d *Driver) commentText(r mutator.Result, before, after ast.Node) string {
	if r.Kind == mutator.DeleteStatement && r.RemovedNode != nil {
		return strings.TrimSpace(d.print(r.RemovedNode))
	}

	oldText := strings.TrimSpace(d.print(before))
	newText := strings.TrimSpace(d.print(after))

	return string(r.Kind) + " Mutator: Changed '" + oldText + "' to '" + newText + "'"
}
