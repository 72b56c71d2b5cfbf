// Package comment implements the comment-insertion pass of spec §4.5: given
// a pre-mutation path map and the id of the node a Mutator just rewrote,
// re-locate that node in the mutated clone and attach a synthetic Comment
// node describing the change.
package comment

import (
	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/traverse"
)

// New builds a language-specific synthetic Comment node carrying text, with
// a freshly allocated synthetic id so it never collides with a
// compiler-assigned one.
func New(lang ast.Lang, text string) ast.Node {
	return ast.NewObj(lang, "Comment", map[string]ast.Node{"text": text})
}

// Insert locates the node identified by nodeID (via paths, computed on the
// AST before mutation) inside root (the mutated clone) and inserts a
// Comment node carrying text immediately before it in its nearest enclosing
// sequence (body/statements/arguments/elements, per spec §4.5). If the
// target has no sequence ancestor — it's reached only through
// directly-held fields, not array elements — the comment is instead
// attached to the target itself as a leading "documentation" field, per
// spec §4.5's fallback. Insert is a no-op if nodeID isn't in paths, which
// happens only for synthetic nodes that never appear in the path map built
// on the pre-mutation tree (this never occurs for DeleteStatement/
// FunctionCall, which are required to carry the original id forward).
func Insert(lang ast.Lang, root ast.Node, paths map[int64]traverse.Path, nodeID int64, text string) {
	path, ok := paths[nodeID]
	if !ok {
		return
	}

	node := New(lang, text)

	seqStep := -1
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Index >= 0 {
			seqStep = i

			break
		}
	}

	if seqStep < 0 {
		attachLeadingComment(root, path, node)

		return
	}

	container := walkTo(root, path[:seqStep])
	containerObj := ast.Obj(container)
	if containerObj == nil {
		return
	}
	key, idx := path[seqStep].Key, path[seqStep].Index
	seq := ast.Seq(containerObj[key])
	if idx < 0 || idx > len(seq) {
		return
	}

	out := make([]ast.Node, 0, len(seq)+1)
	out = append(out, seq[:idx]...)
	out = append(out, node)
	out = append(out, seq[idx:]...)
	containerObj[key] = out
}

// attachLeadingComment handles the no-sequence-ancestor fallback: the
// comment is stored under the target node's own "documentation" field
// rather than spliced into a sibling sequence. Printers that don't
// special-case a leading "documentation" Comment simply won't render it;
// this is documented as a known limitation (spec §4.5's less common
// branch — every generic operator's eligible nodes sit inside a
// body/statements/arguments sequence in practice).
func attachLeadingComment(root ast.Node, path traverse.Path, node ast.Node) {
	target := walkTo(root, path)
	obj := ast.Obj(target)
	if obj == nil {
		return
	}
	obj["documentation"] = node
}

// walkTo follows path from root and returns the Node it addresses.
func walkTo(root ast.Node, path traverse.Path) ast.Node {
	cur := root
	for _, step := range path {
		obj := ast.Obj(cur)
		if obj == nil {
			return nil
		}
		val := obj[step.Key]
		if step.Index < 0 {
			cur = val

			continue
		}
		seq := ast.Seq(val)
		if step.Index >= len(seq) {
			return nil
		}
		cur = seq[step.Index]
	}

	return cur
}
