// Package compiler is the Source -> AST bridge of spec §6: subprocess
// invocation of the two languages' official compilers for JSON AST
// extraction and mutant viability checking. Grounded on
// gremlins/internal/engine/executor.go's exec.Command-based subprocess
// bridge to `go test`, generalized from "run the test binary" to "run the
// language compiler and capture stdout JSON", and on
// gremlins/internal/engine/process_unix.go/process_windows.go's
// platform-specific process-group handling.
package compiler

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/go-mutagen/mutagen/internal/config"
)

// Kind is what LoadFile determined a path to be.
type Kind int

const (
	// KindUnknown means neither a source file this bridge can compile nor a
	// recognized AST file.
	KindUnknown Kind = iota
	// KindSource means the path has the language's source extension.
	KindSource
	// KindAST means the path's content sniffs as that language's AST shape.
	KindAST
)

// Sniff recognizes path as source, AST, or unknown for lang, per spec §6:
// a source file by extension, an AST file by its language's sentinel keys
// (Solidity: nodeType:"SourceUnit" at root; Vyper: contract_name and ast
// both present).
func Sniff(path string, lang config.Language) Kind {
	ext := filepath.Ext(path)
	if ext == sourceExt(lang) {
		return KindSource
	}

	//nolint:gosec // path is operator-supplied, not attacker input
	raw, err := os.ReadFile(path)
	if err != nil {
		return KindUnknown
	}
	if !gjson.ValidBytes(raw) {
		return KindUnknown
	}

	if isASTSentinel(raw, lang) {
		return KindAST
	}

	return KindUnknown
}

func isASTSentinel(raw []byte, lang config.Language) bool {
	root := gjson.ParseBytes(raw)
	if lang == config.Vyper {
		return root.Get("contract_name").Exists() && root.Get("ast").Exists()
	}

	return root.Get("nodeType").String() == "SourceUnit"
}

func sourceExt(lang config.Language) string {
	if lang == config.Vyper {
		return ".vy"
	}

	return ".sol"
}
