package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hectane/go-acl"

	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/config"
	"github.com/go-mutagen/mutagen/internal/merr"
)

// timeout bounds a single compiler subprocess invocation, generalizing
// gremlins' per-test-run timeout to "one solc/vyper invocation should never
// hang the driver forever".
const timeout = 30 * time.Second

// Bridge invokes a language's external compiler to extract a JSON AST from
// source, or to check a mutant's viability by re-compiling it.
type Bridge struct {
	Details config.CompilerDetails
}

// LoadFile recognizes path's kind and returns its SuperAST: decoded
// directly if it's an AST file, or extracted by shelling out to the
// language compiler if it's a source file. Numeric AST fields decode as
// json.Number (never float64), so large integer literals survive
// round-tripping exactly.
func (b Bridge) LoadFile(path string, lang config.Language) (ast.SuperAST, error) {
	switch Sniff(path, lang) {
	case KindAST:
		root, err := decodeFile(path)
		if err != nil {
			return ast.SuperAST{}, merr.Wrap(merr.LoadError, path, err)
		}

		return ast.SuperAST{Lang: toASTLang(lang), Root: root}, nil
	case KindSource:
		root, err := b.extract(path, lang)
		if err != nil {
			return ast.SuperAST{}, err
		}

		return ast.SuperAST{Lang: toASTLang(lang), Root: root}, nil
	default:
		return ast.SuperAST{}, merr.New(merr.LanguageNotRecognized, path)
	}
}

func decodeFile(path string) (ast.Node, error) {
	//nolint:gosec // path is operator-supplied, not attacker input
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var root ast.Node

	return root, dec.Decode(&root)
}

// extract runs the language compiler against a source file and parses its
// stdout as a JSON AST.
func (b Bridge) extract(path string, lang config.Language) (ast.Node, error) {
	args, binary, err := b.extractArgs(path, lang)
	if err != nil {
		return nil, err
	}

	out, err := b.run(binary, args)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, merr.Wrap(merr.CompilerAbsent, binary, err)
		}

		return nil, merr.Wrap(merr.SourceDoesNotCompile, path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()

	var root ast.Node
	if err := dec.Decode(&root); err != nil {
		return nil, merr.Wrap(merr.SourceDoesNotCompile, path, err)
	}

	return root, nil
}

func (b Bridge) extractArgs(path string, lang config.Language) (args []string, binary string, err error) {
	if lang == config.Vyper {
		binary = b.Details.Path
		if binary == "" {
			binary = "vyper"
		}
		if b.Details.UseContainer {
			return b.vyperContainerArgs(path)
		}

		args = []string{"-f", "ast", path}
		if b.Details.ProjectRoot != "" {
			args = append([]string{"-p", b.Details.ProjectRoot}, args...)
		}

		return args, binary, nil
	}

	binary = b.Details.Path
	if binary == "" {
		binary = "solc"
	}
	args = []string{"--ast-compact-json", path}
	if b.Details.BasePath != "" {
		args = append(args, "--base-path", b.Details.BasePath)
	}
	for _, p := range b.Details.IncludePaths {
		args = append(args, "--include-path", p)
	}
	for _, p := range b.Details.AllowPaths {
		args = append(args, "--allow-paths", p)
	}
	for _, r := range b.Details.Remappings {
		args = append(args, r)
	}

	return args, binary, nil
}

// vyperContainerArgs builds the docker-based fallback invocation of spec
// §6: mount the source's parent directory as /code, run vyper inside the
// container image instead of a local binary.
func (b Bridge) vyperContainerArgs(path string) ([]string, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	dir := filepath.Dir(abs)
	image := b.Details.ContainerImage
	if image == "" {
		image = "vyperlang/vyper"
	}

	args := []string{
		"run", "--rm",
		"-v", dir + ":/code",
		image,
		"-f", "ast", "/code/" + filepath.Base(abs),
	}

	return args, "docker", nil
}

// Viable re-invokes the compiler on source's pretty-printed form and
// reports whether it is accepted, per spec §4.4's optional validate-mutants
// step. source is written to a process-scoped temp file, deterministically
// named, permission-locked, and removed on every return path (spec §5).
func (b Bridge) Viable(source string, lang config.Language) bool {
	dir, err := os.MkdirTemp("", "mutagen-viability-")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "candidate"+sourceExt(lang))
	//nolint:gosec // name is built from a process-scoped temp dir, not attacker input
	if err := os.WriteFile(name, []byte(source), 0o600); err != nil {
		return false
	}
	if err := acl.Chmod(name, 0o600); err != nil {
		return false
	}

	_, err = b.extract(name, lang)

	return err == nil
}

func (b Bridge) run(binary string, args []string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	//nolint:gosec // binary/args are operator-supplied configuration, not attacker input
	cmd := exec.CommandContext(ctx, binary, args...)
	setupProcessGroup(cmd)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = killProcessGroup(cmd)

		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, err
		}

		return stdout.Bytes(), nil
	}
}

func toASTLang(lang config.Language) ast.Lang {
	if lang == config.Vyper {
		return ast.Vyper
	}

	return ast.Solidity
}
