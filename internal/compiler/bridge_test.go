package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-mutagen/mutagen/internal/config"
)

func TestExtractArgsSolidityDefaultsToSolcBinary(t *testing.T) {
	b := Bridge{}

	args, binary, err := b.extractArgs("Foo.sol", config.Solidity)
	if err != nil {
		t.Fatalf("extractArgs: unexpected error: %s", err)
	}
	if binary != "solc" {
		t.Errorf("binary = %q, want solc", binary)
	}
	if len(args) == 0 || args[0] != "--ast-compact-json" || args[1] != "Foo.sol" {
		t.Errorf("args = %v, want to start with --ast-compact-json Foo.sol", args)
	}
}

func TestExtractArgsSolidityAddsBasePathIncludeAllowAndRemappings(t *testing.T) {
	b := Bridge{Details: config.CompilerDetails{
		Path:         "/usr/local/bin/solc",
		BasePath:     "/proj",
		IncludePaths: []string{"/proj/lib"},
		AllowPaths:   []string{"/proj"},
		Remappings:   []string{"@oz/=node_modules/@openzeppelin/"},
	}}

	args, binary, err := b.extractArgs("Foo.sol", config.Solidity)
	if err != nil {
		t.Fatalf("extractArgs: unexpected error: %s", err)
	}
	if binary != "/usr/local/bin/solc" {
		t.Errorf("binary = %q, want the configured path", binary)
	}

	want := []string{
		"--ast-compact-json", "Foo.sol",
		"--base-path", "/proj",
		"--include-path", "/proj/lib",
		"--allow-paths", "/proj",
		"@oz/=node_modules/@openzeppelin/",
	}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestExtractArgsVyperDefaultsToVyperBinary(t *testing.T) {
	b := Bridge{}

	args, binary, err := b.extractArgs("foo.vy", config.Vyper)
	if err != nil {
		t.Fatalf("extractArgs: unexpected error: %s", err)
	}
	if binary != "vyper" {
		t.Errorf("binary = %q, want vyper", binary)
	}
	if len(args) != 3 || args[0] != "-f" || args[1] != "ast" || args[2] != "foo.vy" {
		t.Errorf("args = %v, want [-f ast foo.vy]", args)
	}
}

func TestExtractArgsVyperAddsProjectRoot(t *testing.T) {
	b := Bridge{Details: config.CompilerDetails{ProjectRoot: "/proj"}}

	args, _, err := b.extractArgs("foo.vy", config.Vyper)
	if err != nil {
		t.Fatalf("extractArgs: unexpected error: %s", err)
	}
	want := []string{"-p", "/proj", "-f", "ast", "foo.vy"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestExtractArgsVyperUsesContainerFallback(t *testing.T) {
	b := Bridge{Details: config.CompilerDetails{UseContainer: true, ContainerImage: "my/vyper:0.3"}}

	args, binary, err := b.extractArgs("/tmp/src/foo.vy", config.Vyper)
	if err != nil {
		t.Fatalf("extractArgs: unexpected error: %s", err)
	}
	if binary != "docker" {
		t.Errorf("binary = %q, want docker", binary)
	}

	want := []string{
		"run", "--rm",
		"-v", "/tmp/src:/code",
		"my/vyper:0.3",
		"-f", "ast", "/code/foo.vy",
	}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestVyperContainerArgsDefaultsToOfficialImage(t *testing.T) {
	b := Bridge{}

	path := filepath.Join(t.TempDir(), "foo.vy")
	args, binary, err := b.vyperContainerArgs(path)
	if err != nil {
		t.Fatalf("vyperContainerArgs: unexpected error: %s", err)
	}
	if binary != "docker" {
		t.Errorf("binary = %q, want docker", binary)
	}
	if args[4] != "vyperlang/vyper" {
		t.Errorf("image = %q, want vyperlang/vyper", args[4])
	}
}

func TestToASTLang(t *testing.T) {
	if got := toASTLang(config.Vyper); got.String() != "vyper" {
		t.Errorf("toASTLang(Vyper) = %v, want vyper", got)
	}
	if got := toASTLang(config.Solidity); got.String() != "solidity" {
		t.Errorf("toASTLang(Solidity) = %v, want solidity", got)
	}
}

func TestLoadFileDecodesASTFileDirectly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writeTestFile(t, path, `{"nodeType":"SourceUnit","id":1,"nodes":[]}`)

	b := Bridge{}
	super, err := b.LoadFile(path, config.Solidity)
	if err != nil {
		t.Fatalf("LoadFile: unexpected error: %s", err)
	}
	root, err := super.AsSolidity()
	if err != nil {
		t.Fatalf("AsSolidity: unexpected error: %s", err)
	}
	m, ok := root.(map[string]interface{})
	if !ok || m["nodeType"] != "SourceUnit" {
		t.Errorf("decoded root = %#v, want a SourceUnit map", root)
	}
}

func TestLoadFileRejectsUnrecognizedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	writeTestFile(t, path, "not an AST or a .sol/.vy file")

	b := Bridge{}
	if _, err := b.LoadFile(path, config.Solidity); err == nil {
		t.Fatal("expected an error for an unrecognized path")
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writeTestFile: %s", err)
	}
}
