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

package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/go-mutagen/mutagen/cmd/internal/flags"
	"github.com/go-mutagen/mutagen/internal/ast"
	"github.com/go-mutagen/mutagen/internal/compiler"
	"github.com/go-mutagen/mutagen/internal/config"
	"github.com/go-mutagen/mutagen/internal/engine"
	"github.com/go-mutagen/mutagen/internal/log"
	"github.com/go-mutagen/mutagen/internal/merr"
	"github.com/go-mutagen/mutagen/internal/mutator"
	mutsol "github.com/go-mutagen/mutagen/internal/mutator/solidity"
	mutvy "github.com/go-mutagen/mutagen/internal/mutator/vyper"
	"github.com/go-mutagen/mutagen/internal/namer"
	"github.com/go-mutagen/mutagen/internal/permission"
	"github.com/go-mutagen/mutagen/internal/printer"
	prsol "github.com/go-mutagen/mutagen/internal/printer/solidity"
	prvy "github.com/go-mutagen/mutagen/internal/printer/vyper"
	"github.com/go-mutagen/mutagen/internal/report"
)

type mutateCmd struct {
	cmd *cobra.Command
}

const (
	commandName = "mutate"

	paramNumMutants      = "num-mutants"
	paramMutation        = "mutation"
	paramAllMutations    = "all-mutations"
	paramRNGSeed         = "rng-seed"
	paramFunction        = "function"
	paramValidateMutants = "validate-mutants"
	paramStdout          = "stdout"
	paramPrintOriginal   = "print-original"
	paramSaveConfigFiles = "save-config-files"
	paramOutputDirectory = "output-directory"
	paramSolcPath        = "solc-path"
	paramVyperPath       = "vyper-path"
	paramVyperContainer  = "vyper-container"

	defaultPageWidth = 100
)

func newMutateCmd(_ context.Context) (*mutateCmd, error) {
	cmd := &cobra.Command{
		Use:     fmt.Sprintf("%s FILE...", commandName),
		Aliases: []string{"run", "m"},
		Args:    cobra.MinimumNArgs(1),
		Short:   "Generate mutants from one or more source or AST files",
		Long:    longExplainer(),
		RunE:    runMutate(),
	}

	if err := setFlagsOnCmd(cmd); err != nil {
		return nil, err
	}

	return &mutateCmd{cmd: cmd}, nil
}

func longExplainer() string {
	return heredoc.Doc(`
		Mutate loads a Solidity-like or Vyper-like source file (or a previously
		emitted JSON AST), generates up to --num-mutants syntactically valid
		mutants using the requested operators, and writes each one as source
		code annotated with a comment describing the change.

		The language is inferred from each file's extension or, for AST
		files, from its sentinel shape.
	`)
}

func setFlagsOnCmd(cmd *cobra.Command) error {
	fs := []*flags.Flag{
		{Name: paramNumMutants, CfgKey: config.NumMutantsKey, DefaultV: 10, Usage: "maximum number of mutants to emit per file"},
		{Name: paramMutation, CfgKey: config.MutationsKey, DefaultV: []string{}, Usage: "mutation kind to apply (repeatable)"},
		{Name: paramAllMutations, CfgKey: config.AllMutationsKey, DefaultV: false, Usage: "apply every operator valid for the file's language"},
		{Name: paramRNGSeed, CfgKey: config.RNGSeedKey, DefaultV: uint64(0), Usage: "PRNG seed (0 picks a random seed)"},
		{Name: paramFunction, CfgKey: config.FunctionsKey, DefaultV: []string{}, Usage: "restrict mutation to this function name (repeatable)"},
		{Name: paramValidateMutants, CfgKey: config.ValidateMutantsKey, DefaultV: false, Usage: "re-invoke the compiler on each mutant before emitting it"},
		{Name: paramStdout, CfgKey: config.StdoutKey, DefaultV: false, Usage: "write mutants to stdout instead of --output-directory"},
		{Name: paramPrintOriginal, CfgKey: config.PrintOriginalKey, DefaultV: false, Usage: "also emit the unmutated, pretty-printed original"},
		{Name: paramSaveConfigFiles, CfgKey: config.SaveConfigFilesKey, DefaultV: false, Usage: "write a sibling .mgnx file reproducing each run"},
		{Name: paramOutputDirectory, CfgKey: config.OutputDirectoryKey, DefaultV: ".", Usage: "directory to write mutants into"},
		{Name: paramSolcPath, CfgKey: config.SolcPathKey, DefaultV: "", Usage: "path to the Language-S compiler binary"},
		{Name: paramVyperPath, CfgKey: config.VyperPathKey, DefaultV: "", Usage: "path to the Language-V compiler binary"},
		{Name: paramVyperContainer, CfgKey: config.VyperContainerKey, DefaultV: false, Usage: "invoke the Language-V compiler inside its container image"},
	}
	for _, f := range fs {
		if err := flags.Set(cmd, f); err != nil {
			return err
		}
	}

	return nil
}

func runMutate() func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, args []string) error {
		start := time.Now()

		seed := config.Get[uint64](config.RNGSeedKey)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewSource(int64(seed)))

		details := compilerDetails()
		bridge := compiler.Bridge{Details: details}

		outDir := config.Get[string](config.OutputDirectoryKey)
		if config.Get[bool](config.StdoutKey) {
			outDir = config.StdoutSentinel
		}

		var results report.Results
		for _, path := range args {
			fr, err := mutateFile(bridge, rng, seed, path, outDir)
			if err != nil {
				return err
			}
			results.Files = append(results.Files, fr)
		}
		results.Elapsed = time.Since(start)

		report.Do(results)

		if outDir != config.StdoutSentinel {
			if err := report.WriteFile(filepath.Join(outDir, "summary.json"), results); err != nil {
				log.Errorf("impossible to write summary: %s\n", err)
			}
		}

		return nil
	}
}

func compilerDetails() config.CompilerDetails {
	return config.CompilerDetails{
		Path:         config.Get[string](config.SolcPathKey),
		UseContainer: config.Get[bool](config.VyperContainerKey),
	}
}

func mutateFile(bridge compiler.Bridge, rng *rand.Rand, seed uint64, path, outDir string) (report.FileResult, error) {
	lang, cfgLang, err := detectLanguage(path)
	if err != nil {
		return report.FileResult{}, err
	}

	details := bridge.Details
	if cfgLang == config.Vyper && details.Path == "" {
		details.Path = config.Get[string](config.VyperPathKey)
		bridge = compiler.Bridge{Details: details}
	}

	superAST, err := bridge.LoadFile(path, cfgLang)
	if err != nil {
		return report.FileResult{}, err
	}

	d := buildDriver(lang, rng, bridge, cfgLang)

	kinds := requestedKinds(lang)

	numMutants := config.Get[int](config.NumMutantsKey)
	if numMutants <= 0 {
		numMutants = 10
	}

	mutants, summary, err := d.Run(superAST.Root, kinds, numMutants)
	if err != nil {
		return report.FileResult{}, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := sourceExt(cfgLang)

	if config.Get[bool](config.PrintOriginalKey) {
		original := printSuperAST(d, superAST.Root)
		if err := emit(outDir, base+"_original"+ext, original); err != nil {
			log.Errorf("impossible to write original: %s\n", err)
		}
	}

	for _, m := range mutants {
		name := fmt.Sprintf("%s_%d%s", base, m.Index, ext)
		if err := emit(outDir, name, m.Source); err != nil {
			log.Errorf("impossible to write mutant: %s\n", err)

			continue
		}
		report.Mutant(path, m)

		if config.Get[bool](config.SaveConfigFilesKey) {
			rec := config.Record{
				Language:        cfgLang,
				Filenames:       []string{path},
				NumMutants:      numMutants,
				Seed:            &seed,
				Mutations:       stringKinds(kinds),
				CompilerDetails: bridge.Details,
				Functions:       config.Get[[]string](config.FunctionsKey),
				ValidateMutants: config.Get[bool](config.ValidateMutantsKey),
				OutputDirectory: outDir,
				PrintOriginal:   config.Get[bool](config.PrintOriginalKey),
			}
			cfgPath := filepath.Join(outDir, fmt.Sprintf("%s_%d.mgnx", base, m.Index))
			if err := config.Save(cfgPath, rec); err != nil {
				log.Errorf("impossible to write config file: %s\n", err)
			}
		}
	}

	return report.FileResult{Filename: path, Mutants: mutants, Summary: summary}, nil
}

func buildDriver(lang ast.Lang, rng *rand.Rand, bridge compiler.Bridge, cfgLang config.Language) *engine.Driver {
	functions := config.Get[[]string](config.FunctionsKey)
	perm := permission.New(permission.FromFunctionAllowlist(functions))

	var mutators mutator.Factory
	var printers *printer.Factory
	if lang == ast.Solidity {
		mutators = mutsol.Factory{}
		printers = prsol.New()
	} else {
		mutators = mutvy.Factory{}
		printers = prvy.New()
	}

	var validate func(string) bool
	if config.Get[bool](config.ValidateMutantsKey) {
		validate = func(source string) bool { return bridge.Viable(source, cfgLang) }
	}

	return &engine.Driver{
		Lang:      lang,
		Permitter: perm,
		Namer:     namer.For(lang),
		Mutators:  mutators,
		Printers:  printers,
		Settings:  printer.Settings{Semicolon: lang == ast.Solidity, WriteMutability: lang == ast.Solidity},
		PageWidth: defaultPageWidth,
		RNG:       rng,
		Validate:  validate,
	}
}

func requestedKinds(lang ast.Lang) []mutator.Kind {
	if config.Get[bool](config.AllMutationsKey) {
		return mutator.All(lang)
	}

	var kinds []mutator.Kind
	for _, s := range config.Get[[]string](config.MutationsKey) {
		kinds = append(kinds, mutator.Kind(s))
	}
	if len(kinds) == 0 {
		return mutator.All(lang)
	}

	return kinds
}

func stringKinds(kinds []mutator.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}

	return out
}

func detectLanguage(path string) (ast.Lang, config.Language, error) {
	switch filepath.Ext(path) {
	case ".sol":
		return ast.Solidity, config.Solidity, nil
	case ".vy":
		return ast.Vyper, config.Vyper, nil
	}

	if compiler.Sniff(path, config.Solidity) == compiler.KindAST {
		return ast.Solidity, config.Solidity, nil
	}
	if compiler.Sniff(path, config.Vyper) == compiler.KindAST {
		return ast.Vyper, config.Vyper, nil
	}

	return ast.Lang(0), "", merr.New(merr.LanguageNotRecognized, path)
}

func sourceExt(lang config.Language) string {
	if lang == config.Vyper {
		return ".vy"
	}

	return ".sol"
}

func printSuperAST(d *engine.Driver, root ast.Node) string {
	return d.Print(root)
}

func emit(dir, name, content string) error {
	if dir == config.StdoutSentinel {
		log.Infof("// %s\n%s\n", name, content)

		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	//nolint:gosec // dir/name are operator-supplied configuration, not attacker input
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
}
