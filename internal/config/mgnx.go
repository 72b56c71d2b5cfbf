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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-mutagen/mutagen/internal/merr"
)

// Language is the enum string accepted by the "language" key of a .mgnx
// file. On the command line the language is taken from each input file's
// extension or AST shape instead.
type Language string

const (
	// Solidity is the statically typed contract language (Language-S).
	Solidity Language = "solidity"
	// Vyper is the Python-derived contract language (Language-V).
	Vyper Language = "vyper"
)

func (l Language) valid() bool {
	return l == Solidity || l == Vyper
}

// CompilerDetails carries the details needed to invoke the external
// compiler for a given language: the compiler path itself plus any
// language-specific extras (base/include/allow-path/remappings for
// Solidity; project root for Vyper; container image for Vyper-in-Docker).
type CompilerDetails struct {
	Path            string   `json:"path,omitempty"`
	BasePath        string   `json:"base-path,omitempty"`
	IncludePaths    []string `json:"include-paths,omitempty"`
	AllowPaths      []string `json:"allow-paths,omitempty"`
	Remappings      []string `json:"remappings,omitempty"`
	ProjectRoot     string   `json:"project-root,omitempty"`
	ContainerImage  string   `json:"container-image,omitempty"`
	UseContainer    bool     `json:"use-container,omitempty"`
}

// Record is the Configuration Record of spec.md §3, serialised to and from
// the .mgnx file format of spec.md §6.
type Record struct {
	Language         Language         `json:"language"`
	Filenames        []string         `json:"filenames"`
	NumMutants       int              `json:"num-mutants"`
	Seed             *uint64          `json:"seed,omitempty"`
	Mutations        []string         `json:"mutations,omitempty"`
	AllMutations     bool             `json:"all-mutations,omitempty"`
	CompilerDetails  CompilerDetails  `json:"compiler-details,omitempty"`
	Functions        []string         `json:"functions,omitempty"`
	ValidateMutants  bool             `json:"validate-mutants,omitempty"`
	OutputDirectory  string           `json:"output-directory,omitempty"`
	PrintOriginal    bool             `json:"print-original,omitempty"`
}

// StdoutSentinel is the literal accepted in place of a real path for
// OutputDirectory, meaning "write mutants to stdout".
const StdoutSentinel = "stdout"

// Load reads and validates a .mgnx file at path.
func Load(path string) (Record, error) {
	//nolint:gosec // path is operator-supplied, not attacker input
	raw, err := os.ReadFile(path)
	if err != nil {
		return Record{}, merr.Wrap(merr.LoadError, path, err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, merr.Wrap(merr.LoadError, path, err)
	}

	if err := validate(rec, path); err != nil {
		return Record{}, err
	}

	return rec, nil
}

func validate(rec Record, path string) error {
	var missing []string
	if rec.Language == "" {
		missing = append(missing, "language")
	}
	if len(rec.Filenames) == 0 {
		missing = append(missing, "filenames")
	}
	if len(missing) > 0 {
		sort.Strings(missing)

		return merr.New(merr.ConfigMissingKey, fmt.Sprintf("%s: missing %v", path, missing))
	}

	if !rec.Language.valid() {
		return merr.New(merr.ConfigUnsupportedLanguage, string(rec.Language))
	}

	wantExt := ext(rec.Language)
	for _, f := range rec.Filenames {
		if e := filepath.Ext(f); e != wantExt && e != ".json" {
			return merr.New(merr.ConfigBadExtension, f)
		}
	}

	return nil
}

func ext(l Language) string {
	if l == Solidity {
		return ".sol"
	}

	return ".vy"
}

// Save writes rec to path as indented JSON, creating parent directories as
// needed. Used both for --save-config-files and for normal config editing.
func Save(path string, rec Record) error {
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o600)
}
