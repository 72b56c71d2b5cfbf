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

// Package report formats and emits the result of a mutagen run: the
// per-mutant log line and the run-level summary of spec §4.4, plus the
// optional JSON file output of spec §6. Grounded on
// gremlins/internal/report's reportStatus/Do/Mutant split, generalized
// from "test status per mutant" (Killed/Lived/...) to "emitted or not"
// since this engine never executes a test suite against its mutants.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hako/durafmt"
	"github.com/tidwall/pretty"

	"github.com/go-mutagen/mutagen/internal/engine"
	"github.com/go-mutagen/mutagen/internal/log"
	"github.com/go-mutagen/mutagen/internal/report/internal"
)

var (
	fgHiGreen  = color.New(color.FgHiGreen).SprintFunc()
	fgRed      = color.New(color.FgRed).SprintFunc()
	fgHiYellow = color.New(color.FgYellow).SprintFunc()
	fgHiBlack  = color.New(color.FgHiBlack).SprintFunc()
)

// FileResult is one input file's driver run: its emitted mutants and the
// run totals engine.Driver.Run returned for it.
type FileResult struct {
	Filename string
	Mutants  []engine.Mutant
	Summary  engine.Summary
}

// Results is the whole-invocation result: every processed file plus the
// wall-clock time spent across all of them.
type Results struct {
	Files   []FileResult
	Elapsed time.Duration
}

func (r Results) totals() (emitted, dup, rejected int) {
	for _, f := range r.Files {
		emitted += f.Summary.Emitted
		dup += f.Summary.Duplicates
		rejected += f.Summary.CompileRejected
	}

	return emitted, dup, rejected
}

// Do prints the run-level summary line for Results. This uses the log
// package, so log.Init must be called first.
func Do(results Results) {
	if len(results.Files) == 0 {
		log.Infoln("No input files to process.")

		return
	}

	emitted, dup, rejected := results.totals()
	elapsed := durafmt.Parse(results.Elapsed).LimitFirstN(2)

	log.Infoln("")
	log.Infof("Mutation generation completed in %s\n", elapsed.String())
	log.Infof("Emitted: %s, Duplicate: %s, Compile-rejected: %s\n",
		fgHiGreen(emitted), fgHiYellow(dup), fgRed(rejected))

	for _, f := range results.Files {
		if f.Summary.Emitted == 0 {
			log.Infof("%s: %s\n", f.Filename, fgHiBlack("no mutants emitted"))
		}
	}
}

// Mutant logs one emitted mutant: its ordinal, operator kind, and the
// node it changed.
func Mutant(filename string, m engine.Mutant) {
	log.Infof("%s[%d] %s: node %d, %q -> %q\n",
		filename, m.Index, fgHiGreen(m.Result.Kind), m.Result.MutatedNodeID,
		m.Result.OldText, m.Result.NewText)
}

// WriteFile writes Results as JSON to path, per spec §6's
// "output-directory" file-report behavior.
func WriteFile(path string, results Results) error {
	emitted, dup, rejected := results.totals()

	out := internal.OutputResult{
		MutantsEmitted:  emitted,
		MutantsDup:      dup,
		MutantsRejected: rejected,
		ElapsedSeconds:  results.Elapsed.Seconds(),
		ByKind:          map[string]int{},
	}
	for _, f := range results.Files {
		of := internal.OutputFile{Filename: f.Filename}
		for _, m := range f.Mutants {
			of.Mutants = append(of.Mutants, internal.Mutation{
				Index:       m.Index,
				Kind:        string(m.Result.Kind),
				MutatedNode: m.Result.MutatedNodeID,
				OldText:     m.Result.OldText,
				NewText:     m.Result.NewText,
			})
		}
		out.Files = append(out.Files, of)
		for k, c := range f.Summary.ByKind {
			out.ByKind[string(k)] += c
		}
	}

	jsonResult, err := json.Marshal(out)
	if err != nil {
		return err
	}
	jsonResult = pretty.Pretty(jsonResult)

	//nolint:gosec // path comes from operator-supplied configuration
	return os.WriteFile(path, jsonResult, 0o600)
}
