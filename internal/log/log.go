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

// Package log is the single point of textual output for mutagen.
//
// It behaves as a no-op until Init is called, so packages can log freely
// without worrying about test fixtures that never initialise it.
package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	fgRed     = color.New(color.FgRed).SprintFunc()
	fgGreen   = color.New(color.FgGreen).SprintFunc()
	fgHiBlack = color.New(color.FgHiBlack).SprintFunc()
	fgYellow  = color.New(color.FgYellow).SprintFunc()
)

type logger struct {
	out io.Writer
	err io.Writer
}

var (
	mutex    sync.Mutex
	instance *logger
)

// Init installs the package-level writers. Until Init is called, every
// logging call is a no-op. The installed instance is a singleton, matching
// the single stdout/stderr pair a CLI process actually has.
func Init(out, err io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	instance = &logger{out: out, err: err}
}

// Reset removes the current logger instance. Mainly used by tests.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	instance = nil
}

// Infof writes an information line to stdout using format.
func Infof(f string, args ...any) {
	if instance == nil {
		return
	}
	_, _ = fmt.Fprintf(instance.out, f, args...)
}

// Infoln writes an information line to stdout.
func Infoln(a any) {
	if instance == nil {
		return
	}
	_, _ = fmt.Fprintln(instance.out, a)
}

// Errorf writes an error line to stderr using format.
func Errorf(f string, args ...any) {
	if instance == nil {
		return
	}
	msg := fmt.Sprintf(f, args...)
	_, _ = fmt.Fprintf(instance.err, "%s: %s", fgRed("ERROR"), msg)
}

// Errorln writes an error line to stderr.
func Errorln(a any) {
	if instance == nil {
		return
	}
	_, _ = fmt.Fprintf(instance.err, "%s: %s\n", fgRed("ERROR"), a)
}

// Status colors a status word for terminal output: mutants that duplicated
// a prior mutant are grey, mutants that failed a viability check are
// yellow, and everything else (emitted mutants) is green.
func Status(word string, viable bool, duplicate bool) string {
	switch {
	case duplicate:
		return fgHiBlack(word)
	case !viable:
		return fgYellow(word)
	default:
		return fgGreen(word)
	}
}

// Warnf writes a yellow-highlighted warning line to stdout using format.
func Warnf(f string, args ...any) {
	if instance == nil {
		return
	}
	msg := fmt.Sprintf(f, args...)
	_, _ = fmt.Fprintf(instance.out, "%s: %s", fgYellow("WARN"), msg)
}
