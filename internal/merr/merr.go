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

// Package merr defines the closed error taxonomy shared by every fatal
// condition mutagen can raise, and the exit-code mapping consumed by
// cmd/mutagen's main.
package merr

import "fmt"

// Kind is one of the fatal error categories a file or configuration can
// raise. Duplicate-mutant and compile-check failures are not Kinds: they
// are recovered locally by the attempts loop in internal/engine.
type Kind int

const (
	// LoadError is an I/O or JSON-parse failure on an input file.
	LoadError Kind = iota
	// LanguageNotRecognized means a file is neither a valid source nor a
	// known AST shape.
	LanguageNotRecognized
	// CompilerAbsent means the external compiler binary could not be found.
	CompilerAbsent
	// CompilerVersionUnknown means the external compiler's version could
	// not be determined.
	CompilerVersionUnknown
	// SourceDoesNotCompile means the external compiler rejected the input.
	SourceDoesNotCompile
	// NoMutableNode means every requested operator counted zero eligible
	// nodes in the file.
	NoMutableNode
	// ConfigMissingKey means a required key is absent from a .mgnx file.
	ConfigMissingKey
	// ConfigUnsupportedLanguage means the configured language string isn't
	// one mutagen knows.
	ConfigUnsupportedLanguage
	// ConfigBadExtension means a configuration path has an extension that
	// doesn't match its declared language.
	ConfigBadExtension
	// ASTTypeMismatch means a SuperAST was handed to a delegate built for
	// the other language.
	ASTTypeMismatch
)

func (k Kind) String() string {
	switch k {
	case LoadError:
		return "load error"
	case LanguageNotRecognized:
		return "language not recognized"
	case CompilerAbsent:
		return "compiler absent"
	case CompilerVersionUnknown:
		return "compiler version unknown"
	case SourceDoesNotCompile:
		return "source does not compile"
	case NoMutableNode:
		return "no mutable node"
	case ConfigMissingKey:
		return "configuration missing key"
	case ConfigUnsupportedLanguage:
		return "configuration unsupported language"
	case ConfigBadExtension:
		return "configuration bad extension"
	case ASTTypeMismatch:
		return "ast type mismatch"
	default:
		panic("this should not happen")
	}
}

// exitCodes mirrors gremlins/internal/execution's ErrorType -> exit code
// table, extended to mutagen's own Kind taxonomy.
var exitCodes = map[Kind]int{
	LoadError:                 10,
	LanguageNotRecognized:     11,
	CompilerAbsent:            12,
	CompilerVersionUnknown:    13,
	SourceDoesNotCompile:      14,
	NoMutableNode:             15,
	ConfigMissingKey:          16,
	ConfigUnsupportedLanguage: 17,
	ConfigBadExtension:        18,
	ASTTypeMismatch:           19,
}

// Error is a fatal, user-visible failure naming its Kind and the offending
// file or configuration key.
type Error struct {
	Kind   Kind
	Target string
	Cause  error
}

// New builds an *Error with no wrapped cause.
func New(k Kind, target string) *Error {
	return &Error{Kind: k, Target: target}
}

// Wrap builds an *Error wrapping a lower-level cause.
func Wrap(k Kind, target string, cause error) *Error {
	return &Error{Kind: k, Target: target, Cause: cause}
}

// Error implements the error interface: "<kind>: <target>: <cause>".
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Target, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Target)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit status associated with e.Kind.
func (e *Error) ExitCode() int {
	return exitCodes[e.Kind]
}
