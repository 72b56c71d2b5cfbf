package merr_test

import (
	"errors"
	"testing"

	"github.com/go-mutagen/mutagen/internal/merr"
)

func TestErrorMessage(t *testing.T) {
	e := merr.New(merr.NoMutableNode, "contract.sol")
	want := "no mutable node: contract.sol"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestWrapMessageIncludesCause(t *testing.T) {
	cause := errors.New("boom")
	e := merr.Wrap(merr.LoadError, "contract.sol", cause)

	want := "load error: contract.sol: boom"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	if !errors.Is(e, cause) {
		t.Error("errors.Is should see through Wrap to the cause")
	}
}

func TestExitCodesAreDistinctAndAssigned(t *testing.T) {
	kinds := []merr.Kind{
		merr.LoadError, merr.LanguageNotRecognized, merr.CompilerAbsent,
		merr.CompilerVersionUnknown, merr.SourceDoesNotCompile, merr.NoMutableNode,
		merr.ConfigMissingKey, merr.ConfigUnsupportedLanguage, merr.ConfigBadExtension,
		merr.ASTTypeMismatch,
	}

	seen := make(map[int]merr.Kind)
	for _, k := range kinds {
		code := merr.New(k, "x").ExitCode()
		if code == 0 {
			t.Errorf("%s has no assigned exit code", k)
		}
		if other, ok := seen[code]; ok {
			t.Errorf("%s and %s share exit code %d", k, other, code)
		}
		seen[code] = k
	}
}
