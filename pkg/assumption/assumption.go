// Package assumption supports conditional test-case execution
// based on assumptions. In direct contrast to a failed check, an
// unmet assumption does not fail the case; it raises an abort
// signal that the runner turns into an aborted (not failed)
// result. Assumptions are typically used when it makes no sense
// to continue a case, for example when something the case
// depends on is missing from the current environment.
//
// Every operation accepts an optional trailing message: nothing,
// a literal string (optionally with format arguments), or a lazy
// func() string. Lazy messages are only evaluated when the
// assumption actually fails, so expensive message construction
// is never paid on the success path.
//
// The signal is raised as a panic carrying *abort.Error; the
// runner in pkg/runner recovers it. Inside plain go test
// functions, use pkg/assume instead, which maps the same
// operations onto testing.TB skips.
package assumption

import (
	"digital.vasic.assumptions/pkg/abort"
)

// Default messages for the boolean checks.
const (
	notTrueMessage  = "assumption is not true"
	notFalseMessage = "assumption is not false"
)

// True validates that the assumption holds. It raises an abort
// signal when the assumption is false and returns normally
// otherwise.
func True(assumption bool, msgAndArgs ...any) {
	if assumption {
		return
	}
	panic(abort.New(abort.Message(notTrueMessage, msgAndArgs...)))
}

// TrueFunc is True with a lazily evaluated assumption.
func TrueFunc(assumption func() bool, msgAndArgs ...any) {
	True(assumption(), msgAndArgs...)
}

// False validates that the assumption does not hold. It raises
// an abort signal when the assumption is true and returns
// normally otherwise.
func False(assumption bool, msgAndArgs ...any) {
	if !assumption {
		return
	}
	panic(abort.New(abort.Message(notFalseMessage, msgAndArgs...)))
}

// FalseFunc is False with a lazily evaluated assumption.
func FalseFunc(assumption func() bool, msgAndArgs ...any) {
	False(assumption(), msgAndArgs...)
}
