// Package assume maps the assumption operations onto the
// standard testing package: an unmet assumption skips the
// surrounding test instead of failing it, which is Go's native
// rendering of the aborted-versus-failed distinction. Use it
// inside ordinary go test functions; case bodies run under
// pkg/runner use pkg/assumption instead.
package assume

import (
	"fmt"

	"digital.vasic.assumptions/pkg/abort"
	"digital.vasic.assumptions/pkg/unrecoverable"
)

// TestingT is the subset of *testing.T these helpers need.
type TestingT interface {
	Helper()
	Skip(args ...any)
}

const (
	notTrueMessage  = "assumption is not true"
	notFalseMessage = "assumption is not false"
)

// True skips the test when the assumption is false.
func True(t TestingT, assumption bool, msgAndArgs ...any) {
	t.Helper()
	if assumption {
		return
	}
	t.Skip(abort.Message(notTrueMessage, msgAndArgs...))
}

// TrueFunc is True with a lazily evaluated assumption.
func TrueFunc(t TestingT, assumption func() bool, msgAndArgs ...any) {
	t.Helper()
	True(t, assumption(), msgAndArgs...)
}

// False skips the test when the assumption is true.
func False(t TestingT, assumption bool, msgAndArgs ...any) {
	t.Helper()
	if !assumption {
		return
	}
	t.Skip(abort.Message(notFalseMessage, msgAndArgs...))
}

// FalseFunc is False with a lazily evaluated assumption.
func FalseFunc(t TestingT, assumption func() bool, msgAndArgs ...any) {
	t.Helper()
	False(t, assumption(), msgAndArgs...)
}

// That executes block only if the assumption holds. It never
// skips: when the assumption does not hold it does nothing, and
// when it holds any error from block is returned unchanged so
// the caller can fail the test with it.
func That(t TestingT, assumption bool, block func() error) error {
	t.Helper()
	if !assumption {
		return nil
	}
	return block()
}

// ThatFunc is That with a lazily evaluated assumption.
func ThatFunc(t TestingT, assumption func() bool, block func() error) error {
	t.Helper()
	return That(t, assumption(), block)
}

// NoError skips the test when block returns an error or panics
// recoverably. The original failure is discarded; unrecoverable
// panics are re-raised unchanged.
func NoError(t TestingT, block func() error, msgAndArgs ...any) {
	t.Helper()
	if err := guard(block); err != nil {
		t.Skip(abort.Message("", msgAndArgs...))
	}
}

// NoErrorValue is NoError for a value-producing block. It
// returns the produced value when the block succeeds.
func NoErrorValue[T any](t TestingT, block func() (T, error), msgAndArgs ...any) T {
	t.Helper()
	var value T
	err := guard(func() error {
		var blockErr error
		value, blockErr = block()
		return blockErr
	})
	if err != nil {
		t.Skip(abort.Message("", msgAndArgs...))
		var zero T
		return zero
	}
	return value
}

func guard(block func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			unrecoverable.Rethrow(r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return block()
}
