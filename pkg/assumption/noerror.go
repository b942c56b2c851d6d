package assumption

import (
	"fmt"

	"digital.vasic.assumptions/pkg/abort"
	"digital.vasic.assumptions/pkg/unrecoverable"
)

// NoError validates that block completes without failing. A
// returned error or a recoverable panic is converted into an
// abort signal carrying the derived message; the original
// failure is discarded, not chained. Unrecoverable panic values
// (see pkg/unrecoverable) are re-raised unchanged, bypassing the
// conversion.
func NoError(block func() error, msgAndArgs ...any) {
	if err := guard(block); err != nil {
		panic(abort.New(abort.Message("", msgAndArgs...)))
	}
}

// NoErrorValue validates that block produces a value without
// failing and returns that value. Failure handling is identical
// to NoError.
func NoErrorValue[T any](block func() (T, error), msgAndArgs ...any) T {
	var value T
	err := guard(func() error {
		var blockErr error
		value, blockErr = block()
		return blockErr
	})
	if err != nil {
		panic(abort.New(abort.Message("", msgAndArgs...)))
	}
	return value
}

// guard runs block, turning a recoverable panic into an error.
// Unrecoverable panics are re-raised from inside the recover.
func guard(block func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			unrecoverable.Rethrow(r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return block()
}
