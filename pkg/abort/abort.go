// Package abort defines the signal raised when a test-case
// assumption is not met. An aborted case is deliberately
// distinct from a failed one: the case stops, but the run does
// not count it against the pass rate.
package abort

import "errors"

// Error is the distinguished abort signal. It carries the
// derived human-readable message and nothing else; the failure
// that triggered the abort (if any) is intentionally not
// chained.
type Error struct {
	// Message is the fully derived abort message, including
	// the "Assumption failed" prefix.
	Message string
}

// New creates an abort signal with the given message.
func New(message string) *Error {
	return &Error{Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// IsAborted reports whether err is (or wraps) an abort signal.
func IsAborted(err error) bool {
	if err == nil {
		return false
	}
	var target *Error
	return errors.As(err, &target)
}

// FromPanic extracts an abort signal from a recovered panic
// value. It returns nil, false for any other panic payload.
func FromPanic(v any) (*Error, bool) {
	switch sig := v.(type) {
	case *Error:
		return sig, true
	case error:
		var target *Error
		if errors.As(sig, &target) {
			return target, true
		}
	}
	return nil, false
}
