// Package unrecoverable enumerates the panic categories that
// must always be re-raised unchanged instead of being converted
// into an abort signal. The set is explicit: only values the Go
// runtime itself produces for platform-fatal conditions (memory
// exhaustion, nil dereference, slice bounds, stack-class
// failures) qualify.
package unrecoverable

import "runtime"

// Is reports whether the recovered panic value v belongs to an
// unrecoverable category.
func Is(v any) bool {
	switch v.(type) {
	case runtime.Error:
		return true
	}
	return false
}

// Rethrow re-panics with v when it is unrecoverable and returns
// normally otherwise. Callers invoke it first thing inside a
// recover block, before any conversion or suppression.
func Rethrow(v any) {
	if Is(v) {
		panic(v)
	}
}
