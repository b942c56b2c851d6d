package assumption

// That executes block, but only if the assumption holds. Unlike
// the other operations it never aborts: when the assumption does
// not hold it does nothing and returns nil. When the assumption
// holds, any error returned by block is propagated to the caller
// unchanged in identity and treated as a regular case failure.
// Panics from block are left alone.
func That(assumption bool, block func() error) error {
	if !assumption {
		return nil
	}
	return block()
}

// ThatFunc is That with a lazily evaluated assumption.
func ThatFunc(assumption func() bool, block func() error) error {
	return That(assumption(), block)
}
