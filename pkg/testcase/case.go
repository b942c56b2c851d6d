// Package testcase defines the case model for the assumptions
// framework: a case is a compiled-in function whose body may
// raise abort signals via pkg/assumption, plus the result and
// configuration types surrounding its execution.
package testcase

import (
	"context"
	"errors"
	"time"
)

// ID uniquely identifies a case.
type ID string

// Func is a case body. A nil return means the case passed; a
// returned error fails it. Raising an abort signal (panicking
// with *abort.Error, normally via pkg/assumption) aborts the
// case without failing it.
type Func func(ctx context.Context) error

// Case describes a single executable case.
type Case struct {
	// ID is the unique case identifier.
	ID ID

	// Name is the human-readable name.
	Name string

	// Description explains what the case checks.
	Description string

	// Tags are free-form labels used for run filtering.
	Tags []string

	// Timeout overrides the runner default when non-zero.
	Timeout time.Duration

	// Run is the case body.
	Run Func
}

// Validate checks that the case is well-formed enough to
// register and execute.
func (c *Case) Validate() error {
	if c.ID == "" {
		return errors.New("case ID must not be empty")
	}
	if c.Run == nil {
		return errors.New("case Run function must not be nil")
	}
	return nil
}

// HasTag reports whether the case carries the given tag.
func (c *Case) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
