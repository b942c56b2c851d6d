package abort

import (
	"fmt"
	"strings"
)

// DefaultMessage is the abort message used when no usable
// message text was supplied.
const DefaultMessage = "Assumption failed"

// messagePrefix precedes every non-blank supplied message.
const messagePrefix = "Assumption failed: "

// Message derives the full abort message. msgAndArgs may be
// empty, a literal string (optionally followed by format
// arguments), or a single func() string evaluated lazily; when
// empty, fallback is used instead. A resolved message that is
// empty or whitespace-only yields DefaultMessage; anything else
// is prefixed with "Assumption failed: ".
func Message(fallback string, msgAndArgs ...any) string {
	message := resolve(fallback, msgAndArgs)
	if strings.TrimSpace(message) == "" {
		return DefaultMessage
	}
	return messagePrefix + message
}

// resolve renders msgAndArgs into plain message text. Lazy
// suppliers are only ever invoked here, on the abort path.
func resolve(fallback string, msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return fallback
	case 1:
		switch m := msgAndArgs[0].(type) {
		case nil:
			return ""
		case string:
			return m
		case func() string:
			return m()
		default:
			return fmt.Sprintf("%+v", m)
		}
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}
