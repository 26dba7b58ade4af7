package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff     Level = iota // no tracing
	LevelError                // failures only
	LevelCommand              // driver + command boundaries
	LevelEntry                // per-entry events
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelCommand:
		return "command"
	case LevelEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "command":
		return LevelCommand, nil
	case "entry":
		return LevelEntry, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|command|entry)", s)
	}
}

// ShouldEmit reports whether events of scope pass at this level. KindError
// events skip this check.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelCommand:
		return scope <= ScopeCommand
	case LevelEntry:
		return true
	default:
		return false
	}
}
