package callconv

import (
	"fmt"
	"strconv"
)

// ErrorKind enumerates lookup failures.
type ErrorKind uint8

const (
	// UnknownConvention indicates a name that is not in the table.
	UnknownConvention ErrorKind = iota + 1
	// UnrecognizedCode indicates a numeric code no table entry carries.
	UnrecognizedCode
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownConvention:
		return "unknown calling convention"
	case UnrecognizedCode:
		return "unrecognized calling convention code"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is returned by every failing lookup.
type Error struct {
	Kind ErrorKind
	Name string // for UnknownConvention
	Code Code   // for UnrecognizedCode
	Err  error  // narrowing failure of a foreign integer
}

// Sentinels for errors.Is; only Kind is compared.
var (
	ErrUnknownConvention = &Error{Kind: UnknownConvention}
	ErrUnrecognizedCode  = &Error{Kind: UnrecognizedCode}
)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case UnknownConvention:
		return fmt.Sprintf("%s %q", e.Kind, e.Name)
	case UnrecognizedCode:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("%s %d", e.Kind, e.Code)
	default:
		return fmt.Sprintf("callconv error kind=%d", e.Kind)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}
