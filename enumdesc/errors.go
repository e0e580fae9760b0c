package enumdesc

import (
	"errors"
	"fmt"
)

// ErrUnreachable is matched by every *UnreachableError.
var ErrUnreachable = errors.New("enumdesc: unreachable input")

// InputKind tells which direction of a lookup failed.
type InputKind int

const (
	InputDescription InputKind = iota
	InputValue
)

// UnreachableError reports a lookup for input outside the closed vocabulary
// of an enum type.
type UnreachableError struct {
	Type  string
	Input string
	Kind  InputKind
}

func (e *UnreachableError) Error() string {
	if e.Kind == InputValue {
		return fmt.Sprintf("enumdesc: %s has no member with value %s", e.Type, e.Input)
	}
	return fmt.Sprintf("enumdesc: %s has no member described as %q", e.Type, e.Input)
}

// Is reports whether target is ErrUnreachable.
func (e *UnreachableError) Is(target error) bool {
	return target == ErrUnreachable
}

// UnknownDescription returns the error raised when text matches no entry.
func UnknownDescription(typeName, text string) *UnreachableError {
	return &UnreachableError{Type: typeName, Input: text, Kind: InputDescription}
}

// Integer is satisfied by every enum type with an integer underlying type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// UnknownValue returns the error raised when v has no forward mapping.
func UnknownValue[V Integer](typeName string, v V) *UnreachableError {
	// %d never consults a String method.
	return &UnreachableError{Type: typeName, Input: fmt.Sprintf("%d", v), Kind: InputValue}
}
