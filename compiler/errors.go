package compiler

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	// ErrShape marks a declaration that cannot be a struct at all.
	ErrShape = errors.New("invalid struct")
	// ErrSize marks a missing or invalid array size declaration.
	ErrSize = errors.New("invalid size")
	// ErrDependency marks a missing or circular reference between structs.
	ErrDependency = errors.New("invalid dependency")
)

// Error is a diagnostic tied to the declaration that caused it.
type Error struct {
	Kind error
	Msg  string
	Pos  token.Position
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func errorf(kind error, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos}
}
