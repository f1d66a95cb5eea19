package format

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrMissingPlaceholder is returned when an argument has no placeholder left to fill.
	ErrMissingPlaceholder = errors.New("format: more arguments than placeholders")
	// ErrMissingArgument is returned when placeholders remain after the last argument.
	ErrMissingArgument = errors.New("format: more placeholders than arguments")
	// ErrStringerPanic is wrapped when a String or Error method panics.
	ErrStringerPanic = errors.New("format: text method panicked")
)

// UnsupportedTypeError reports an argument without a text rendering.
type UnsupportedTypeError struct {
	Type  reflect.Type
	Index int // position in the argument list, -1 when unknown
}

func (e *UnsupportedTypeError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Index < 0 {
		return "format: unsupported argument type " + name
	}
	return "format: unsupported argument type " + name + " at index " + strconv.Itoa(e.Index)
}
