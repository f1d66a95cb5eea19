package diag

import (
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"
)

// parseLevel parses a string level into a zerolog.Level.
// An empty string selects zerolog.DebugLevel.
func parseLevel(level string) (zerolog.Level, error) {
	if level == emptyString {
		return zerolog.DebugLevel, nil
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// Location identifies a point in the source: base file name, line and the
// fully qualified enclosing function.
type Location struct {
	File     string
	Line     int
	Function string
}

// Caller returns the location of the function that called Caller when skip
// is zero, of its caller when skip is one, and so on.
func Caller(skip int) Location {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Location{File: unknownFunction, Function: unknownFunction}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	loc := Location{File: filepath.Base(frame.File), Line: frame.Line, Function: frame.Function}
	if loc.File == emptyString || loc.File == "." {
		loc.File = unknownFunction
	}
	if loc.Function == emptyString {
		loc.Function = unknownFunction
	}
	return loc
}

// String renders the location the way failed checks report it.
func (l Location) String() string {
	return l.File + "(" + strconv.Itoa(l.Line) + ") `" + l.Function + "`"
}
