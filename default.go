package diag

import (
	"github.com/Station-Manager/diag/format"
	"go.uber.org/atomic"
)

var std atomic.Pointer[Service]

func init() {
	s := NewService(nil)
	_ = s.Initialize()
	std.Store(s)
}

// Default returns the process-wide Service used by the package functions.
// It writes to os.Stdout with coloring enabled.
func Default() *Service {
	return std.Load()
}

// SetDefault replaces the process-wide Service. A nil s is ignored.
func SetDefault(s *Service) {
	if s == nil {
		return
	}
	std.Store(s)
}

// SetColoringEnabled switches ANSI sequences on the default Service.
func SetColoringEnabled(enabled bool) {
	std.Load().SetColoringEnabled(enabled)
}

func Debug(template string, args ...any) {
	std.Load().Debug(template, args...)
}

func DebugColored(color Color, template string, args ...any) {
	std.Load().DebugColored(color, template, args...)
}

func Print(template string, args ...any) {
	std.Load().Print(template, args...)
}

func Println(template string, args ...any) {
	std.Load().Println(template, args...)
}

func Log(template string, args ...any) {
	std.Load().Log(template, args...)
}

func Success(template string, args ...any) {
	std.Load().Success(template, args...)
}

func Warn(template string, args ...any) {
	std.Load().Warn(template, args...)
}

func Error(template string, args ...any) {
	std.Load().Error(template, args...)
}

// Assert checks cond on the default Service in debug builds.
func Assert(cond bool) {
	s := std.Load()
	if cond || !s.assertionsEnabled() {
		return
	}
	s.fail(Caller(1), defaultFailMessage)
}

func Assertf(cond bool, template string, args ...any) {
	s := std.Load()
	if cond || !s.assertionsEnabled() {
		return
	}
	s.fail(Caller(1), format.Format(template, args...))
}

// Check checks cond on the default Service in every build.
func Check(cond bool) {
	if cond {
		return
	}
	std.Load().fail(Caller(1), defaultFailMessage)
}

func Checkf(cond bool, template string, args ...any) {
	if cond {
		return
	}
	std.Load().fail(Caller(1), format.Format(template, args...))
}

func Unreachable() {
	std.Load().fail(Caller(1), defaultFailMessage)
}

func Unreachablef(template string, args ...any) {
	std.Load().fail(Caller(1), format.Format(template, args...))
}
