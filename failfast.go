package diag

import (
	"os"

	"github.com/Station-Manager/diag/format"
)

// Assert terminates the process when cond is false. It is active in debug
// builds only; release builds skip the check entirely.
func (s *Service) Assert(cond bool) {
	if cond || !s.assertionsEnabled() {
		return
	}
	s.fail(Caller(1), defaultFailMessage)
}

// Assertf is Assert with a custom message.
func (s *Service) Assertf(cond bool, template string, args ...any) {
	if cond || !s.assertionsEnabled() {
		return
	}
	s.fail(Caller(1), format.Format(template, args...))
}

// Check terminates the process when cond is false, in every build.
func (s *Service) Check(cond bool) {
	if cond {
		return
	}
	s.fail(Caller(1), defaultFailMessage)
}

// Checkf is Check with a custom message.
func (s *Service) Checkf(cond bool, template string, args ...any) {
	if cond {
		return
	}
	s.fail(Caller(1), format.Format(template, args...))
}

// Unreachable marks a code path that must never run. It always terminates.
func (s *Service) Unreachable() {
	s.fail(Caller(1), defaultFailMessage)
}

// Unreachablef is Unreachable with a custom message.
func (s *Service) Unreachablef(template string, args ...any) {
	s.fail(Caller(1), format.Format(template, args...))
}

// Fail reports a failure at an explicitly supplied location and terminates.
func (s *Service) Fail(loc Location, template string, args ...any) {
	s.fail(loc, format.Format(template, args...))
}

// fail writes the error line, bypassing the level threshold, then exits.
func (s *Service) fail(loc Location, msg string) {
	line := format.Format(failTemplate, loc.File, loc.Line, loc.Function, msg)

	code := AbortExitCode
	if sk := s.load(); sk != nil {
		s.writeLine(sk.out, SeverityError.Label(), SeverityError.Color(), line, true)
		code = sk.exitCode
	} else {
		_, _ = stderrSink.Write([]byte(SeverityError.Label() + line + "\n"))
	}

	s.exit(code)
}

func (s *Service) exit(code int) {
	if s != nil && s.Exit != nil {
		s.Exit(code)
		return
	}
	os.Exit(code)
}
