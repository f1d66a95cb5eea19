package diag

// Printer is the severity-tagged output surface of a Service.
// Every method takes a "{}" template and its arguments.
type Printer interface {
	Debug(template string, args ...any)
	Print(template string, args ...any)
	Println(template string, args ...any)
	Log(template string, args ...any)
	Success(template string, args ...any)
	Warn(template string, args ...any)
	Error(template string, args ...any)
}

// Checker groups the fail-fast primitives. A failed check never returns
// control to the caller unless Service.Exit has been replaced.
type Checker interface {
	Assert(cond bool)
	Assertf(cond bool, template string, args ...any)
	Check(cond bool)
	Checkf(cond bool, template string, args ...any)
	Unreachable()
	Unreachablef(template string, args ...any)
}

var (
	_ Printer = (*Service)(nil)
	_ Checker = (*Service)(nil)
)
