// Package build exposes the compile-time switches the rest of the module
// branches on. The values are chosen by build constraints only.
package build

// DebugLogging reports whether debug-level console output is compiled in.
func DebugLogging() bool {
	return Debug && !Constrained
}

// Name returns the build flavour as shown by diagctl version.
func Name() string {
	if Debug {
		return "debug"
	}
	return "release"
}
