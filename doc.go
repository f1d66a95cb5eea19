// Package diag is a console diagnostics facade: severity-tagged print
// routines with ANSI styling, and fail-fast checks that report a
// source-located error line before terminating the process.
//
// Key features
//   - Positional "{}" templates rendered by the format package
//   - Six severities (debug, plain, log, success, warning, error) with fixed
//     labels and colors; coloring is a per-Service switch
//   - Debug output compiled out of release and size-constrained builds
//   - Assert (debug builds only), Check and Unreachable, all of which abort
//   - One Write per line through a synchronized writer
//
// Typical usage
//
//	diag.Log("listening on {}:{}", host, port)
//	diag.Success("{} records imported", n)
//	diag.Checkf(n >= 0, "negative record count {}", n)
//
// Isolated instances are useful in tests:
//
//	svc := diag.NewService(&diag.Config{NoColor: true})
//	svc.Out = &buf
//	if err := svc.Initialize(); err != nil { panic(err) }
//	svc.Warn("disk at {}%", 91)
package diag
