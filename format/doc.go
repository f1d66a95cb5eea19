// Package format renders positional "{}" templates from a closed set of
// value kinds, and escapes raw bytes for display on a terminal.
//
// Formatting never panics. Format returns the InvalidFormat sentinel on any
// template/argument mismatch; Render reports the same conditions as errors.
//
//	format.Format("Hello {}, you are {} years old", "Ada", 36)
//	// "Hello Ada, you are 36 years old"
//
//	format.Escape("A\x01B")
//	// "A0x01B"
package format
