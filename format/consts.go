package format

const (
	// Placeholder is the token replaced by one argument.
	Placeholder = "{}"
	// NullPointer is the rendering of any nil pointer or nil interface.
	NullPointer = "[nullptr]"
	// InvalidFormat is returned by Format when rendering fails.
	InvalidFormat = "[invalid fmt]"
	// EscapeMarker precedes the two hex digits of an escaped byte.
	EscapeMarker = "0x"

	hexDigits       = "0123456789ABCDEF"
	maxPointerDepth = 8
)
