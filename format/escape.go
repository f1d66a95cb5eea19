package format

// Escape renders v with every byte outside the printable ASCII range
// (32..126) replaced by EscapeMarker and two uppercase hex digits. It works
// on arbitrary binary content.
func Escape[T ~string | ~[]byte](v T) string {
	if !needsEscape(v) {
		return string(v)
	}
	return string(appendEscaped(make([]byte, 0, len(v)+len(v)/2), v))
}

// AppendEscaped appends the escaped form of src to dst.
func AppendEscaped(dst, src []byte) []byte {
	return appendEscaped(dst, src)
}

// Escaped is a byte buffer that renders escaped when passed to Format.
type Escaped []byte

func (e Escaped) String() string {
	return Escape(e)
}

func appendEscaped[T ~string | ~[]byte](dst []byte, src T) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		if printable(c) {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, EscapeMarker...)
		dst = append(dst, hexDigits[c>>4], hexDigits[c&0x0F])
	}
	return dst
}

func needsEscape[T ~string | ~[]byte](v T) bool {
	for i := 0; i < len(v); i++ {
		if !printable(v[i]) {
			return true
		}
	}
	return false
}

func printable(c byte) bool {
	return c >= 32 && c <= 126
}
