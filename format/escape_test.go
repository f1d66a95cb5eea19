package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"printable", "Hello, World! ~", "Hello, World! ~"},
		{"control byte", "A\x01B", "A0x01B"},
		{"newline and tab", "a\n\tb", "a0x0A0x09b"},
		{"delete", "\x7f", "0x7F"},
		{"escape sequence", "\x1b[31mred", "0x1B[31mred"},
		{"high bytes", "\xff\x80", "0xFF0x80"},
		{"nul", "\x00", "0x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
			assert.Equal(t, tt.want, Escape([]byte(tt.in)))
		})
	}
}

func TestEscapeIdempotentOnPrintable(t *testing.T) {
	all := make([]byte, 0, 95)
	for c := byte(32); c <= 126; c++ {
		all = append(all, c)
	}
	once := Escape(all)
	assert.Equal(t, string(all), once)
	assert.Equal(t, once, Escape(once))
}

func TestEscapeOutputIsPrintable(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}
	out := Escape(in)
	for i := 0; i < len(out); i++ {
		assert.True(t, out[i] >= 32 && out[i] <= 126, "byte %d is 0x%02x", i, out[i])
	}
	// 95 printable bytes pass through, 161 others become four bytes each.
	assert.Len(t, out, 95+161*4)
}

func TestAppendEscaped(t *testing.T) {
	dst := []byte("prefix:")
	dst = AppendEscaped(dst, []byte{'o', 'k', 0x02})
	assert.Equal(t, "prefix:ok0x02", string(dst))
}
