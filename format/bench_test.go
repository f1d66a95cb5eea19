package format

import "testing"

func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Format("Hello {}, you are {} years old", "Ada", i)
	}
}

func BenchmarkEscape_Printable(b *testing.B) {
	in := []byte("the quick brown fox jumps over the lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Escape(in)
	}
}

func BenchmarkEscape_Binary(b *testing.B) {
	in := make([]byte, 64)
	for i := range in {
		in[i] = byte(i * 7)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Escape(in)
	}
}
