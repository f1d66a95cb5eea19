// Package idict provides a hash/equality policy over text keys that ignores
// ASCII letter case, and a dictionary parameterized by it.
package idict

import "github.com/cespare/xxhash/v2"

// foldChunk is the stack buffer size used while hashing.
const foldChunk = 64

// Hash returns the xxhash of key after ASCII lower-casing. Keys that are
// Equal always hash alike.
func Hash[K ~string](key K) uint64 {
	d := xxhash.New()
	var buf [foldChunk]byte
	n := 0
	for i := 0; i < len(key); i++ {
		buf[n] = lower(key[i])
		n++
		if n == foldChunk {
			_, _ = d.Write(buf[:])
			n = 0
		}
	}
	if n > 0 {
		_, _ = d.Write(buf[:n])
	}
	return d.Sum64()
}

// Equal reports whether a and b match modulo ASCII case. Keys of different
// length never match.
func Equal[K ~string](a, b K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
