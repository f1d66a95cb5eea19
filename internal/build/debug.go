//go:build !release

package build

// Debug is true unless the module is built with the release tag.
const Debug = true
