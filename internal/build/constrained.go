//go:build js || wasip1 || tiny

package build

// Constrained marks size-constrained targets where debug output is dropped.
const Constrained = true
