//go:build !js && !wasip1 && !tiny

package build

const Constrained = false
