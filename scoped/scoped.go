// Package scoped temporarily overrides a variable and guarantees the old
// value comes back when the owning scope ends.
//
//	defer scoped.Set(&verbose, true).Restore()
//
// An Override is owned by the scope that created it. It must not be copied;
// go vet reports copies through the embedded noCopy marker.
package scoped

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Override holds the snapshot of a variable taken by Set.
type Override[T any] struct {
	_ noCopy

	target   *T
	saved    T
	restored bool
}

// Set snapshots *target, stores value in it and returns the handle that
// puts the snapshot back. Pair it with defer so every exit path restores.
func Set[T any](target *T, value T) *Override[T] {
	o := &Override[T]{target: target, saved: *target}
	*target = value
	return o
}

// Restore writes the snapshot back. Only the first call has an effect.
func (o *Override[T]) Restore() {
	if o == nil || o.restored {
		return
	}
	*o.target = o.saved
	o.restored = true
}

// Saved returns the value the variable held before the override.
func (o *Override[T]) Saved() T {
	return o.saved
}

// Active reports whether Restore has not run yet.
func (o *Override[T]) Active() bool {
	return o != nil && !o.restored
}

// Run calls fn with *target set to value and restores it afterwards, also
// when fn panics.
func Run[T any](target *T, value T, fn func()) {
	defer Set(target, value).Restore()
	fn()
}

// RunErr is Run for functions returning an error.
func RunErr[T any](target *T, value T, fn func() error) error {
	defer Set(target, value).Restore()
	return fn()
}
