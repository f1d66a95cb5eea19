package idict

import "iter"

type entry[K ~string, V any] struct {
	key   K
	value V
}

// Dict maps case-insensitive keys to values. Entries are bucketed by Hash and
// told apart by Equal. The zero value is ready to use. A Dict is not safe for
// concurrent writes.
type Dict[K ~string, V any] struct {
	buckets map[uint64][]entry[K, V]
	n       int
}

// New returns an empty Dict with room for size entries.
func New[K ~string, V any](size int) *Dict[K, V] {
	return &Dict[K, V]{buckets: make(map[uint64][]entry[K, V], size)}
}

// Set stores value under key. An existing entry that matches key keeps its
// original spelling and gets the new value.
func (d *Dict[K, V]) Set(key K, value V) {
	if d.buckets == nil {
		d.buckets = make(map[uint64][]entry[K, V])
	}
	h := Hash(key)
	bucket := d.buckets[h]
	for i := range bucket {
		if Equal(bucket[i].key, key) {
			bucket[i].value = value
			return
		}
	}
	d.buckets[h] = append(bucket, entry[K, V]{key: key, value: value})
	d.n++
}

// Get returns the value stored under any spelling of key.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	if e := d.find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Key returns the spelling under which key was first stored.
func (d *Dict[K, V]) Key(key K) (K, bool) {
	if e := d.find(key); e != nil {
		return e.key, true
	}
	var zero K
	return zero, false
}

// Has reports whether any spelling of key is present.
func (d *Dict[K, V]) Has(key K) bool {
	return d.find(key) != nil
}

// Delete removes key and reports whether it was present.
func (d *Dict[K, V]) Delete(key K) bool {
	if d.buckets == nil {
		return false
	}
	h := Hash(key)
	bucket := d.buckets[h]
	for i := range bucket {
		if !Equal(bucket[i].key, key) {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(d.buckets, h)
		} else {
			d.buckets[h] = bucket
		}
		d.n--
		return true
	}
	return false
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int {
	return d.n
}

// All iterates over the entries in unspecified order.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range d.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns the stored spellings in unspecified order.
func (d *Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.n)
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}

func (d *Dict[K, V]) find(key K) *entry[K, V] {
	if d.buckets == nil {
		return nil
	}
	bucket := d.buckets[Hash(key)]
	for i := range bucket {
		if Equal(bucket[i].key, key) {
			return &bucket[i]
		}
	}
	return nil
}
