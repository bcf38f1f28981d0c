package immutable

// A Map is a fixed set of key/value pairs.
//
// Like List, it copies its argument at construction and returns fresh
// copies from every accessor that exposes the backing data.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// MapOf returns a Map holding the entries of src (copied).
func MapOf[K comparable, V any](src map[K]V) Map[K, V] {
	dst := make(map[K]V, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return Map[K, V]{entries: dst}
}

// Len returns the number of entries.
func (mapp Map[K, V]) Len() int {
	return len(mapp.entries)
}

// Get returns the value for key and true, or the zero value of V and
// false if key is not in the map.
func (mapp Map[K, V]) Get(key K) (V, bool) {
	value, ok := mapp.entries[key]
	return value, ok
}

// Has returns true if key is in the map.
func (mapp Map[K, V]) Has(key K) bool {
	_, ok := mapp.entries[key]
	return ok
}

// Keys returns the keys as a plain slice, in undefined order.
func (mapp Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(mapp.entries))
	for key := range mapp.entries {
		keys = append(keys, key)
	}

	return keys
}

// Values returns the values as a plain slice, in undefined order.
func (mapp Map[K, V]) Values() []V {
	values := make([]V, 0, len(mapp.entries))
	for _, value := range mapp.entries {
		values = append(values, value)
	}

	return values
}

// All returns a copy of the entries as a plain map.
func (mapp Map[K, V]) All() map[K]V {
	dst := make(map[K]V, len(mapp.entries))
	for key, value := range mapp.entries {
		dst[key] = value
	}

	return dst
}

// With returns a new Map with key set to value. The receiver is unchanged.
func (mapp Map[K, V]) With(key K, value V) Map[K, V] {
	next := mapp.All()
	next[key] = value

	return Map[K, V]{entries: next}
}

// Without returns a new Map with key removed. The receiver is unchanged.
func (mapp Map[K, V]) Without(key K) Map[K, V] {
	next := mapp.All()
	delete(next, key)

	return Map[K, V]{entries: next}
}
