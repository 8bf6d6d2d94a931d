package staticmap

import (
	"cmp"
	"hash/maphash"
)

// MapValues builds a new map by transforming every value. The new map
// shares the key bijection but owns fresh storage.
func MapValues[K, V, U any](m *Map[K, V], fn func(V) U) *Map[K, U] {
	out := New[K, U](m.codec)
	for i, v := range m.slots {
		out.slots[i] = fn(v)
	}
	return out
}

// MapEntries is MapValues with the key exposed to the transform.
func MapEntries[K, V, U any](m *Map[K, V], fn func(K, V) U) *Map[K, U] {
	out := New[K, U](m.codec)
	for i, v := range m.slots {
		out.slots[i] = fn(m.codec.DelinearizeUnchecked(i), v)
	}
	return out
}

// Equal reports whether two maps hold equal values at every index. Maps
// of different lengths (keys of different cardinality) are never equal.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	if len(a.slots) != len(b.slots) {
		return false
	}
	for i, v := range a.slots {
		if v != b.slots[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[K, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if len(a.slots) != len(b.slots) {
		return false
	}
	for i, v := range a.slots {
		if !eq(v, b.slots[i]) {
			return false
		}
	}
	return true
}

// Compare orders two maps lexicographically by index.
func Compare[K any, V cmp.Ordered](a, b *Map[K, V]) int {
	return CompareFunc(a, b, cmp.Compare[V])
}

// CompareFunc is Compare with a caller-supplied value comparison.
func CompareFunc[K, V1, V2 any](a *Map[K, V1], b *Map[K, V2], compare func(V1, V2) int) int {
	n := min(len(a.slots), len(b.slots))
	for i := 0; i < n; i++ {
		if c := compare(a.slots[i], b.slots[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.slots), len(b.slots))
}

// Hash hashes the map's values in index order under the given seed. Two
// maps that are Equal hash identically for the same seed.
func Hash[K any, V comparable](seed maphash.Seed, m *Map[K, V]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, v := range m.slots {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}
