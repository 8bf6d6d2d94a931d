package linearize

// Linearized is a pre-computed, verified-in-range index for the key type
// K. Indexing a map by key re-derives the index on every access; when the
// same key is used repeatedly, caching the index with Cache skips that
// work while keeping the in-range guarantee in the type.
//
// The phantom type parameter ties the index to the key type it was
// computed for, so an index cached for one type cannot address a map
// keyed by another.
type Linearized[K any] struct {
	index int
	_     [0]*K
}

// Cache linearizes key once and wraps the result. The wrapped index is
// guaranteed to be below b.Length() for the life of the value.
func Cache[K any](b Bijection[K], key K) Linearized[K] {
	return Linearized[K]{index: b.Linearize(key)}
}

// CacheRaw wraps an already-computed index without verification. The
// caller must guarantee index < Length for K's bijection; this is the
// unchecked escape hatch and generic code should prefer Cache.
func CacheRaw[K any](index int) Linearized[K] {
	return Linearized[K]{index: index}
}

// Index returns the cached index.
func (l Linearized[K]) Index() int { return l.index }

// Delinearize recovers the key the index was computed from.
func (l Linearized[K]) Delinearize(b Bijection[K]) K {
	return b.DelinearizeUnchecked(l.index)
}
