package staticmap

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/linearmap/linearize"
)

// Entry is one key/value pair of a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an array-backed total map from K to V. Every possible key has a
// slot; reads and writes are direct slice indexing after linearizing the
// key. The zero Map is not usable; construct one with New, NewFromFunc,
// NewFromSlice, Wrap, NewFromEntries, or a Builder.
type Map[K, V any] struct {
	codec linearize.Bijection[K]
	slots []V
}

// New returns a map with every slot holding the zero value of V.
func New[K, V any](codec linearize.Bijection[K]) *Map[K, V] {
	return &Map[K, V]{codec: codec, slots: make([]V, codec.Length())}
}

// NewFromFunc builds a map by calling fn exactly once per key, in
// ascending index order. fn must be callable for every key and must not
// depend on being called in any other order.
func NewFromFunc[K, V any](codec linearize.Bijection[K], fn func(K) V) *Map[K, V] {
	m := New[K, V](codec)
	for i := range m.slots {
		m.slots[i] = fn(codec.DelinearizeUnchecked(i))
	}
	return m
}

// NewFromSlice copies values into a new map. The slice length must equal
// the key cardinality exactly; otherwise a *LengthError is returned.
func NewFromSlice[K, V any](codec linearize.Bijection[K], values []V) (*Map[K, V], error) {
	if len(values) != codec.Length() {
		return nil, &LengthError{Want: codec.Length(), Got: len(values)}
	}
	m := New[K, V](codec)
	copy(m.slots, values)
	return m, nil
}

// Wrap builds a map around the caller's buffer without copying: the map
// and the buffer alias the same storage from then on. The buffer length
// must equal the key cardinality exactly; otherwise a *LengthError is
// returned.
func Wrap[K, V any](codec linearize.Bijection[K], values []V) (*Map[K, V], error) {
	if len(values) != codec.Length() {
		return nil, &LengthError{Want: codec.Length(), Got: len(values)}
	}
	return &Map[K, V]{codec: codec, slots: values}, nil
}

// NewFromEntries zero-fills a map and then assigns the listed entries.
// Keys absent from entries keep the zero value; a key listed twice keeps
// its last value.
func NewFromEntries[K, V any](codec linearize.Bijection[K], entries []Entry[K, V]) *Map[K, V] {
	m := New[K, V](codec)
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Codec returns the key type's bijection.
func (m *Map[K, V]) Codec() linearize.Bijection[K] { return m.codec }

// Len returns the number of slots, which is the key type's cardinality.
func (m *Map[K, V]) Len() int { return len(m.slots) }

// Get returns the value stored for key. Indexing by key re-derives the
// index on every call; hot loops over a fixed key should cache it with
// linearize.Cache and use GetAt.
func (m *Map[K, V]) Get(key K) V { return m.slots[m.codec.Linearize(key)] }

// Ptr returns a pointer to the slot for key, for in-place reads and
// writes.
func (m *Map[K, V]) Ptr(key K) *V { return &m.slots[m.codec.Linearize(key)] }

// Set stores value for key.
func (m *Map[K, V]) Set(key K, value V) { m.slots[m.codec.Linearize(key)] = value }

// GetAt returns the value at a pre-computed index.
func (m *Map[K, V]) GetAt(key linearize.Linearized[K]) V { return m.slots[key.Index()] }

// PtrAt returns a pointer to the slot at a pre-computed index.
func (m *Map[K, V]) PtrAt(key linearize.Linearized[K]) *V { return &m.slots[key.Index()] }

// SetAt stores value at a pre-computed index.
func (m *Map[K, V]) SetAt(key linearize.Linearized[K], value V) { m.slots[key.Index()] = value }

// Slice returns the backing array. The caller and the map alias the same
// storage; element writes through either are visible to both.
func (m *Map[K, V]) Slice() []V { return m.slots }

// Clear resets every slot to the zero value of V.
func (m *Map[K, V]) Clear() {
	var zero V
	for i := range m.slots {
		m.slots[i] = zero
	}
}

// Fill sets every slot to value.
func (m *Map[K, V]) Fill(value V) {
	for i := range m.slots {
		m.slots[i] = value
	}
}

// Keys returns an iterator over every key in ascending index order.
func (m *Map[K, V]) Keys() *linearize.Iter[K] { return linearize.Values(m.codec) }

// String renders the map as a key→value mapping in ascending index order,
// not as a bare array.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for i, v := range m.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", m.codec.DelinearizeUnchecked(i), v)
	}
	sb.WriteByte(']')
	return sb.String()
}
