package staticmap

import "github.com/arthur-debert/linearmap/linearize"

// CopyMap is a Map restricted by contract to value types that duplicate
// correctly with a flat element copy: types whose values own no sharable
// interior state (numbers, booleans, small value structs of the same).
// The restriction buys a Clone that is a single bulk copy of the backing
// array.
//
// All Map operations are promoted unchanged. Conversions between Map and
// CopyMap are views over the same backing array, not data copies.
type CopyMap[K, V any] struct {
	Map[K, V]
}

// NewCopy returns a copy map with every slot holding the zero value of V.
func NewCopy[K, V any](codec linearize.Bijection[K]) *CopyMap[K, V] {
	return New[K, V](codec).AsCopy()
}

// NewCopyFromFunc is NewFromFunc for a copy map.
func NewCopyFromFunc[K, V any](codec linearize.Bijection[K], fn func(K) V) *CopyMap[K, V] {
	return NewFromFunc(codec, fn).AsCopy()
}

// AsCopy reinterprets the map as a CopyMap. The two share the same
// backing array; only the view header is new. The caller asserts that V
// is flat-copyable.
func (m *Map[K, V]) AsCopy() *CopyMap[K, V] {
	return &CopyMap[K, V]{Map[K, V]{codec: m.codec, slots: m.slots}}
}

// AsMap reinterprets the copy map as a plain Map sharing the same backing
// array.
func (c *CopyMap[K, V]) AsMap() *Map[K, V] {
	return &Map[K, V]{codec: c.codec, slots: c.slots}
}

// Clone duplicates the whole map with one flat copy of the backing array.
func (c *CopyMap[K, V]) Clone() *CopyMap[K, V] {
	slots := make([]V, len(c.slots))
	copy(slots, c.slots)
	return &CopyMap[K, V]{Map[K, V]{codec: c.codec, slots: slots}}
}

// Array returns the backing array. Together with FromArray this is the
// zero-cost reinterpretation between a copy map and its underlying
// fixed-size buffer.
func (c *CopyMap[K, V]) Array() []V { return c.slots }

// FromArray builds a copy map viewing the supplied buffer in place. The
// buffer length must equal the key cardinality exactly; otherwise a
// *LengthError is returned.
func FromArray[K, V any](codec linearize.Bijection[K], values []V) (*CopyMap[K, V], error) {
	m, err := Wrap(codec, values)
	if err != nil {
		return nil, err
	}
	return m.AsCopy(), nil
}
