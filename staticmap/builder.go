package staticmap

import "github.com/arthur-debert/linearmap/linearize"

// Builder assembles a map element by element without tracking which slots
// have been set. It exists for construction sugar and generated code that
// can prove full coverage on its own, typically by enumerating every key
// exactly once.
//
// Finish is only safe to call after every index in [0, Len()) has been
// assigned through SetUnchecked; finishing early or leaving gaps hands
// out a map with unspecified (zero-valued) slots, and the builder does
// not check for it. Callers that cannot guarantee coverage should use
// NewFromFunc instead.
type Builder[K, V any] struct {
	codec linearize.Bijection[K]
	slots []V
}

// NewBuilder returns a builder with every slot unset.
func NewBuilder[K, V any](codec linearize.Bijection[K]) *Builder[K, V] {
	return &Builder[K, V]{codec: codec, slots: make([]V, codec.Length())}
}

// Len returns the number of slots the builder must fill.
func (b *Builder[K, V]) Len() int { return len(b.slots) }

// SetUnchecked assigns the slot at index. The index must be in
// [0, Len()); the builder performs no range or coverage bookkeeping
// beyond the slice bounds themselves.
func (b *Builder[K, V]) SetUnchecked(index int, value V) { b.slots[index] = value }

// Finish hands the assembled storage to a map. The builder must not be
// used afterwards.
func (b *Builder[K, V]) Finish() *Map[K, V] {
	m := &Map[K, V]{codec: b.codec, slots: b.slots}
	b.slots = nil
	return m
}
