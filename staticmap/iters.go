package staticmap

import "iter"

// Iter enumerates a map's entries in ascending index order, yielding each
// key together with a pointer to its slot. It serves both read-only and
// mutating traversal: writing through the yielded pointer updates the map
// in place, and each slot is yielded exactly once.
//
// Like the key iterator it is a double-ended cursor over [next, end);
// once the ends meet it stays exhausted.
type Iter[K, V any] struct {
	m    *Map[K, V]
	next int
	end  int
}

// Iter returns an entry iterator over the map.
func (m *Map[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{m: m, next: 0, end: len(m.slots)}
}

// Len returns the number of entries not yet consumed from either end.
func (it *Iter[K, V]) Len() int { return it.end - it.next }

// Next returns the next entry from the front, or false when exhausted.
func (it *Iter[K, V]) Next() (K, *V, bool) {
	if it.next >= it.end {
		var zero K
		return zero, nil, false
	}
	i := it.next
	it.next++
	return it.m.codec.DelinearizeUnchecked(i), &it.m.slots[i], true
}

// NextBack returns the next entry from the back, or false when exhausted.
func (it *Iter[K, V]) NextBack() (K, *V, bool) {
	if it.next >= it.end {
		var zero K
		return zero, nil, false
	}
	it.end--
	return it.m.codec.DelinearizeUnchecked(it.end), &it.m.slots[it.end], true
}

// Nth skips n entries from the front and returns the one after them.
// A negative n yields nothing and exhausts the iterator.
func (it *Iter[K, V]) Nth(n int) (K, *V, bool) {
	if n < 0 || n >= it.Len() {
		it.next = it.end
		var zero K
		return zero, nil, false
	}
	it.next += n
	return it.Next()
}

// NthBack is Nth from the back.
func (it *Iter[K, V]) NthBack(n int) (K, *V, bool) {
	if n < 0 || n >= it.Len() {
		it.next = it.end
		var zero K
		return zero, nil, false
	}
	it.end -= n
	return it.NextBack()
}

// Last consumes the iterator and returns its final remaining entry, or
// false if it was already exhausted.
func (it *Iter[K, V]) Last() (K, *V, bool) {
	if it.next >= it.end {
		var zero K
		return zero, nil, false
	}
	i := it.end - 1
	it.next = it.end
	return it.m.codec.DelinearizeUnchecked(i), &it.m.slots[i], true
}

// Clone returns an independent cursor over the remaining entries. The
// clone aliases the same map, so pointers yielded by the two cursors may
// address the same slots.
func (it *Iter[K, V]) Clone() *Iter[K, V] {
	c := *it
	return &c
}

// All drains the iterator as a range-over-func sequence of key and slot
// pointer.
func (it *Iter[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Entries enumerates a map's entries by value in ascending index order.
// Values are copied out of the map as they are yielded; later writes to
// the map do not affect entries already consumed.
type Entries[K, V any] struct {
	m    *Map[K, V]
	next int
	end  int
}

// Entries returns a by-value entry iterator over the map.
func (m *Map[K, V]) Entries() *Entries[K, V] {
	return &Entries[K, V]{m: m, next: 0, end: len(m.slots)}
}

// Len returns the number of entries not yet consumed from either end.
func (it *Entries[K, V]) Len() int { return it.end - it.next }

// Next returns the next entry from the front, or false when exhausted.
func (it *Entries[K, V]) Next() (Entry[K, V], bool) {
	if it.next >= it.end {
		return Entry[K, V]{}, false
	}
	i := it.next
	it.next++
	return Entry[K, V]{Key: it.m.codec.DelinearizeUnchecked(i), Value: it.m.slots[i]}, true
}

// NextBack returns the next entry from the back, or false when exhausted.
func (it *Entries[K, V]) NextBack() (Entry[K, V], bool) {
	if it.next >= it.end {
		return Entry[K, V]{}, false
	}
	it.end--
	return Entry[K, V]{Key: it.m.codec.DelinearizeUnchecked(it.end), Value: it.m.slots[it.end]}, true
}

// Nth skips n entries from the front and returns the one after them.
// A negative n yields nothing and exhausts the iterator.
func (it *Entries[K, V]) Nth(n int) (Entry[K, V], bool) {
	if n < 0 || n >= it.Len() {
		it.next = it.end
		return Entry[K, V]{}, false
	}
	it.next += n
	return it.Next()
}

// NthBack is Nth from the back.
func (it *Entries[K, V]) NthBack(n int) (Entry[K, V], bool) {
	if n < 0 || n >= it.Len() {
		it.next = it.end
		return Entry[K, V]{}, false
	}
	it.end -= n
	return it.NextBack()
}

// Last consumes the iterator and returns its final remaining entry, or
// false if it was already exhausted.
func (it *Entries[K, V]) Last() (Entry[K, V], bool) {
	if it.next >= it.end {
		return Entry[K, V]{}, false
	}
	i := it.end - 1
	it.next = it.end
	return Entry[K, V]{Key: it.m.codec.DelinearizeUnchecked(i), Value: it.m.slots[i]}, true
}

// Clone returns an independent cursor over the remaining entries.
func (it *Entries[K, V]) Clone() *Entries[K, V] {
	c := *it
	return &c
}

// All drains the iterator as a range-over-func sequence of key and value.
func (it *Entries[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			e, ok := it.Next()
			if !ok || !yield(e.Key, e.Value) {
				return
			}
		}
	}
}
