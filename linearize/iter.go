package linearize

import "iter"

// Iter enumerates every value of K in ascending index order. It is a
// double-ended, exact-sized cursor over the half-open range [next, end):
// Next consumes from the front, NextBack from the back, and the iterator
// is exhausted once the two meet. An exhausted iterator keeps reporting
// empty. Iterators are not restartable, but Clone duplicates the
// remaining position at any point.
type Iter[K any] struct {
	codec Bijection[K]
	next  int
	end   int
}

// Values returns an iterator over all values of the bijection's key type.
// For an uninhabited type the iterator is empty from the start.
func Values[K any](b Bijection[K]) *Iter[K] {
	return &Iter[K]{codec: b, next: 0, end: b.Length()}
}

// Len returns the number of values not yet consumed from either end.
func (it *Iter[K]) Len() int { return it.end - it.next }

// Next returns the next value from the front, or false when exhausted.
func (it *Iter[K]) Next() (K, bool) {
	if it.next >= it.end {
		var zero K
		return zero, false
	}
	k := it.codec.DelinearizeUnchecked(it.next)
	it.next++
	return k, true
}

// NextBack returns the next value from the back, or false when exhausted.
func (it *Iter[K]) NextBack() (K, bool) {
	if it.next >= it.end {
		var zero K
		return zero, false
	}
	it.end--
	return it.codec.DelinearizeUnchecked(it.end), true
}

// Nth skips n values from the front and returns the one after them. It
// consumes n+1 values on success and everything remaining on failure.
// A negative n counts as failure.
func (it *Iter[K]) Nth(n int) (K, bool) {
	if n < 0 || n >= it.Len() {
		it.next = it.end
		var zero K
		return zero, false
	}
	it.next += n
	return it.Next()
}

// NthBack is Nth from the back.
func (it *Iter[K]) NthBack(n int) (K, bool) {
	if n < 0 || n >= it.Len() {
		it.next = it.end
		var zero K
		return zero, false
	}
	it.end -= n
	return it.NextBack()
}

// Last consumes the iterator and returns its final remaining value, or
// false if it was already exhausted.
func (it *Iter[K]) Last() (K, bool) {
	if it.next >= it.end {
		var zero K
		return zero, false
	}
	k := it.codec.DelinearizeUnchecked(it.end - 1)
	it.next = it.end
	return k, true
}

// Clone returns an independent iterator over the remaining values.
func (it *Iter[K]) Clone() *Iter[K] {
	c := *it
	return &c
}

// All drains the iterator as a range-over-func sequence. Breaking out of
// the range leaves the iterator at its current position.
func (it *Iter[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for {
			k, ok := it.Next()
			if !ok || !yield(k) {
				return
			}
		}
	}
}
