package linearize

// Bijection describes a key type K whose values are in one-to-one
// correspondence with the interval [0, Length()).
//
// Implementations must satisfy three laws:
//
//   - Linearize returns a value in [0, Length()) for every reachable K.
//   - DelinearizeUnchecked(Linearize(v)) is observationally equal to v.
//   - Every index in [0, Length()) is the image of exactly one value.
//
// Length() == 0 denotes an uninhabited type; neither function is callable
// with a valid argument in that case.
//
// Bijections are immutable and safe for concurrent use.
type Bijection[K any] interface {
	// Length returns the cardinality of K. It is non-negative and constant
	// for the life of the bijection.
	Length() int

	// Linearize maps a value to its index. It is total over reachable
	// values and never fails.
	Linearize(key K) int

	// DelinearizeUnchecked maps an index back to its value. The index must
	// be in [0, Length()); passing anything else is a contract violation
	// with unspecified results. Use Delinearize when the index is not
	// already known to be valid.
	DelinearizeUnchecked(index int) K
}

// Delinearize is the checked inverse mapping. It returns the value at
// index and true, or the zero value and false if index is outside
// [0, b.Length()).
func Delinearize[K any](b Bijection[K], index int) (K, bool) {
	if index < 0 || index >= b.Length() {
		var zero K
		return zero, false
	}
	return b.DelinearizeUnchecked(index), true
}
