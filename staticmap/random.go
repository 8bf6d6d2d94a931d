package staticmap

import (
	"math"
	"math/rand/v2"

	"github.com/arthur-debert/linearmap/linearize"
)

// NewFromRand builds a map by drawing one independent value per key from
// sample, in ascending index order.
func NewFromRand[K, V any](codec linearize.Bijection[K], rng *rand.Rand, sample func(*rand.Rand) V) *Map[K, V] {
	return NewFromFunc(codec, func(K) V { return sample(rng) })
}

// SizeHint scales a per-element size hint by the key cardinality,
// saturating at math.MaxInt instead of overflowing. Randomized and
// fuzzing harnesses use it to budget input for a whole map.
func SizeHint[K any](codec linearize.Bijection[K], perElement int) int {
	if perElement <= 0 {
		return 0
	}
	length := codec.Length()
	if length != 0 && perElement > math.MaxInt/length {
		return math.MaxInt
	}
	return perElement * length
}
