package linearize

import "fmt"

// enumBijection maps a fixed set of values to their declared positions.
// Lookups in both directions are O(1): a slice by position and a reverse
// index by value.
type enumBijection[K comparable] struct {
	values  []K
	indexes map[K]int
}

// Enum returns the bijection for a fixed enumeration. Each value maps to
// its position in the argument list, so the argument order is the
// enumeration order and is part of the resulting bijection's contract.
//
// Enum panics if the same value appears twice; that is a construction-time
// programming error, not a runtime condition.
func Enum[K comparable](values ...K) Bijection[K] {
	indexes := make(map[K]int, len(values))
	for i, v := range values {
		if _, dup := indexes[v]; dup {
			panic(fmt.Sprintf("linearize: duplicate enum value %v", v))
		}
		indexes[v] = i
	}
	return enumBijection[K]{
		values:  append([]K(nil), values...),
		indexes: indexes,
	}
}

func (b enumBijection[K]) Length() int { return len(b.values) }

func (b enumBijection[K]) Linearize(key K) int {
	i, ok := b.indexes[key]
	if !ok {
		panic(fmt.Sprintf("linearize: value %v is not a member of the enumeration", key))
	}
	return i
}

func (b enumBijection[K]) DelinearizeUnchecked(index int) K { return b.values[index] }
