package linearize

import "fmt"

// VariantSpec describes one variant of a sum composition: its payload
// bijection plus how to recognize and rebuild the variant. Build one with
// Variant or Case.
type VariantSpec[K any] interface {
	variantLength() int
	variantLinearize(key K) (int, bool)
	variantDelinearize(index int) K
}

type variantSpec[K, P any] struct {
	payload Bijection[P]
	wrap    func(P) K
	unwrap  func(K) (P, bool)
}

// Variant binds a payload-carrying variant of the union type K to its
// payload bijection. unwrap reports whether the given value is this
// variant and, if so, yields the payload; wrap rebuilds the variant from a
// payload. A variant whose payload is uninhabited occupies an empty
// sub-range and is never observable.
func Variant[K, P any](payload Bijection[P], wrap func(P) K, unwrap func(K) (P, bool)) VariantSpec[K] {
	return variantSpec[K, P]{payload: payload, wrap: wrap, unwrap: unwrap}
}

func (v variantSpec[K, P]) variantLength() int { return v.payload.Length() }

func (v variantSpec[K, P]) variantLinearize(key K) (int, bool) {
	p, ok := v.unwrap(key)
	if !ok {
		return 0, false
	}
	return v.payload.Linearize(p), true
}

func (v variantSpec[K, P]) variantDelinearize(index int) K {
	return v.wrap(v.payload.DelinearizeUnchecked(index))
}

type caseSpec[K any] struct {
	value K
	is    func(K) bool
}

// Case is the empty-payload variant: a single fixed value occupying one
// index. is reports whether a value of the union is this case.
func Case[K any](value K, is func(K) bool) VariantSpec[K] {
	return caseSpec[K]{value: value, is: is}
}

func (c caseSpec[K]) variantLength() int { return 1 }

func (c caseSpec[K]) variantLinearize(key K) (int, bool) {
	if c.is(key) {
		return 0, true
	}
	return 0, false
}

func (c caseSpec[K]) variantDelinearize(int) K { return c.value }

// sumBijection partitions the index space into contiguous sub-ranges, one
// per variant, in declaration order. bases[i] is the first index of
// variant i.
type sumBijection[K any] struct {
	variants []VariantSpec[K]
	bases    []int
	length   int
}

// Sum composes variant bijections into the bijection of the whole union.
// Variant order is declaration order: it fixes both the numeric sub-ranges
// and the enumeration order, and is part of the resulting bijection's
// public contract. A union with no variants is uninhabited.
func Sum[K any](variants ...VariantSpec[K]) Bijection[K] {
	bases := make([]int, len(variants))
	length := 0
	for i, v := range variants {
		bases[i] = length
		length += v.variantLength()
	}
	return sumBijection[K]{variants: variants, bases: bases, length: length}
}

func (s sumBijection[K]) Length() int { return s.length }

func (s sumBijection[K]) Linearize(key K) int {
	for i, v := range s.variants {
		if sub, ok := v.variantLinearize(key); ok {
			return s.bases[i] + sub
		}
	}
	panic(fmt.Sprintf("linearize: value %v matches no variant of the sum", key))
}

func (s sumBijection[K]) DelinearizeUnchecked(index int) K {
	// Linear scan over the variant boundaries. Variant counts are small
	// and empty sub-ranges fall through on their own.
	for i, v := range s.variants {
		if index < s.bases[i]+v.variantLength() {
			return v.variantDelinearize(index - s.bases[i])
		}
	}
	panic("linearize: index out of range for sum")
}
