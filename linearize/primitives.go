package linearize

import "math/bits"

// Never is an uninhabited marker type: its bijection has cardinality zero
// and no value of it should ever be constructed. Embedding it as a field
// makes the whole record uninhabited, and using it as a variant payload
// prunes that variant from the index space.
type Never struct{}

type boolBijection struct{}

// Bool returns the bijection for bool: false maps to 0, true to 1.
func Bool() Bijection[bool] { return boolBijection{} }

func (boolBijection) Length() int { return 2 }

func (boolBijection) Linearize(key bool) int {
	if key {
		return 1
	}
	return 0
}

func (boolBijection) DelinearizeUnchecked(index int) bool { return index != 0 }

type unitBijection struct{}

// Unit returns the bijection for struct{}, the singleton type with exactly
// one value at index 0.
func Unit() Bijection[struct{}] { return unitBijection{} }

func (unitBijection) Length() int                            { return 1 }
func (unitBijection) Linearize(struct{}) int                 { return 0 }
func (unitBijection) DelinearizeUnchecked(int) struct{}      { return struct{}{} }

type neverBijection struct{}

// NeverCodec returns the bijection for Never. Its cardinality is zero, so
// neither mapping function can ever be called with a valid argument; both
// trap if reached.
func NeverCodec() Bijection[Never] { return neverBijection{} }

func (neverBijection) Length() int { return 0 }

func (neverBijection) Linearize(Never) int {
	panic("linearize: Never has no values")
}

func (neverBijection) DelinearizeUnchecked(int) Never {
	panic("linearize: Never has no values")
}

type uintBijection[K ~uint8 | ~uint16 | ~uint32] struct {
	length int
}

func (b uintBijection[K]) Length() int                    { return b.length }
func (b uintBijection[K]) Linearize(key K) int            { return int(key) }
func (b uintBijection[K]) DelinearizeUnchecked(index int) K { return K(index) }

type intBijection[K ~int8 | ~int16 | ~int32] struct {
	length int
	min    int
}

func (b intBijection[K]) Length() int { return b.length }

// Linearize shifts the value so the minimum lands on index 0.
func (b intBijection[K]) Linearize(key K) int { return int(key) - b.min }

func (b intBijection[K]) DelinearizeUnchecked(index int) K { return K(index + b.min) }

// Uint8 returns the bijection for uint8: the value is its own index.
func Uint8() Bijection[uint8] { return uintBijection[uint8]{length: 1 << 8} }

// Uint16 returns the bijection for uint16.
func Uint16() Bijection[uint16] { return uintBijection[uint16]{length: 1 << 16} }

// pow2 returns 1<<n as an int. n is shifted at run time so the 2^32
// cardinalities do not overflow a 32-bit int at compile time; where the
// result would not fit, constructing the bijection panics instead of
// wrapping to a bogus length.
func pow2(n uint) int {
	if n >= bits.UintSize-1 {
		panic("linearize: key cardinality exceeds int on this platform")
	}
	return 1 << n
}

// Uint32 returns the bijection for uint32. Requires a 64-bit int.
func Uint32() Bijection[uint32] { return uintBijection[uint32]{length: pow2(32)} }

// Int8 returns the bijection for int8. Values are shifted so that
// math.MinInt8 maps to index 0 and math.MaxInt8 to index 255.
func Int8() Bijection[int8] { return intBijection[int8]{length: 1 << 8, min: -1 << 7} }

// Int16 returns the bijection for int16.
func Int16() Bijection[int16] { return intBijection[int16]{length: 1 << 16, min: -1 << 15} }

// Int32 returns the bijection for int32. Requires a 64-bit int.
func Int32() Bijection[int32] { return intBijection[int32]{length: pow2(32), min: -1 << 31} }

// UintN returns the bijection for a named unsigned type no wider than 32
// bits, with cardinality 2^bits. It exists so that generated code and
// hand-written implementations can cover enum-like defined types such as
// `type Level uint8` without re-deriving the arithmetic.
func UintN[K ~uint8 | ~uint16 | ~uint32](bits int) Bijection[K] {
	if bits < 1 || bits > 32 {
		panic("linearize: UintN bits must be in [1, 32]")
	}
	return uintBijection[K]{length: pow2(uint(bits))}
}
