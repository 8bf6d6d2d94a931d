// Package linearize defines bijections between structured key types and
// dense integer ranges.
//
//	Overview
//
// A bijection maps every value of a key type onto exactly one index in the
// half-open interval [0, Length), and back. Given such a mapping, a value
// of the key type can be used to address a slot in a plain array with no
// hashing, no key storage, and no missing-key states. The staticmap package
// builds an array-backed total map on top of this.
//
//	Composition
//
// Bijections compose the same way types do:
//
//   - Product composition (records): the cardinality of a struct is the
//     product of its field cardinalities. Indices are a mixed-radix
//     encoding with the first field as the most significant digit. See
//     [Product].
//
//   - Sum composition (tagged unions): each variant occupies a contiguous
//     sub-range of the index space, assigned in declaration order. The
//     cardinality is the sum of the variant cardinalities. See [Sum].
//
// Declaration order is part of the public contract of a composed
// bijection: it fixes both the numeric index of every value and the order
// in which values are enumerated, and downstream code (serialization,
// hashing, iteration) depends on it.
//
//	Uninhabited types
//
// A cardinality of zero is legal and marks a type with no values. A field
// of an uninhabited type makes the whole product uninhabited, and a
// variant with an uninhabited payload contributes an empty sub-range,
// removing it from enumeration entirely. [Never] is the canonical
// uninhabited leaf.
//
//	Checked and unchecked access
//
// Bijection.DelinearizeUnchecked requires its argument to be below the
// type's cardinality; violating that precondition is a logic error, not a
// recoverable one. [Delinearize] is the checked wrapper and the default
// entry point for generic or external-facing code.
package linearize
