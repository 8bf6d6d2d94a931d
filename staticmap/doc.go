// Package staticmap provides an array-backed total map keyed by a
// linearizable type.
//
// A Map owns exactly one slice with one slot per possible key; the key's
// bijection (see the linearize package) turns a key into the slot index.
// There is no hashing, no key storage, no resizing, and no missing-key
// state: every key of the type always has a value. Memory is O(Length),
// so the map is only appropriate for key types whose cardinality is small
// enough to enumerate — typically up to a few million.
//
// Maps are plain data with no internal synchronization. Any number of
// goroutines may read a map concurrently; a writer requires exclusive
// access arranged by the caller.
package staticmap
