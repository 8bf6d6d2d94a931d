// Package formats serializes static maps as ordered key→value mappings.
//
// A map always serializes as a mapping (never a bare array) with exactly
// one entry per key, in ascending index order. Deserialization is strict
// by default: a payload that is not a mapping fails with a *ShapeError,
// and a payload missing any key fails with a *MissingKeyError naming the
// first absent key, so callers can tell "structurally valid but
// incomplete" apart from "not a map at all". The Zero and SkipNil
// variants opt into the two relaxed absence policies.
//
// Keys are rendered through a KeyCodec. Because a linearizable key type
// is enumerable, the decoder derives its parse table by enumerating every
// key once and encoding it, so a codec only ever defines the encode
// direction.
package formats
