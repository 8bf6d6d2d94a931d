package formats

import "fmt"

// MissingKeyError reports a strict decode that found a well-formed
// mapping with at least one key absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key %q", e.Key)
}

// UnknownKeyError reports a mapping entry whose key does not encode any
// value of the key type.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Key)
}

// ShapeError reports a payload whose top-level structure is not a
// mapping.
type ShapeError struct {
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}
